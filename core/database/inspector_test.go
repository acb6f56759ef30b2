package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gdb, mock
}

func TestGetTableColumns(t *testing.T) {
	gdb, mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "VARCHAR(36)", "NO", "PRI", nil, "").
		AddRow("Table_Name", "varchar(64)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `runs`").WillReturnRows(rows)

	columns, err := GetTableColumns(gdb, "runs")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "varchar(36)", columns[0].Type)
	assert.Equal(t, "table_name", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	gdb, mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "varchar(36)", "NO", "PRI", nil, "").
		AddRow("result", "varchar(32)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `runs`").WillReturnRows(rows)

	missing, err := MissingColumns(gdb, "runs", []string{"id", "result", "diff_count"})
	require.NoError(t, err)
	assert.Equal(t, []string{"diff_count"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
