package history

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	core "ddrconf/core/compare"
	"ddrconf/core/regtab"
	"ddrconf/feature/compare"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func sampleReport() *compare.Report {
	left := regtab.Table{Name: "ddrc_cfg", Kind: regtab.Ctrl, Entries: []regtab.Entry{{Addr: 0x3d400000, Val: 0x1}}}
	right := regtab.Table{Name: "ddrc_cfg", Kind: regtab.Ctrl, Entries: []regtab.Entry{{Addr: 0x3d400000, Val: 0x2}}}
	out := core.Compare(left.Entries, right.Entries, core.Options{})
	return &compare.Report{
		RunID:     "11111111-2222-3333-4444-555555555555",
		LeftName:  "left.dump",
		RightName: "right.dump",
		Sections: []compare.Section{
			{
				Name: compare.SectionDdrcCfg,
				Tables: []compare.TableResult{
					{Name: "ddrc_cfg", Left: left, Right: right, Outcome: &out},
				},
			},
		},
	}
}

func TestRowsFor(t *testing.T) {
	rep := sampleReport()
	rows := rowsFor(rep)

	require.Len(t, rows, 1)
	assert.Equal(t, rep.RunID, rows[0].RunID)
	assert.Equal(t, "ddrc_cfg", rows[0].Section)
	assert.Equal(t, "match", rows[0].Result)
	assert.Equal(t, 1, rows[0].DiffCount)
	assert.Equal(t, 1, rows[0].LeftEntries)
	assert.NotEqual(t, rows[0].LeftCRC, rows[0].RightCRC)
}

func TestService_Record(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comparison_runs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := svc.Record(context.Background(), sampleReport())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordEmptyReport(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	// No tables, no insert.
	err := svc.Record(context.Background(), &compare.Report{RunID: "empty"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "run_id", "section", "result", "diff_count"}).
		AddRow(2, "run-b", "ddrphy_pie", "match", 0).
		AddRow(1, "run-a", "ddrc_cfg", "reordered", 3)
	mock.ExpectQuery("SELECT \\* FROM `comparison_runs`").WillReturnRows(rows)

	runs, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-b", runs[0].RunID)
	assert.Equal(t, "reordered", runs[1].Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ByRun(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "run_id", "section"}).
		AddRow(1, "run-a", "ddrc_cfg")
	mock.ExpectQuery("SELECT \\* FROM `comparison_runs`").
		WithArgs("run-a").
		WillReturnRows(rows)

	runs, err := svc.ByRun(context.Background(), "run-a")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "ddrc_cfg", runs[0].Section)
}

func TestService_VerifySchema(t *testing.T) {
	t.Run("AllColumnsPresent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, col := range runColumns {
			rows.AddRow(col, "int", "NO", "", nil, "")
		}
		mock.ExpectQuery("SHOW COLUMNS FROM `comparison_runs`").WillReturnRows(rows)

		assert.NoError(t, svc.VerifySchema(context.Background()))
	})

	t.Run("MissingColumn", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())

		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "int", "NO", "PRI", nil, "auto_increment")
		mock.ExpectQuery("SHOW COLUMNS FROM `comparison_runs`").WillReturnRows(rows)

		err := svc.VerifySchema(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing columns")
	})
}
