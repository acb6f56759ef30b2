package history

import "time"

// Run is one recorded table comparison. A full configuration
// comparison produces several rows sharing a run id.
type Run struct {
	ID           uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	RunID        string    `gorm:"column:run_id;type:varchar(36);index" json:"run_id"`
	LeftName     string    `gorm:"column:left_name;type:varchar(255)" json:"left"`
	RightName    string    `gorm:"column:right_name;type:varchar(255)" json:"right"`
	Section      string    `gorm:"column:section;type:varchar(64)" json:"section"`
	Result       string    `gorm:"column:result;type:varchar(16)" json:"result"`
	DiffCount    int       `gorm:"column:diff_count" json:"diff_count"`
	LeftEntries  int       `gorm:"column:left_entries" json:"left_entries"`
	RightEntries int       `gorm:"column:right_entries" json:"right_entries"`
	LeftCRC      uint32    `gorm:"column:left_crc" json:"left_crc"`
	RightCRC     uint32    `gorm:"column:right_crc" json:"right_crc"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the backing table name.
func (Run) TableName() string {
	return "comparison_runs"
}

// runColumns are the columns the feature expects to exist. Checked at
// startup so a half-migrated database fails fast instead of on the
// first insert.
var runColumns = []string{
	"id", "run_id", "left_name", "right_name", "section", "result",
	"diff_count", "left_entries", "right_entries", "left_crc", "right_crc",
	"created_at",
}
