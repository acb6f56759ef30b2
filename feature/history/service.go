package history

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ddrconf/core/database"
	"ddrconf/feature/compare"
)

// Service records and queries comparison runs.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a history service backed by the given database.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// VerifySchema checks that the comparison_runs table carries every
// column the feature writes.
func (s *Service) VerifySchema(ctx context.Context) error {
	missing, err := database.MissingColumns(s.db.WithContext(ctx), Run{}.TableName(), runColumns)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", Run{}.TableName(), err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %v", Run{}.TableName(), missing)
	}
	return nil
}

// Record stores one row per compared table of the report.
func (s *Service) Record(ctx context.Context, rep *compare.Report) error {
	rows := rowsFor(rep)
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("record run %s: %w", rep.RunID, err)
	}
	s.logger.Info("recorded comparison run",
		zap.String("run_id", rep.RunID),
		zap.Int("rows", len(rows)))
	return nil
}

// Recent returns the latest rows, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	return runs, nil
}

// ByRun returns every row of one run.
func (s *Service) ByRun(ctx context.Context, runID string) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id ASC").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	return runs, nil
}

// rowsFor flattens a report into persistable rows.
func rowsFor(rep *compare.Report) []Run {
	var rows []Run
	for _, sec := range rep.Sections {
		for _, t := range sec.Tables {
			row := Run{
				RunID:     rep.RunID,
				LeftName:  rep.LeftName,
				RightName: rep.RightName,
				Section:   t.Name,
			}
			if t.Outcome != nil {
				row.Result = t.Outcome.Result.String()
				row.DiffCount = t.Outcome.DiffCount
			}
			row.LeftEntries = t.Left.Len()
			row.RightEntries = t.Right.Len()
			row.LeftCRC = t.Left.Checksum()
			row.RightCRC = t.Right.Checksum()
			rows = append(rows, row)
		}
	}
	return rows
}
