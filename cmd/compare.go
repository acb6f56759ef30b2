package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ddrconf/core/config"
	"ddrconf/core/database"
	"ddrconf/core/logger"
	"ddrconf/core/report"
	"ddrconf/core/timing"
	"ddrconf/feature/compare"
	"ddrconf/feature/history"
)

var compareFlags struct {
	listDuplicates bool
	noColor        bool
	showRuns       bool
	jsonOut        bool
	record         bool
	window         int
	output         string
}

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare LEFT RIGHT",
	Short: "Compare two configuration dumps",
	Long: `Compares two dump files table by table and prints a report of the
structural, ordering and value differences. Differences are always
informational; the command fails only when a dump cannot be read.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		logg, err := logger.New(&logger.Config{Level: "warn", Format: "console"})
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer logg.Sync()

		ctx := cmd.Context()
		src := timing.FileSource{}
		left, lw, err := timing.Load(ctx, src, args[0])
		if err != nil {
			return err
		}
		right, rw, err := timing.Load(ctx, src, args[1])
		if err != nil {
			return err
		}

		opts := cfg.Compare.Options()
		if compareFlags.window > 0 {
			opts.Window = compareFlags.window
		}

		rep := compare.NewService(opts, logg).Compare(left, right)
		rep.LeftName = args[0]
		rep.RightName = args[1]
		rep.LeftWarnings = lw
		rep.RightWarnings = rw

		out := cmd.OutOrStdout()
		if compareFlags.output != "" {
			f, err := os.Create(compareFlags.output)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := writeReport(out, rep, cfg.Report.Options()); err != nil {
			return err
		}

		if compareFlags.record {
			if err := recordRun(ctx, cfg, logg, rep); err != nil {
				return err
			}
		}
		return nil
	},
}

func writeReport(out io.Writer, rep *compare.Report, opts report.Options) error {
	if compareFlags.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	opts.ListDuplicates = opts.ListDuplicates || compareFlags.listDuplicates
	opts.ShowRuns = opts.ShowRuns || compareFlags.showRuns
	if compareFlags.noColor {
		opts.Color = false
	}
	// Files get plain text regardless of the color setting.
	if compareFlags.output != "" {
		opts.Color = false
	}
	return compare.Render(out, rep, opts)
}

func recordRun(ctx context.Context, cfg *config.Config, logg *zap.Logger, rep *compare.Report) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect history database: %w", err)
	}
	svc := history.NewService(db, logg)
	if err := svc.VerifySchema(ctx); err != nil {
		return err
	}
	return svc.Record(ctx, rep)
}

func init() {
	compareCmd.Flags().BoolVar(&compareFlags.listDuplicates, "list-duplicates", false, "list every duplicated register instead of a summary count")
	compareCmd.Flags().BoolVar(&compareFlags.noColor, "no-color", false, "disable ANSI colors")
	compareCmd.Flags().BoolVar(&compareFlags.showRuns, "show-runs", false, "also display long matched runs in reorder blocks")
	compareCmd.Flags().BoolVar(&compareFlags.jsonOut, "json", false, "emit the report as JSON")
	compareCmd.Flags().BoolVar(&compareFlags.record, "record", false, "record the run in the history database")
	compareCmd.Flags().IntVar(&compareFlags.window, "window", 0, "block aligner lookahead in entries (0 uses the configured value)")
	compareCmd.Flags().StringVarP(&compareFlags.output, "output", "o", "", "write the report to a file instead of stdout")
	RootCmd.AddCommand(compareCmd)
}
