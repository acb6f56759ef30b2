package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ddrconf/core/config"
	"ddrconf/core/database"
	"ddrconf/core/logger"
	"ddrconf/feature/history"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [RUN_ID]",
	Short: "Show recorded comparison runs",
	Long: `Lists recently recorded comparison runs, or the full rows of one run
when a run id is given. Runs are recorded with 'compare --record' or
through the server.`,
	Args: cobra.MaximumNArgs(1),
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

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("connect history database: %w", err)
		}
		svc := history.NewService(db, logg)

		ctx := cmd.Context()
		var runs []history.Run
		if len(args) == 1 {
			runs, err = svc.ByRun(ctx, args[0])
		} else {
			runs, err = svc.Recent(ctx, historyLimit)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-36s  %-28s  %-20s  %-6s  %s\n",
			"RUN", "SECTION", "RESULT", "DIFFS", "RECORDED")
		for _, r := range runs {
			fmt.Fprintf(out, "%-36s  %-28s  %-20s  %-6d  %s\n",
				r.RunID, r.Section, r.Result, r.DiffCount,
				r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 50, "maximum number of rows to show")
	RootCmd.AddCommand(historyCmd)
}
