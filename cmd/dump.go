package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ddrconf/core/timing"
)

var dumpFlags struct {
	output string
	quiet  bool
}

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Parse and re-emit a configuration dump",
	Long: `Parses a dump file, reports anything suspicious in it (metadata that
does not match the parsed tables, stray lines, out-of-sequence indices)
and re-emits it in canonical form. Useful for normalizing dumps before
diffing them with other tools.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, warnings, err := timing.Load(cmd.Context(), timing.FileSource{}, args[0])
		if err != nil {
			return err
		}

		if !dumpFlags.quiet {
			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
		}

		out := cmd.OutOrStdout()
		if dumpFlags.output != "" {
			f, err := os.Create(dumpFlags.output)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return timing.WriteDump(out, doc)
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFlags.output, "output", "o", "", "write the canonical dump to a file instead of stdout")
	dumpCmd.Flags().BoolVarP(&dumpFlags.quiet, "quiet", "q", false, "suppress parser warnings")
	RootCmd.AddCommand(dumpCmd)
}
