package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"subshift/internal/tui"
)

// newPreviewCmd shows the shifted cue ranges in a TUI before writing anything.
func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <input.srt> <output.srt> <offset_seconds>",
		Short: "Review every shifted cue range before writing the output file",
		Args:  shiftArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			j, err := a.newJob(cmd, args)
			if err != nil {
				return err
			}
			res, err := j.shift()
			if err != nil {
				return err
			}
			apply, err := tui.Run(j.input, j.output, j.offset, res)
			if err != nil {
				return err
			}
			if !apply {
				fmt.Fprintf(cmd.OutOrStdout(), "Cancelled, %s not written\n", j.output)
				return nil
			}
			if err := j.write(res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Adjusted subtitles saved to %s\n", j.output)
			return nil
		},
	}
}
