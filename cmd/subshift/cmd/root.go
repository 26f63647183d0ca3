package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"subshift/internal/config"
	"subshift/internal/subfile"
)

// app carries what the persistent pre-run resolved for the command that runs.
type app struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// newRootCmd builds the base command, run when no subcommand is given.
func newRootCmd() *cobra.Command {
	a := &app{}
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "subshift <input.srt> <output.srt> <offset_seconds>",
		Short: "Shift every timecode in an SRT subtitle file by a fixed offset",
		Long: `subshift moves every "HH:MM:SS,mmm --> HH:MM:SS,mmm" range in an SRT file
by the same number of seconds and writes the result to a new file.
A positive offset delays the subtitles, a negative one makes them earlier.
Times that would fall below 00:00:00,000 are clamped to zero.`,
		Example: `  subshift movie.srt movie_fixed.srt 3
  subshift movie.srt movie_fixed.srt -1.5
  subshift movie.srt movie_fixed.srt 250ms --report changes.html`,
		Args:              shiftArgs,
		PersistentPreRunE: a.setup,
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
			if dryRun {
				stats := res.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d cue ranges would be shifted by %s, nothing written\n", stats.Ranges, j.offset)
				return nil
			}
			if err := j.write(res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Adjusted subtitles saved to %s\n", j.output)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool("lenient", false, "fold minutes/seconds of 60 and above into larger units instead of failing (env SUBSHIFT_LENIENT)")
	flags.String("encoding", subfile.Auto, fmt.Sprintf("input encoding, one of %v (env SUBSHIFT_ENCODING)", subfile.Encodings))
	flags.String("log-level", "info", "log level: debug, info, warn, error (env SUBSHIFT_LOG_LEVEL)")
	flags.String("log-format", "text", "log format: text or json (env SUBSHIFT_LOG_FORMAT)")
	flags.String("report", "", "also write an HTML report of every shifted cue to this path")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "shift and log, but write nothing")

	rootCmd.AddCommand(newPreviewCmd(a))
	return rootCmd
}

// shiftArgs requires exactly input, output and offset.
func shiftArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected <input> <output> <offset_seconds>, got %d argument(s)", len(args))
	}
	return nil
}

// setup loads the environment config, lets explicitly set flags override it
// and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cfg, cmd.Flags())

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	a.cfg = cfg
	a.logger = logger
	return nil
}

func applyFlags(cfg *config.Config, flags *pflag.FlagSet) {
	if flags.Changed("lenient") {
		cfg.Lenient, _ = flags.GetBool("lenient")
	}
	if flags.Changed("encoding") {
		cfg.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
}

// Execute runs the root command with the process arguments.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
