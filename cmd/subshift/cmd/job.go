package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"subshift/internal/report"
	"subshift/internal/shift"
	"subshift/internal/subfile"
	"subshift/pkg/timecode"
)

// job is one input/output/offset run.
type job struct {
	input      string
	output     string
	reportPath string
	offset     timecode.Offset
	policy     timecode.Policy
	encoding   string
	logger     logrus.FieldLogger
}

func (a *app) newJob(cmd *cobra.Command, args []string) (*job, error) {
	offset, err := timecode.ParseOffset(args[2])
	if err != nil {
		return nil, err
	}
	reportPath, _ := cmd.Flags().GetString("report")

	policy := timecode.Strict
	if a.cfg.Lenient {
		policy = timecode.Lenient
	}

	return &job{
		input:      args[0],
		output:     args[1],
		reportPath: reportPath,
		offset:     offset,
		policy:     policy,
		encoding:   a.cfg.Encoding,
		logger:     a.logger.WithField("input", args[0]),
	}, nil
}

// shift reads the input and shifts it in memory; nothing is written.
func (j *job) shift() (shift.Result, error) {
	text, err := subfile.Read(j.input, j.encoding)
	if err != nil {
		return shift.Result{}, err
	}

	s := shift.New(j.offset)
	s.Policy = j.policy
	s.Logger = j.logger

	res, err := s.Document(text)
	if err != nil {
		return shift.Result{}, errors.Wrapf(err, "shift %s", j.input)
	}

	stats := res.Stats()
	j.logger.WithFields(logrus.Fields{
		"offset":        j.offset.String(),
		"ranges":        stats.Ranges,
		"clamped_start": stats.ClampedStart,
		"clamped_end":   stats.ClampedEnd,
	}).Info("shifted cue ranges")
	if stats.Ranges == 0 {
		j.logger.Warn("no cue ranges found, output will match input")
	}
	return res, nil
}

// write stores the shifted text and, if asked for, the HTML report.
func (j *job) write(res shift.Result) error {
	if err := subfile.WriteAtomic(j.output, res.Text); err != nil {
		return errors.Wrapf(err, "write %s", j.output)
	}
	if j.reportPath == "" {
		return nil
	}

	html, err := report.HTML(report.Markdown(j.input, j.offset, res))
	if err != nil {
		return err
	}
	if err := subfile.WriteAtomic(j.reportPath, string(html)); err != nil {
		return errors.Wrapf(err, "write report %s", j.reportPath)
	}
	j.logger.WithField("report", j.reportPath).Info("wrote report")
	return nil
}
