// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package tokenint

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ironcore-dev/tokenint/internal/config"
	"github.com/ironcore-dev/tokenint/internal/logger"
	"github.com/ironcore-dev/tokenint/internal/pipeline"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const long = `tokenint - Read an integer from a file

Opens the given file, reads its first whitespace-delimited token and
prints it if it is a base-10 integer.

Missing files, unreadable files, empty files and tokens that are not
integers are reported with an explanation and do not fail the command.
Any other fault fails the command with a stack trace.

The discipline selects how the file is released: 'finally' announces
the cleanup on stderr on every run, 'scoped' releases the file silently
once it was opened.

All flags can also be set as TOKENINT_<FLAG> environment variables, with
dashes replaced by underscores, or in the file given by --config.
`

// NewCommand creates the tokenint root command reading files from fsys.
func NewCommand(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tokenint <file>",
		Short:         "Read an integer from a file",
		Long:          long,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fsys, args)
		},
	}

	config.AddFlags(cmd.Flags())
	return cmd
}

func exactlyOneFile(args []string) error {
	if len(args) != 1 {
		return errors.WithHint(
			errors.Newf("expected exactly one file argument, got %d", len(args)),
			"usage: tokenint <file>",
		)
	}
	return nil
}

func run(cmd *cobra.Command, fsys afero.Fs, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	// The finally discipline announces its cleanup even if there is no file
	// to acquire.
	if err := exactlyOneFile(args); err != nil {
		if cfg.Discipline == pipeline.Finally {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), pipeline.CleanupMessage)
		}
		return err
	}
	path := args[0]

	log, err := logger.New(cfg.LogLevel, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := pipeline.Run(path,
		pipeline.WithDiscipline(cfg.Discipline),
		pipeline.InFs(fsys),
		pipeline.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		pipeline.WithLogger(log),
	)
	if err != nil {
		return errors.Wrapf(err, "error running on %s", path)
	}

	log.Debug("Run finished", zap.Stringer("result", res))
	return nil
}
