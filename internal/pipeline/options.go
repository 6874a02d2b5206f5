// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Discipline selects how a run guarantees the release of its source.
type Discipline string

const (
	// Finally acquires into a possibly-nil variable and releases it in an
	// unconditional cleanup block that also announces itself.
	Finally Discipline = "finally"
	// Scoped binds the release to the scope entered after acquisition.
	Scoped Discipline = "scoped"
)

var disciplines = []Discipline{Finally, Scoped}

// ParseDiscipline parses the textual name of a discipline.
func ParseDiscipline(s string) (Discipline, error) {
	for _, d := range disciplines {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", errors.WithHintf(
		errors.Newf("unknown discipline %q", s),
		"valid disciplines are %q and %q", Finally, Scoped,
	)
}

// RunOption configures a run.
type RunOption interface {
	ApplyToRun(o *RunOptions)
}

// RunOptions are the settings of a run. Unset fields take their defaults.
type RunOptions struct {
	Discipline Discipline
	Opener     Opener
	Stdout     io.Writer
	Stderr     io.Writer
	Log        *zap.Logger
}

func (o *RunOptions) ApplyToRun(o2 *RunOptions) {
	if o.Discipline != "" {
		o2.Discipline = o.Discipline
	}
	if o.Opener != nil {
		o2.Opener = o.Opener
	}
	if o.Stdout != nil {
		o2.Stdout = o.Stdout
	}
	if o.Stderr != nil {
		o2.Stderr = o.Stderr
	}
	if o.Log != nil {
		o2.Log = o.Log
	}
}

func (o *RunOptions) ApplyOptions(opts []RunOption) *RunOptions {
	for _, opt := range opts {
		opt.ApplyToRun(o)
	}
	return o
}

func setRunOptionsDefaults(o *RunOptions) {
	if o.Discipline == "" {
		o.Discipline = Finally
	}
	if o.Opener == nil {
		o.Opener = &FSOpener{}
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
}

// WithDiscipline selects the discipline of a run.
type WithDiscipline Discipline

func (w WithDiscipline) ApplyToRun(o *RunOptions) {
	o.Discipline = Discipline(w)
}

// WithOutput directs the report of a run to stdout and stderr.
func WithOutput(stdout, stderr io.Writer) RunOption {
	return &RunOptions{Stdout: stdout, Stderr: stderr}
}

// WithLogger sets the logger receiving the diagnostics of a run.
func WithLogger(log *zap.Logger) RunOption {
	return &RunOptions{Log: log}
}

// WithOpener sets the Opener acquiring the source of a run.
func WithOpener(opener Opener) RunOption {
	return &RunOptions{Opener: opener}
}

// InFs makes a run open its source from the given filesystem.
func InFs(fsys afero.Fs) RunOption {
	return &RunOptions{Opener: &FSOpener{Fs: fsys}}
}

func (d Discipline) String() string {
	return string(d)
}
