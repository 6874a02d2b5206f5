// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package pipeline reads the first token of a file as an integer, classifying
// every recoverable failure and releasing the file on every exit path.
package pipeline

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// CleanupMessage is written by the Finally discipline right before the
// source is released.
const CleanupMessage = "I'll make sure I clean up."

// Run opens path, reads its first token and parses it as an integer, writing
// the report of the outcome to the configured output.
//
// Classified failures are recovered and returned as a failed Result with a nil
// error. Any other fault is returned as error; panics are not recovered. In all
// cases an acquired source is closed exactly once before Run returns.
func Run(path string, opts ...RunOption) (Result, error) {
	o := (&RunOptions{}).ApplyOptions(opts)
	setRunOptionsDefaults(o)

	switch o.Discipline {
	case Finally:
		return runFinally(path, o)
	case Scoped:
		return runScoped(path, o)
	default:
		return Result{}, errors.Newf("unknown discipline %q", o.Discipline)
	}
}

func runFinally(path string, o *RunOptions) (Result, error) {
	var src io.ReadCloser
	defer func() {
		_, _ = fmt.Fprintln(o.Stderr, CleanupMessage)
		if src != nil {
			release(src, path, o.Log)
		}
	}()

	rc, err := o.Opener.Open(path)
	if err != nil {
		return recovered(o, Failed(classifyAcquireError(path, err))), nil
	}
	src = rc
	o.Log.Debug("Acquired source", zap.String("path", path))

	res, err := readAndParse(path, src)
	if err != nil {
		return Result{}, err
	}
	return recovered(o, res), nil
}

func runScoped(path string, o *RunOptions) (Result, error) {
	src, err := o.Opener.Open(path)
	if err != nil {
		return recovered(o, Failed(classifyAcquireError(path, err))), nil
	}
	defer release(src, path, o.Log)
	o.Log.Debug("Acquired source", zap.String("path", path))

	res, err := readAndParse(path, src)
	if err != nil {
		return Result{}, err
	}
	return recovered(o, res), nil
}

func recovered(o *RunOptions, res Result) Result {
	if res.Failure != nil {
		o.Log.Debug("Recovered failure",
			zap.String("path", res.Failure.Path),
			zap.Stringer("kind", res.Failure.Kind),
			zap.Error(res.Failure.Err),
		)
	}
	WriteReport(o.Stdout, o.Stderr, res)
	return res
}

// WriteReport writes the user-facing lines of res: the found number to stdout, or
// the failure and its recovery line to stderr.
func WriteReport(stdout, stderr io.Writer, res Result) {
	if res.Failure == nil {
		_, _ = fmt.Fprintf(stdout, "I found the number %d in your file.\n", res.Value)
		return
	}
	_, _ = fmt.Fprintln(stderr, res.Failure.Error())
	_, _ = fmt.Fprintln(stderr, res.Failure.Recovery())
}

func release(src io.Closer, path string, log *zap.Logger) {
	log.Debug("Releasing source", zap.String("path", path))
	if err := src.Close(); err != nil {
		log.Warn("Error closing source", zap.String("path", path), zap.Error(err))
	}
}
