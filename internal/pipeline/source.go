// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"io"
	"io/fs"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// Opener acquires the source of a run.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to an Opener.
type OpenerFunc func(path string) (io.ReadCloser, error)

func (f OpenerFunc) Open(path string) (io.ReadCloser, error) {
	return f(path)
}

// FSOpener opens regular files of an afero filesystem.
// A nil Fs means the OS filesystem.
type FSOpener struct {
	Fs afero.Fs
}

// Open opens path for reading. Directories are reported as fs.ErrNotExist
// and are closed before returning.
func (o *FSOpener) Open(path string) (io.ReadCloser, error) {
	fsys := o.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: errors.Wrap(fs.ErrNotExist, "is a directory")}
	}
	return f, nil
}

func classifyAcquireError(path string, err error) *Failure {
	// A path below a regular file does not exist either.
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return &Failure{Kind: NotFound, Path: path, Err: err}
	}
	return &Failure{Kind: IOFailure, Path: path, Err: err}
}
