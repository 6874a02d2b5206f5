// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pipeline_test

import (
	"io"

	"github.com/ironcore-dev/tokenint/internal/pipeline"
)

// countingOpener records how often sources it handed out were closed.
type countingOpener struct {
	opener   pipeline.Opener
	wrap     func(io.ReadCloser) io.ReadCloser
	opened   int
	closed   int
	closeErr error
}

func (o *countingOpener) Open(path string) (io.ReadCloser, error) {
	rc, err := o.opener.Open(path)
	if err != nil {
		return nil, err
	}
	o.opened++
	if o.wrap != nil {
		rc = o.wrap(rc)
	}
	return &countingCloser{ReadCloser: rc, opener: o}, nil
}

type countingCloser struct {
	io.ReadCloser
	opener *countingOpener
}

func (c *countingCloser) Close() error {
	c.opener.closed++
	if err := c.ReadCloser.Close(); err != nil {
		return err
	}
	return c.opener.closeErr
}

type errReader struct {
	io.Closer
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}

type panicReader struct {
	io.Closer
	value any
}

func (r panicReader) Read([]byte) (int, error) {
	panic(r.value)
}
