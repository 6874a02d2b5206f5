// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// FailureKind classifies why a run did not produce a parsed integer.
type FailureKind int

const (
	// NotFound means the path does not exist or is not a readable file.
	NotFound FailureKind = iota + 1
	// IOFailure means the file exists but could not be acquired.
	IOFailure
	// Empty means the file holds no token.
	Empty
	// NotANumber means the first token is not a base-10 integer.
	NotANumber
	// Unclassified covers every fault the pipeline does not recover.
	Unclassified
)

func (k FailureKind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case IOFailure:
		return "IOFailure"
	case Empty:
		return "Empty"
	case NotANumber:
		return "NotANumber"
	case Unclassified:
		return "Unclassified"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Recovery returns the fixed line explaining how to recover from the kind.
// Unclassified faults have no recovery line.
func (k FailureKind) Recovery() string {
	switch k {
	case NotFound:
		return "Please try again, but with a file that exists next time."
	case IOFailure:
		return "Your file existed, but another I/O error occurred..."
	case Empty:
		return "I expected your file to contain something..."
	case NotANumber:
		return "I expected your file to contain an integer..."
	default:
		return ""
	}
}

// Failure is a classified, recovered failure of a single run.
type Failure struct {
	Kind  FailureKind
	Path  string
	Token string
	Err   error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case NotFound:
		return fmt.Sprintf("file %s not found", f.Path)
	case IOFailure:
		return fmt.Sprintf("file %s could not be opened: %v", f.Path, f.Err)
	case Empty:
		return fmt.Sprintf("file %s contains no token", f.Path)
	case NotANumber:
		if f.Token == "" {
			return fmt.Sprintf("file %s starts with a token too long to be an integer", f.Path)
		}
		return fmt.Sprintf("token %q in file %s is not an integer", f.Token, f.Path)
	default:
		return fmt.Sprintf("file %s: %v", f.Path, f.Err)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Recovery returns the recovery line of the failure's kind.
func (f *Failure) Recovery() string {
	return f.Kind.Recovery()
}

// KindOf reports the kind of err. Any non-nil error that is not a *Failure
// is Unclassified; nil has no kind and yields 0.
func KindOf(err error) FailureKind {
	if err == nil {
		return 0
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind
	}
	return Unclassified
}

// Result is the outcome of a run: either a parsed value or a classified failure.
type Result struct {
	Value   int
	Failure *Failure
}

// Parsed creates a successful result.
func Parsed(value int) Result {
	return Result{Value: value}
}

// Failed creates a failed result.
func Failed(failure *Failure) Result {
	return Result{Failure: failure}
}

// OK reports whether the result holds a parsed value.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Kind returns the failure kind, or 0 on success.
func (r Result) Kind() FailureKind {
	if r.Failure == nil {
		return 0
	}
	return r.Failure.Kind
}

func (r Result) String() string {
	if r.Failure != nil {
		return fmt.Sprintf("Failed(%s, %s)", r.Failure.Kind, r.Failure.Error())
	}
	return fmt.Sprintf("Parsed(%d)", r.Value)
}
