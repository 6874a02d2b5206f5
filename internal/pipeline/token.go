// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// MaxTokenSize bounds the length of a token after redundant leading zeros
// have been dropped.
const MaxTokenSize = bufio.MaxScanTokenSize

// ReadToken reads the first whitespace-delimited token of r.
// It returns io.EOF if r holds no token and bufio.ErrTooLong if the token
// exceeds MaxTokenSize.
//
// Leading zeros beyond the first one are dropped, so "+0007" is read as
// "+07". A zero-padded integer thereby never exceeds MaxTokenSize.
func ReadToken(r io.Reader) (string, error) {
	var (
		br    = bufio.NewReader(r)
		token strings.Builder
		// zeros is set while the token is an optional sign followed by zeros.
		zeros   = true
		hasZero bool
	)
	for {
		c, _, err := br.ReadRune()
		if err != nil {
			if err == io.EOF && token.Len() > 0 {
				return token.String(), nil
			}
			return "", err
		}

		if unicode.IsSpace(c) {
			if token.Len() > 0 {
				return token.String(), nil
			}
			continue
		}

		switch {
		case zeros && c == '0':
			if hasZero {
				continue
			}
			hasZero = true
		case zeros && (c == '+' || c == '-') && token.Len() == 0:
		default:
			zeros = false
		}

		token.WriteRune(c)
		if token.Len() > MaxTokenSize {
			return "", bufio.ErrTooLong
		}
	}
}

// ParseToken interprets token as a base-10 integer of platform width.
func ParseToken(token string) (int, error) {
	return strconv.Atoi(token)
}

func readAndParse(path string, src io.Reader) (Result, error) {
	token, err := ReadToken(src)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return Failed(&Failure{Kind: Empty, Path: path, Err: err}), nil
	case errors.Is(err, bufio.ErrTooLong):
		return Failed(&Failure{Kind: NotANumber, Path: path, Err: err}), nil
	default:
		return Result{}, errors.Wrapf(err, "reading token from %s", path)
	}

	value, err := ParseToken(token)
	if err != nil {
		return Failed(&Failure{Kind: NotANumber, Path: path, Token: token, Err: err}), nil
	}
	return Parsed(value), nil
}
