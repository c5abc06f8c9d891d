// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of extensions to the standard library
// errors package, mainly simple helpers for logging errors at the
// point where they are degraded rather than propagated.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// aliases to the standard library so that this package can be used
// as a drop-in replacement for it.

// New returns an error that formats as the given text.
var New = errors.New

// Is reports whether any error in err's tree matches target.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
var As = errors.As

// Unwrap returns the result of calling the Unwrap method on err.
var Unwrap = errors.Unwrap

// Join returns an error that wraps the given errors.
var Join = errors.Join

// Wrap returns a new error with the given format and args, wrapping the
// given error with %w.
func Wrap(err error, format string, args ...any) error {
	args = append(args, err)
	return fmt.Errorf(format+": %w", args...)
}

// CallerInfo returns string information about the caller of the
// function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s (%s:%d)", runtime.FuncForPC(pc).Name(), file, line)
}

// Log takes the given error and logs it if it is non-nil,
// returning it either way. Useful for error handling at the
// point where an error degrades to a default rather than aborting.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error if it is
// non-nil, returning the value either way. Useful for wrapping
// functions that return a value and an error.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 panics if the given error is non-nil, returning the value otherwise.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
