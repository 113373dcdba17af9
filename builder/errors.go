// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; context is attached by wrapping, never by
// formatting the sentinel itself.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the fixture could not be assembled, e.g. a nil
// constructor or an edge touching a vertex no constructor added.
var ErrConstructFailed = errors.New("builder: construction failed")
