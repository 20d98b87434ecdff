// Copyright 2024 The Lumina Authors
// This file is part of the lumina library.
//
// The lumina library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lumina library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lumina library. If not, see <http://www.gnu.org/licenses/>.

package types

import "fmt"

// ErrorKind enumerates the per-transaction error taxonomy. Each is a
// terminal outcome for the transaction it is attached to; none of them are
// fatal to the block-assembly loop — persistence and integrity errors are
// handled separately and are fatal, these are not.
type ErrorKind int

const (
	ErrInvalidSignature ErrorKind = iota
	ErrInvalidNonce
	ErrBreakerActive
	ErrInsufficientBalance
	ErrInvalidProof
	ErrMalformedInstruction
	ErrNotFound
	ErrNotMatured
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidSignature:
		return "InvalidSignature"
	case ErrInvalidNonce:
		return "InvalidNonce"
	case ErrBreakerActive:
		return "BreakerActive"
	case ErrInsufficientBalance:
		return "InsufficientBalance"
	case ErrInvalidProof:
		return "InvalidProof"
	case ErrMalformedInstruction:
		return "MalformedInstruction"
	case ErrNotFound:
		return "NotFound"
	case ErrNotMatured:
		return "NotMatured"
	default:
		return "Unknown"
	}
}

// ExecError is the concrete error type ExecuteTransaction returns,
// carrying a stable Kind so callers can branch on it without string
// matching.
type ExecError struct {
	Kind   ErrorKind
	Reason string
}

func (e *ExecError) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func NewExecError(kind ErrorKind, reason string) *ExecError {
	return &ExecError{Kind: kind, Reason: reason}
}

// IsKind reports whether err is an *ExecError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ee, ok := err.(*ExecError)
	return ok && ee.Kind == kind
}
