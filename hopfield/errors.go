// SPDX-License-Identifier: MIT
package hopfield

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Network operations. Match them with errors.Is.
var (
	// ErrInvalidDimension is returned when a pattern's length differs from the
	// network size, or when a network is requested with size <= 0.
	ErrInvalidDimension = errors.New("hopfield: invalid dimension")

	// ErrInvalidPattern is returned when a pattern holds a value outside {-1,+1}
	// where a bipolar pattern is required (Encode, Recall).
	ErrInvalidPattern = errors.New("hopfield: pattern values must be -1 or +1")

	// ErrInvalidSteps is returned for a negative step count or a non-positive
	// sweep budget.
	ErrInvalidSteps = errors.New("hopfield: steps must be non-negative")

	// ErrOptionViolation is returned by NewNetwork when an invalid Option was supplied.
	ErrOptionViolation = errors.New("hopfield: invalid option supplied")

	// ErrNilNetwork is returned when a method is called on a nil *Network.
	ErrNilNetwork = errors.New("hopfield: network is nil")
)

// Operation tags used in error wrapping.
const (
	opNew      = "NewNetwork"
	opEncode   = "Encode"
	opRecall   = "Recall"
	opStable   = "RecallUntilStable"
	opEnergy   = "Energy"
	opWeight   = "Weight"
	opIsStable = "IsStable"
	opOverlap  = "Overlap"
	opHamming  = "Hamming"
)

// networkErrorf wraps err with an operation tag, preserving it for errors.Is.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
