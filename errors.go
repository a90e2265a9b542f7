package mathstuff

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying filter failures. Every error returned by this
// package wraps exactly one of these, so callers can dispatch with
// errors.Is without parsing messages.
var (
	// ErrInvalidArgument covers wrong types, wrong arity, out-of-domain
	// values, and invalid enumerated options.
	ErrInvalidArgument = errors.New("mathstuff: invalid argument")

	// ErrMissingKey is returned when a required field is absent from a
	// record.
	ErrMissingKey = errors.New("mathstuff: missing key")

	// ErrDuplicateKey is returned by RekeyOnMember when two records map to
	// the same key under the "error" duplicate policy.
	ErrDuplicateKey = errors.New("mathstuff: duplicate key")

	// ErrConversion is returned when the underlying byte/unit utility
	// cannot interpret its input.
	ErrConversion = errors.New("mathstuff: conversion error")
)

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func missingKeyf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMissingKey, fmt.Sprintf(format, args...))
}

func duplicateKeyf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDuplicateKey, fmt.Sprintf(format, args...))
}

func conversionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConversion, fmt.Sprintf(format, args...))
}
