/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrRegistrationConflict is returned when a type tag is registered twice
	ErrRegistrationConflict = errors.New("type tag already registered")

	// ErrMalformedTag is returned when input is not a single-key mapping
	// where a tagged value is expected
	ErrMalformedTag = errors.New("malformed tagged value")

	// ErrUnknownType is returned when a type tag has no registered decode function
	ErrUnknownType = errors.New("unknown type tag")

	// ErrPayload is returned when a concrete type's own deserialization fails
	ErrPayload = errors.New("payload decode failed")

	// ErrNotFound is returned when a stored value is not found
	ErrNotFound = errors.New("value not found")
)

// MalformedTagError reports input that does not form a valid tagged envelope
type MalformedTagError struct {
	Reason string
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("malformed tagged value: %s", e.Reason)
}

func (e *MalformedTagError) Is(target error) bool {
	return target == ErrMalformedTag
}

// UnknownTypeError reports a tag that resolved to no registered type
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type for interface: %q", e.Tag)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// PayloadError wraps a decode failure from a concrete type's own deserialization
type PayloadError struct {
	Tag string
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("decoding payload for type %q: %v", e.Tag, e.Err)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

func (e *PayloadError) Is(target error) bool {
	return target == ErrPayload
}

// NotFoundError reports a missing stored value
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("value with key %q not found", e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Helper functions for creating errors

// NewMalformedTagError creates a new MalformedTagError
func NewMalformedTagError(reason string) error {
	return &MalformedTagError{Reason: reason}
}

// NewUnknownTypeError creates a new UnknownTypeError
func NewUnknownTypeError(tag string) error {
	return &UnknownTypeError{Tag: tag}
}

// NewPayloadError creates a new PayloadError wrapping err
func NewPayloadError(tag string, err error) error {
	return &PayloadError{Tag: tag, Err: err}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(key string) error {
	return &NotFoundError{Key: key}
}

// IsRegistrationConflict checks if an error is a registration conflict
func IsRegistrationConflict(err error) bool {
	return errors.Is(err, ErrRegistrationConflict)
}

// IsMalformedTag checks if an error is a malformed tag error
func IsMalformedTag(err error) bool {
	return errors.Is(err, ErrMalformedTag)
}

// IsUnknownType checks if an error is an unknown type error
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// IsPayloadError checks if an error is a payload decode error
func IsPayloadError(err error) bool {
	return errors.Is(err, ErrPayload)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
