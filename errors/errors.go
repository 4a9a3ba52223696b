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
	// ErrConfiguration is returned for invalid hierarchy registrations
	ErrConfiguration = errors.New("invalid hierarchy configuration")

	// ErrResolution is returned when a concrete type cannot be resolved for a value
	ErrResolution = errors.New("unable to resolve concrete type")

	// ErrNoBinding is returned when a descriptor has no Go type bound to it
	ErrNoBinding = errors.New("no Go type bound for descriptor")
)

// MissingOptionsError reports a discriminator handler type that declares no
// resolve options.
type MissingOptionsError struct {
	Handler string
}

func (e *MissingOptionsError) Error() string {
	return fmt.Sprintf("no resolve options declared on type %q", e.Handler)
}

func (e *MissingOptionsError) Is(target error) bool {
	return target == ErrConfiguration
}

// SelfResolutionError reports a registration that maps a discriminator key to
// the parent type itself while AllowSelf is not set.
type SelfResolutionError struct {
	Parent string
}

func (e *SelfResolutionError) Error() string {
	return fmt.Sprintf("type %q cannot discriminate to itself: AllowSelf is not set", e.Parent)
}

func (e *SelfResolutionError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidChildError reports a registered child that is not a proper subtype
// of its declared parent.
type InvalidChildError struct {
	Child  string
	Parent string
}

func (e *InvalidChildError) Error() string {
	return fmt.Sprintf("type %q is not a subtype of %q", e.Child, e.Parent)
}

func (e *InvalidChildError) Is(target error) bool {
	return target == ErrConfiguration
}

// DuplicateTypeError reports a type name declared more than once in a
// descriptor set.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("type %q already declared", e.Name)
}

func (e *DuplicateTypeError) Is(target error) bool {
	return target == ErrConfiguration
}

// MissingDiscriminatorError reports a value that carries no usable
// discriminator for a type that requires one.
type MissingDiscriminatorError struct {
	TypeName string
}

func (e *MissingDiscriminatorError) Error() string {
	return fmt.Sprintf("missing discriminator attribute to resolve subtype of %q", e.TypeName)
}

func (e *MissingDiscriminatorError) Is(target error) bool {
	return target == ErrResolution
}

// UnknownDiscriminatorError reports a discriminator value with no registered
// child type.
type UnknownDiscriminatorError struct {
	Parent string
	Key    string
}

func (e *UnknownDiscriminatorError) Error() string {
	return fmt.Sprintf("no subtype of %q registered for discriminator value %q", e.Parent, e.Key)
}

func (e *UnknownDiscriminatorError) Is(target error) bool {
	return target == ErrResolution
}

// NoBindingError reports a resolved descriptor with no Go type bound to it.
type NoBindingError struct {
	TypeName string
}

func (e *NoBindingError) Error() string {
	return fmt.Sprintf("no Go type bound for %q", e.TypeName)
}

func (e *NoBindingError) Is(target error) bool {
	return target == ErrNoBinding
}

// Helper functions for creating errors

// NewMissingOptionsError creates a new MissingOptionsError
func NewMissingOptionsError(handler string) error {
	return &MissingOptionsError{Handler: handler}
}

// NewSelfResolutionError creates a new SelfResolutionError
func NewSelfResolutionError(parent string) error {
	return &SelfResolutionError{Parent: parent}
}

// NewInvalidChildError creates a new InvalidChildError
func NewInvalidChildError(child, parent string) error {
	return &InvalidChildError{Child: child, Parent: parent}
}

// NewDuplicateTypeError creates a new DuplicateTypeError
func NewDuplicateTypeError(name string) error {
	return &DuplicateTypeError{Name: name}
}

// NewMissingDiscriminatorError creates a new MissingDiscriminatorError
func NewMissingDiscriminatorError(typeName string) error {
	return &MissingDiscriminatorError{TypeName: typeName}
}

// NewUnknownDiscriminatorError creates a new UnknownDiscriminatorError
func NewUnknownDiscriminatorError(parent, key string) error {
	return &UnknownDiscriminatorError{Parent: parent, Key: key}
}

// NewNoBindingError creates a new NoBindingError
func NewNoBindingError(typeName string) error {
	return &NoBindingError{TypeName: typeName}
}

// IsConfiguration checks if an error is a registration-time configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsResolution checks if an error is a decode-time resolution error
func IsResolution(err error) bool {
	return errors.Is(err, ErrResolution)
}

// IsNoBinding checks if an error reports a missing Go type binding
func IsNoBinding(err error) bool {
	return errors.Is(err, ErrNoBinding)
}
