package config

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported by the loader. Use errors.Is to classify a load failure.
var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrInvalidRange      = errors.New("invalid range")
	ErrMissingDependency = errors.New("missing dependency")
)

// maxVersionCode is the largest versionCode the Play store accepts.
const maxVersionCode = 2100000000

// ValidationError represents a single rejected field
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

// Error returns the string representation of the validation error
func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Message)
}

// Unwrap exposes the error kind to errors.Is.
func (e ValidationError) Unwrap() error {
	return e.Kind
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns the string representation of all validation errors
func (e ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is match the kind of any contained error.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// Kinds returns the distinct error kinds in the order they first appear.
func (e ValidationErrors) Kinds() []error {
	var kinds []error
	for _, err := range e {
		seen := false
		for _, k := range kinds {
			if k == err.Kind {
				seen = true
				break
			}
		}
		if !seen {
			kinds = append(kinds, err.Kind)
		}
	}
	return kinds
}

func malformed(field, format string, a ...interface{}) ValidationError {
	return ValidationError{Kind: ErrMalformedDocument, Field: field, Message: fmt.Sprintf(format, a...)}
}

// Validate checks numeric ranges and conditional fields of already decoded settings.
// With strict set, targetApiLevel <= compileApiLevel is enforced as well.
func (s BuildSettings) Validate(strict bool) error {
	var errs ValidationErrors

	levels := []struct {
		field string
		value int
	}{
		{"sdk.compileApiLevel", s.CompileAPILevel},
		{"sdk.minApiLevel", s.MinAPILevel},
		{"sdk.targetApiLevel", s.TargetAPILevel},
	}
	positive := true
	for _, l := range levels {
		if l.value <= 0 {
			positive = false
			errs = append(errs, ValidationError{
				Kind:    ErrInvalidRange,
				Field:   l.field,
				Message: fmt.Sprintf("must be a positive integer, got %d", l.value),
			})
		}
	}

	if positive {
		if s.MinAPILevel > s.TargetAPILevel {
			errs = append(errs, ValidationError{
				Kind:    ErrInvalidRange,
				Field:   "sdk.minApiLevel",
				Message: fmt.Sprintf("minApiLevel %d is greater than targetApiLevel %d", s.MinAPILevel, s.TargetAPILevel),
			})
		}
		if strict && s.TargetAPILevel > s.CompileAPILevel {
			errs = append(errs, ValidationError{
				Kind:    ErrInvalidRange,
				Field:   "sdk.targetApiLevel",
				Message: fmt.Sprintf("targetApiLevel %d is greater than compileApiLevel %d", s.TargetAPILevel, s.CompileAPILevel),
			})
		}
		if strict && s.MinAPILevel > s.CompileAPILevel {
			errs = append(errs, ValidationError{
				Kind:    ErrInvalidRange,
				Field:   "sdk.minApiLevel",
				Message: fmt.Sprintf("minApiLevel %d is greater than compileApiLevel %d", s.MinAPILevel, s.CompileAPILevel),
			})
		}
	}

	if s.VersionCode <= 0 {
		errs = append(errs, ValidationError{
			Kind:    ErrInvalidRange,
			Field:   "versioning.versionCode",
			Message: fmt.Sprintf("must be a positive integer, got %d", s.VersionCode),
		})
	} else if s.VersionCode > maxVersionCode {
		errs = append(errs, ValidationError{
			Kind:    ErrInvalidRange,
			Field:   "versioning.versionCode",
			Message: fmt.Sprintf("must not exceed %d, got %d", maxVersionCode, s.VersionCode),
		})
	}

	if s.DesugaringEnabled && strings.TrimSpace(s.DesugaringLibrary) == "" {
		errs = append(errs, ValidationError{
			Kind:    ErrMissingDependency,
			Field:   "dependencies.desugaringLibraryDependency",
			Message: "required when compatibility.desugaringEnabled is true",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
