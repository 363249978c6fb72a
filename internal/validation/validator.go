// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Package validation wraps go-playground/validator v10 behind a
// thread-safe singleton. Request DTOs declare their constraints with
// `validate` struct tags; handlers call ValidateStruct and map a
// failure to the endpoint's client-facing message.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the singleton instance. The validator caches
// struct metadata, so sharing one instance is both safe and faster.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldError describes a single failed constraint.
type FieldError struct {
	Field string
	Tag   string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %s failed on %q", e.Field, e.Tag)
}

// ValidationError aggregates the failed constraints of one struct.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateStruct validates v against its `validate` tags. Returns nil
// on success, or a *ValidationError listing every failed field.
func ValidateStruct(v interface{}) *ValidationError {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: v was not a struct. Programmer error.
		return &ValidationError{Fields: []FieldError{{Field: "", Tag: err.Error()}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return &ValidationError{Fields: fields}
}
