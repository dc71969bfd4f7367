// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environ provides environment-variable access helpers.
//
// It sits outside the core precedence merge: [Value] is a plain lookup with
// an optional fallback, and [Parse] populates tagged structs for callers
// that keep their own process settings in the environment.
package environ

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// MissingVariableError is returned by [Value] when the variable is unset and
// no fallback was supplied.
type MissingVariableError struct {
	// Key is the name of the missing environment variable.
	Key string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Key)
}

// Value returns the environment value for key. When the variable is unset,
// the first fallback is returned if one was supplied; otherwise Value
// returns a *MissingVariableError. An empty-but-set variable is a valid
// value, not a miss.
func Value(key string, fallback ...string) (string, error) {
	if v, ok := os.LookupEnv(key); ok {
		return v, nil
	}

	if len(fallback) > 0 {
		return fallback[0], nil
	}

	return "", &MissingVariableError{Key: key}
}

// Parse populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func Parse(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
