// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import "fmt"

// UnknownFlagError is returned when an argument-vector token or a synthesized
// config-file key does not match any descriptor in the catalog.
type UnknownFlagError struct {
	// Token is the offending flag token, dashes included.
	Token string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %q", e.Token)
}

// MissingArgumentError is returned when a flag appears as the final token of
// the argument vector, with no value token following it.
type MissingArgumentError struct {
	// Flag is the token whose value is absent.
	Flag string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("flag %q requires an argument", e.Flag)
}

// MalformedLineError is returned when a config-file line contains no "="
// separator and therefore cannot be split into a key and a value.
type MalformedLineError struct {
	// Line is the offending line, verbatim.
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed config line %q: no \"=\" separator", e.Line)
}

// ConfigReadError is returned when the config file exists but cannot be read.
// A non-existent file is not an error condition and never produces one.
type ConfigReadError struct {
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("error reading config file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying IO error.
func (e *ConfigReadError) Unwrap() error {
	return e.Err
}

// HelpRequestedError signals that the argument vector contained the help
// flag. It is a control signal rather than a failure: argument processing
// stops, no setting is overwritten, and the caller decides how to present
// the usage listing.
type HelpRequestedError struct {
	// Usage is the rendered help text of every catalog descriptor.
	Usage string
}

func (e *HelpRequestedError) Error() string {
	return "help requested"
}
