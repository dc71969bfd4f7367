// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"
)

// ReadConfig reads the key/value config file at path and applies every line
// via [Resolver.ParseLine].
//
// A non-existent path is not an error: ReadConfig returns (false, nil) and
// leaves settings untouched. Any other open or read failure is reported as a
// *ConfigReadError wrapping the underlying IO error. Parse errors from
// individual lines (*MalformedLineError, *UnknownFlagError) propagate as-is;
// lines applied before the failure stay applied.
//
// Returns (true, nil) after the whole file has been applied. An empty file
// is valid and overrides nothing.
func (r *Resolver) ReadConfig(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &ConfigReadError{Path: path, Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := r.ParseLine(scanner.Text()); err != nil {
			return false, err
		}
	}
	if err := scanner.Err(); err != nil {
		return false, &ConfigReadError{Path: path, Err: err}
	}

	return true, nil
}

// ParseLine applies a single "key = value" config line.
//
// The line is split on the first "=": the key is trimmed, lowercased, and
// prefixed with "--" to form a long-flag token; the value is trimmed. A line
// without "=" yields a *MalformedLineError, a key matching no catalog
// descriptor yields an *UnknownFlagError carrying the synthesized token.
func (r *Resolver) ParseLine(line string) error {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return &MalformedLineError{Line: line}
	}

	token := "--" + strings.ToLower(strings.TrimSpace(key))
	descriptor, ok := r.Lookup(token)
	if !ok {
		return &UnknownFlagError{Token: token}
	}

	r.settings[descriptor] = strings.TrimSpace(value)
	return nil
}
