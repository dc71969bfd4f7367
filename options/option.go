// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

// Option is the standard immutable [Descriptor] implementation.
//
// The zero value is not useful; construct options with [New]:
//
//	verbose := options.New("v", "verbose", "Verbosity level", "0", true)
type Option struct {
	short         string
	long          string
	description   string
	defaultValue  string
	takesArgument bool
}

// New constructs an [Option] descriptor. Flag names are given without
// dashes: short is a single character matched as "-"+short, long is matched
// as "--"+long.
func New(short, long, description, defaultValue string, takesArgument bool) Option {
	return Option{
		short:         short,
		long:          long,
		description:   description,
		defaultValue:  defaultValue,
		takesArgument: takesArgument,
	}
}

// ShortFlag returns the single-character flag name without the leading dash.
func (o Option) ShortFlag() string {
	return o.short
}

// LongFlag returns the long flag name without the leading dashes.
func (o Option) LongFlag() string {
	return o.long
}

// Description returns the human-readable help description.
func (o Option) Description() string {
	return o.description
}

// DefaultValue returns the compiled-in default for this option.
func (o Option) DefaultValue() string {
	return o.defaultValue
}

// TakesArgument reports whether the flag is declared to consume a value
// token. The resolver does not branch on this.
func (o Option) TakesArgument() bool {
	return o.takesArgument
}

// Matches reports whether token selects this option in either its short
// ("-x") or long ("--example") spelling.
func (o Option) Matches(token string) bool {
	return token == "-"+o.short || token == "--"+o.long
}

// HelpText returns the usage line for this option in the form
//
//	-x, --example
//		Description of the option.
func (o Option) HelpText() string {
	return "-" + o.short + ", --" + o.long + "\n\t" + o.description + "\n"
}
