package options

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/descriptor_mock.go -package=mock

// Descriptor identifies one configurable setting: its flag spellings, help
// description, default value, and arity. Implementations must be immutable
// and comparable, because resolved settings are keyed by Descriptor.
//
// Most callers use the [Option] value type; the interface exists so that a
// program with unusual matching rules can supply its own implementation.
type Descriptor interface {
	// ShortFlag returns the single-character flag name, without the
	// leading dash.
	ShortFlag() string

	// LongFlag returns the long flag name, without the leading dashes.
	LongFlag() string

	// Description returns the human-readable help description.
	Description() string

	// DefaultValue returns the value the setting holds before any
	// config-file or argument-vector override.
	DefaultValue() string

	// TakesArgument reports whether the flag consumes a value token.
	// Informational only: the resolver treats every non-help flag as
	// consuming exactly one value token regardless.
	TakesArgument() bool

	// Matches reports whether the given command-line token selects this
	// descriptor, i.e. token equals "-"+ShortFlag() or "--"+LongFlag().
	Matches(token string) bool

	// HelpText returns the formatted usage line for this descriptor.
	HelpText() string
}
