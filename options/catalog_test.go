package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		New("n", "name", "Server display name", "resolve", true),
		New("p", "port", "TCP port to listen on", "8080", true),
		New("h", "help", "Show this help message", "", false),
	}
}

// TestCatalog_Lookup tests token resolution against the catalog.
func TestCatalog_Lookup(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name     string
		token    string
		found    bool
		longFlag string
	}{
		{
			name:     "short flag",
			token:    "-p",
			found:    true,
			longFlag: "port",
		},
		{
			name:     "long flag",
			token:    "--name",
			found:    true,
			longFlag: "name",
		},
		{
			name:     "help flag",
			token:    "--help",
			found:    true,
			longFlag: "help",
		},
		{
			name:  "unknown flag",
			token: "--nosuch",
			found: false,
		},
		{
			name:  "empty token",
			token: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := c.Lookup(tt.token)

			if !tt.found {
				assert.False(t, ok)
				assert.Nil(t, d)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.longFlag, d.LongFlag())
		})
	}
}

// TestCatalog_Lookup_FirstMatchWins verifies that a duplicate flag resolves
// to the earlier declaration (enumeration order is declaration order).
func TestCatalog_Lookup_FirstMatchWins(t *testing.T) {
	c := Catalog{
		New("x", "example", "first declaration", "a", true),
		New("x", "example", "second declaration", "b", true),
	}

	d, ok := c.Lookup("--example")

	require.True(t, ok)
	assert.Equal(t, "first declaration", d.Description())
}

// TestCatalog_Usage verifies that Usage concatenates every descriptor's help
// text in catalog order.
func TestCatalog_Usage(t *testing.T) {
	c := testCatalog()

	expected := "-n, --name\n\tServer display name\n" +
		"-p, --port\n\tTCP port to listen on\n" +
		"-h, --help\n\tShow this help message\n"
	assert.Equal(t, expected, c.Usage())
}

// TestCatalog_Usage_Empty verifies that an empty catalog renders no usage.
func TestCatalog_Usage_Empty(t *testing.T) {
	assert.Empty(t, Catalog{}.Usage())
}
