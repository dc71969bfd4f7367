package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Set verifies that a set variable is returned as-is.
func TestValue_Set(t *testing.T) {
	t.Setenv("CONFRESOLVE_TEST_VAR", "from-env")

	v, err := Value("CONFRESOLVE_TEST_VAR")

	require.NoError(t, err)
	assert.Equal(t, "from-env", v)
}

// TestValue_SetEmpty verifies that an empty-but-set variable is a valid
// value, not a miss.
func TestValue_SetEmpty(t *testing.T) {
	t.Setenv("CONFRESOLVE_TEST_VAR", "")

	v, err := Value("CONFRESOLVE_TEST_VAR", "fallback")

	require.NoError(t, err)
	assert.Empty(t, v)
}

// TestValue_Fallback verifies that the fallback is returned for an unset
// variable.
func TestValue_Fallback(t *testing.T) {
	v, err := Value("CONFRESOLVE_UNSET_VAR", "fallback")

	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}

// TestValue_Missing verifies the typed error for an unset variable without
// fallback.
func TestValue_Missing(t *testing.T) {
	_, err := Value("CONFRESOLVE_UNSET_VAR")

	var missing *MissingVariableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "CONFRESOLVE_UNSET_VAR", missing.Key)
}

// TestParse verifies tag-based struct population from the environment.
func TestParse(t *testing.T) {
	t.Setenv("CONFRESOLVE_CONFIG", "/etc/resolve.conf")

	var cfg struct {
		ConfigPath string `env:"CONFRESOLVE_CONFIG"`
		Role       string `env:"CONFRESOLVE_ROLE" envDefault:"resolve"`
	}
	require.NoError(t, Parse(&cfg))

	assert.Equal(t, "/etc/resolve.conf", cfg.ConfigPath)
	assert.Equal(t, "resolve", cfg.Role)
}

// TestParse_InvalidTarget verifies that a non-struct target is reported as a
// wrapped error.
func TestParse_InvalidTarget(t *testing.T) {
	var notAStruct int
	err := Parse(&notAStruct)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
