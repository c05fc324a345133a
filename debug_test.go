package askline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugLog(t *testing.T) {
	// The logger is initialized once and every caller gets the same
	// instance; chaining events off the returned pointer must work even
	// when tracing is disabled.
	first := debugLog()
	require.NotNil(t, first, "debugLog() should never return nil")
	assert.Same(t, first, debugLog(), "repeated calls should return the same logger")

	// No-op when ASKLINE_DEBUG is unset; must not panic or write anywhere.
	first.Debug().Str("k", "v").Msg("trace")
	debugLog().Debug().Msg("chained off the call expression")
}
