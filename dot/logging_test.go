package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sciutil"
	"github.com/katalvlaran/sciutil/dot"
)

// TestForkJoin_LogsPlan checks the debug entry emitted when work is fanned out.
func TestForkJoin_LogsPlan(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sciutil.SetLogger(zap.New(core))
	t.Cleanup(func() { sciutil.SetLogger(nil) })

	a := make([]float64, 100)
	_, err := dot.Real(a, a, dot.WithWorkers(4), dot.WithMinChunk(10))
	require.NoError(t, err)

	entries := logs.FilterMessage("fork-join reduction").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(100), fields["n"])
	assert.Equal(t, int64(4), fields["workers"])
	assert.Equal(t, int64(25), fields["chunk"])

	// Serial runs stay silent.
	_, err = dot.Real(a[:5], a[:5], dot.WithWorkers(4), dot.WithMinChunk(10))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("fork-join reduction").Len())
}
