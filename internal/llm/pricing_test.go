package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	require.NotNil(t, c)
	assert.Equal(t, 0.15, c.InputPerMTok)
	assert.Equal(t, 0.6, c.OutputPerMTok)

	// OpenRouter-style vendor/model IDs match on the model part.
	c = LookupCost("google/gemini-2.0-flash-exp")
	require.NotNil(t, c)
	assert.Equal(t, 0.1, c.InputPerMTok)

	assert.Nil(t, LookupCost("some-unknown-model"))
	assert.Nil(t, LookupCost("vendor/some-unknown-model"))
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 2, OutputPerMTok: 10}

	assert.InDelta(t, 0.0, c.Cost(0, 0), 1e-12)
	assert.InDelta(t, 2.0, c.Cost(1_000_000, 0), 1e-9)
	assert.InDelta(t, 10.0, c.Cost(0, 1_000_000), 1e-9)
	assert.InDelta(t, 0.0025, c.Cost(1000, 50), 1e-9)
}
