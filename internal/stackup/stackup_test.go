package stackup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStackup(t *testing.T) {
	s := Default()
	require.Equal(t, 2, s.Count())
	assert.Equal(t, "Top", s.Top().Name)
	assert.Equal(t, "Bottom", s.Bottom().Name)
	assert.Equal(t, 1, s.OrderForLayer(s.Bottom()))
	assert.Same(t, s.Top(), s.LayerNamed("Top"))
}

func TestEmptyStackup(t *testing.T) {
	s := New()
	assert.Nil(t, s.Top())
	assert.Nil(t, s.Bottom())
	assert.Nil(t, s.LayerNamed("Top"))
	assert.Equal(t, -1, s.OrderForLayer(&Layer{Name: "Top"}))
}

func TestInnerLayers(t *testing.T) {
	s := Default()
	inner := &Layer{Name: "In1"}
	s.AddLayer(inner)
	assert.Equal(t, 2, s.OrderForLayer(inner))
	assert.Same(t, inner, s.Bottom())
	assert.Nil(t, s.At(3))
}
