package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundtrip(t *testing.T) {
	c := NewActionCodec(5, 20, 3)
	require.Equal(t, 18, c.MaxBid())
	require.Equal(t, 5*19, c.NumActions())

	for action := 0; action < c.NumActions(); action++ {
		p, b := c.Decode(action)
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 5)
		assert.GreaterOrEqual(t, b, 0)
		assert.LessOrEqual(t, b, c.MaxBid())
		assert.Equal(t, action, c.Encode(p, b))
	}
}

func TestCodecActionNone(t *testing.T) {
	c := NewActionCodec(5, 20, 3)
	p, b := c.Decode(ActionNone)
	assert.Zero(t, p)
	assert.Zero(t, b)
}

func TestCodecPanicsOutOfRange(t *testing.T) {
	c := NewActionCodec(5, 20, 3)

	assert.Panics(t, func() { c.Encode(-1, 1) })
	assert.Panics(t, func() { c.Encode(5, 1) })
	assert.Panics(t, func() { c.Encode(0, -1) })
	assert.Panics(t, func() { c.Encode(0, c.MaxBid()+1) })
	assert.Panics(t, func() { c.Decode(-1) })
	assert.Panics(t, func() { c.Decode(c.NumActions()) })
}
