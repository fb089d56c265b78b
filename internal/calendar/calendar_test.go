package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Len(t, c.Challenges, 31)
	for i, ch := range c.Challenges {
		assert.Equal(t, i+1, ch.Day)
		assert.NotEmpty(t, ch.Prompt)
		assert.NotEmpty(t, ch.Credit)
	}

	d13, ok := c.Day(13)
	require.True(t, ok)
	assert.Equal(t, "Triangles and nothing else", d13.Prompt)
	assert.Equal(t, []string{"mesh"}, d13.Sketches)
	assert.Equal(t, "Not started", d13.Status())

	d1, _ := c.Day(1)
	assert.Equal(t, "Completed", d1.Status())

	_, ok = c.Day(32)
	assert.False(t, ok)

	assert.Equal(t, 5, c.Completed())
	assert.Len(t, c.WithSketch(), 2)
}

func TestParseSortsAndValidates(t *testing.T) {
	c, err := Parse([]byte(`
- day: 2
  prompt: b
- day: 1
  prompt: a
`))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Challenges[0].Day)

	_, err = Parse([]byte("- day: 1\n- day: 1\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte("- day: 0\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("day: [1"))
	assert.Error(t, err)
}
