package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/value"
)

func noop(inputs []value.Value, meta graph.Meta) (Outputs, error) {
	return Outputs{}, nil
}

func TestRegisterAndResolve(t *testing.T) {
	r := New()
	add := &Component{
		Name:     "Addition",
		GUIDs:    []string{"{A0D62394-A118-422D-ABB3-6AF115C75B25}"},
		Names:    []string{"Addition", "A+B"},
		Evaluate: noop,
	}
	r.Register(add)

	t.Run("guid lookup normalizes braces and case", func(t *testing.T) {
		c, ok := r.Resolve("a0d62394-a118-422d-abb3-6af115c75b25", "", "")
		require.True(t, ok)
		assert.Equal(t, add, c)
	})

	t.Run("name lookup trims and lowercases", func(t *testing.T) {
		c, ok := r.Resolve("", " addition ", "")
		require.True(t, ok)
		assert.Equal(t, add, c)
	})

	t.Run("nickname lookup", func(t *testing.T) {
		c, ok := r.Resolve("", "", "a+b")
		require.True(t, ok)
		assert.Equal(t, add, c)
	})

	t.Run("no identity resolves nothing", func(t *testing.T) {
		_, ok := r.Resolve("", "", "")
		assert.False(t, ok)
	})
}

func TestResolvePriority(t *testing.T) {
	r := New()
	byGUID := &Component{Name: "ByGuid", GUIDs: []string{"1111"}, Evaluate: noop}
	byName := &Component{Name: "ByName", Names: []string{"shared"}, Evaluate: noop}
	r.Register(byGUID)
	r.Register(byName)

	// A known guid wins over a known but mismatched name.
	c, ok := r.Resolve("1111", "shared", "")
	require.True(t, ok)
	assert.Equal(t, byGUID, c)

	// An unknown guid falls through to the name index.
	c, ok = r.Resolve("9999", "shared", "")
	require.True(t, ok)
	assert.Equal(t, byName, c)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.Register(&Component{Name: "First", GUIDs: []string{"aa"}, Names: []string{"first"}, Evaluate: noop})

	assert.Panics(t, func() {
		r.Register(&Component{Name: "Second", GUIDs: []string{"AA"}, Evaluate: noop})
	})
	assert.Panics(t, func() {
		r.Register(&Component{Name: "Third", Names: []string{"First"}, Evaluate: noop})
	})
}

func TestIsOptional(t *testing.T) {
	c := &Component{Name: "Line SDL", Optional: []string{"L"}}
	assert.True(t, c.IsOptional("L"))
	assert.False(t, c.IsOptional("S"))
}
