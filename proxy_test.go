package tether_test

import (
	"strings"
	"testing"

	"github.com/phroun/tether"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyDelegatesReads(t *testing.T) {
	content := tether.NewArray("dog", "cat", "fish")
	p, err := tether.NewProxy[string](content)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Len())

	v, ok := p.ObjectAt(0)
	require.True(t, ok)
	assert.Equal(t, "dog", v)

	// In range, the proxy agrees with the arranged view element for element.
	for i := 0; i < p.Len(); i++ {
		got, ok := p.ObjectAt(i)
		require.True(t, ok)
		want, _ := content.ObjectAt(i)
		assert.Equal(t, want, got)
	}

	_, ok = p.ObjectAt(-1)
	assert.False(t, ok)
	_, ok = p.ObjectAt(3)
	assert.False(t, ok)
}

func TestProxyNilContent(t *testing.T) {
	p, err := tether.NewProxy[string](nil)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Len())
	_, ok := p.ObjectAt(0)
	assert.False(t, ok)

	assert.ErrorIs(t, p.Replace(0, 0, []string{"x"}), tether.ErrNilContent)

	assert.Nil(t, p.Content())
	assert.Nil(t, p.ArrangedContent())
}

func TestProxyAccessors(t *testing.T) {
	content := tether.NewArray(1, 2, 3)
	p, err := tether.NewProxy[int](content)
	require.NoError(t, err)

	assert.Same(t, content, p.Content())
	// Default arrangement aliases the content.
	assert.Same(t, content, p.ArrangedContent())
	assert.False(t, p.Destroyed())
}

func TestProxyLenNeverStale(t *testing.T) {
	content := tether.NewArray(1, 2, 3)
	p, err := tether.NewProxy[int](content)
	require.NoError(t, err)

	require.NoError(t, content.Replace(0, 2, nil))
	assert.Equal(t, 1, p.Len())

	content.Append(4, 5, 6)
	assert.Equal(t, 4, p.Len())

	require.NoError(t, p.SetContent(tether.NewArray(9)))
	assert.Equal(t, 1, p.Len())

	require.NoError(t, p.SetContent(nil))
	assert.Equal(t, 0, p.Len())
}

func TestProxyReplaceMutatesContent(t *testing.T) {
	content := tether.NewArray("dog", "cat", "fish")
	p, err := tether.NewProxy[string](content)
	require.NoError(t, err)

	rec := &recorder[string]{}
	p.AddArrayObserver(rec)

	require.NoError(t, p.Replace(1, 1, []string{"bird"}))

	assert.Equal(t, []string{"dog", "bird", "fish"}, content.Objects())
	// The underlying splice notification is forwarded as the proxy's own.
	assert.Equal(t, []changeRecord{will(1, 1, 1), did(1, 1, 1)}, rec.records)

	assert.ErrorIs(t, p.Replace(7, 1, nil), tether.ErrInvalidRange)
}

func TestProxyObjectAtContentHook(t *testing.T) {
	content := tether.NewArray("dog", "cat")
	p, err := tether.NewProxy[string](content, tether.Hooks[string]{
		ObjectAtContent: func(p *tether.Proxy[string], i int) (string, bool) {
			v, ok := tether.ObjectAt[string](p.ArrangedContent(), i)
			return strings.ToUpper(v), ok
		},
	})
	require.NoError(t, err)

	v, ok := p.ObjectAt(1)
	require.True(t, ok)
	assert.Equal(t, "CAT", v)

	_, ok = p.ObjectAt(5)
	assert.False(t, ok)
}

func TestProxyChaining(t *testing.T) {
	base := tether.NewArray("a", "b")
	inner, err := tether.NewProxy[string](base)
	require.NoError(t, err)

	// A proxy is itself a Mutable, so it can serve as another proxy's
	// content.
	outer, err := tether.NewProxy[string](inner)
	require.NoError(t, err)

	rec := &recorder[string]{}
	outer.AddArrayObserver(rec)

	require.NoError(t, base.Replace(1, 1, []string{"c"}))

	v, ok := outer.ObjectAt(1)
	require.True(t, ok)
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, outer.Len())

	// The mutation propagated through both proxies unchanged.
	assert.Equal(t, []changeRecord{will(1, 1, 1), did(1, 1, 1)}, rec.records)
	for _, src := range rec.sources {
		assert.Same(t, outer, src)
	}
}
