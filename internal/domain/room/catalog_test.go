package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookup(t *testing.T) {
	c := Default()

	e, ok := c.Lookup("single")
	require.True(t, ok)
	assert.Equal(t, "Single Room", e.Label)
	assert.Equal(t, 5000.0, e.Rate)

	_, ok = c.Lookup("penthouse")
	assert.False(t, ok)
	assert.False(t, c.Has(""))
}

func TestDefaultCatalogOrder(t *testing.T) {
	var keys []string
	for _, e := range Default().All() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"single", "double", "suite", "deluxe"}, keys)
}

func TestLookupReturnsCopy(t *testing.T) {
	c := Default()
	e, _ := c.Lookup("suite")
	e.Features[0] = "changed"
	e.Rate = 1

	again, _ := c.Lookup("suite")
	assert.Equal(t, "Living Area", again.Features[0])
	assert.Equal(t, 12000.0, again.Rate)
}

func TestNewIgnoresDuplicateKeys(t *testing.T) {
	c := New([]Entry{{Key: "a", Rate: 1}, {Key: "a", Rate: 2}})
	e, ok := c.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Rate)
	assert.Len(t, c.All(), 1)
}

func TestLabelFallsBackToKey(t *testing.T) {
	assert.Equal(t, "Deluxe Suite", Default().Label("deluxe"))
	assert.Equal(t, "attic", Default().Label("attic"))
}
