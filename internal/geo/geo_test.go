package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMaxMindLocator_MissingDatabase(t *testing.T) {
	_, err := NewMaxMindLocator("testdata/does-not-exist.mmdb")
	assert.Error(t, err)
}

func TestNullLocator(t *testing.T) {
	var loc Locator = NullLocator{}

	assert.Equal(t, Location{}, loc.Locate("203.0.113.9"))
	assert.Equal(t, Location{}, loc.Locate("not-an-ip"))
	assert.NoError(t, loc.Close())
}
