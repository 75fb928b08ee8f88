package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldLowersAndDecomposes(t *testing.T) {
	assert.Equal(t, "plain broth", Fold("Plain Broth"))
	assert.True(t, strings.Contains(Fold("Café Crème"), "cafe"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "golden-elixir-tea-ritual", Slugify("Golden Elixir Tea Ritual"))
	assert.Equal(t, "neidan-the-inner-cauldron", Slugify("  Neidan: The Inner Cauldron!  "))
	assert.Equal(t, "star-pacing", Slugify("Star -- Pacing"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestNewIDCarriesPrefix(t *testing.T) {
	id := NewID("order")
	assert.True(t, strings.HasPrefix(id, "order-"))
	assert.NotEqual(t, id, NewID("order"))
}
