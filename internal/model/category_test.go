package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryElectrician, ParseCategory("Electrician"))
	assert.Equal(t, CategoryElectrician, ParseCategory("electrician"))
	assert.Equal(t, CategoryACRepair, ParseCategory("  ac repair "))
	assert.Equal(t, CategoryOther, ParseCategory("Astronaut"))
	assert.Equal(t, CategoryOther, ParseCategory(""))
}
