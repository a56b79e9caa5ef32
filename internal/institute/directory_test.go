package institute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownCode(t *testing.T) {
	d := NewDirectory()

	e := d.Lookup("IITM")

	assert.Equal(t, "IIT Madras", e.Full)
	assert.Equal(t, "Chennai", e.City)
	assert.Equal(t, "recruit@iitm.ac.in", e.Email)
}

func TestLookup_CaseInsensitiveAndTrimmed(t *testing.T) {
	d := NewDirectory()

	assert.Equal(t, d.Lookup("IITKGP"), d.Lookup("  iitkgp "))
}

func TestLookup_UnknownCodeSynthesized(t *testing.T) {
	d := NewDirectory()

	e := d.Lookup("bits")

	assert.Equal(t, "BITS", e.Full)
	assert.Equal(t, "Other", e.City)
	assert.Equal(t, FallbackEmail, e.Email)
}

func TestCities_SortedAndDistinct(t *testing.T) {
	d := NewDirectory()

	cities := d.Cities()

	assert.NotEmpty(t, cities)
	seen := make(map[string]int)
	for _, c := range cities {
		seen[c]++
	}
	// Delhi and Hyderabad each back two institutes but appear once.
	assert.Equal(t, 1, seen["Delhi"])
	assert.Equal(t, 1, seen["Hyderabad"])
	assert.IsIncreasing(t, cities)
}

func TestInstitutes_Sorted(t *testing.T) {
	d := NewDirectory()

	names := d.Institutes()

	assert.Len(t, names, 18)
	assert.IsIncreasing(t, names)
}
