package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleCAnchor(t *testing.T) {
	assert.Equal(t, 60, FromLabel("C"))
}

func TestNaturals(t *testing.T) {
	expected := map[string]int{
		"C": 60, "D": 62, "E": 64, "F": 65, "G": 67, "A": 69, "B": 71,
	}
	for label, want := range expected {
		assert.Equal(t, want, FromLabel(label), label)
	}
}

func TestEnharmonicPairsAreIdentical(t *testing.T) {
	pairs := [][2]string{
		{"C#", "Db"},
		{"D#", "Eb"},
		{"F#", "Gb"},
		{"G#", "Ab"},
		{"A#", "Bb"},
	}
	for _, pair := range pairs {
		name := fmt.Sprintf("%v equals %v", pair[0], pair[1])
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, FromLabel(pair[0]), FromLabel(pair[1]))
		})
	}
}

func TestUnknownLabelSubstitutesMiddleC(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(ReferenceC, FromLabel("H"))
	assert.Equal(ReferenceC, FromLabel(""))
	assert.Equal(ReferenceC, FromLabel("Cx"))
}

func TestClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Class(60))
	assert.Equal(2, Class(74))
	assert.Equal(11, Class(-1))
}
