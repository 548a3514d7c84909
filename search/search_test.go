package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chordpad/chordpad/constants"
	"github.com/chordpad/chordpad/model"
)

func chord(name, category, subcategory string) model.ChordEntry {
	return model.ChordEntry{Name: name, Category: category, Subcategory: subcategory}
}

func names(entries []model.ChordEntry) []string {
	var res []string
	for _, e := range entries {
		res = append(res, e.Name)
	}
	return res
}

func TestEmptyQueryReturnsNothing(t *testing.T) {
	entries := []model.ChordEntry{chord("C", "Major", "Triad")}

	assert := assert.New(t)
	assert.Empty(Rank(entries, ""))
	assert.Empty(Rank(entries, "   "))
}

func TestExactThenPrefixThenLexicographic(t *testing.T) {
	entries := []model.ChordEntry{
		chord("Dm/C", "Minor", "Slash"),
		chord("Cmaj7", "Major", "Seventh"),
		chord("Ab/C", "Major", "Slash"),
		chord("Cm", "Minor", "Triad"),
		chord("C", "Major", "Triad"),
	}

	got := names(Rank(entries, "c"))
	assert.Equal(t, []string{"C", "Cm", "Cmaj7", "Ab/C", "Dm/C"}, got)
}

func TestExactMatchIsCaseInsensitive(t *testing.T) {
	entries := []model.ChordEntry{
		chord("Cm", "Minor", "Triad"),
		chord("C", "Major", "Triad"),
	}

	got := names(Rank(entries, "C"))
	assert.Equal(t, []string{"C", "Cm"}, got)
}

func TestSimpleMajorTriadBeatsOtherQualities(t *testing.T) {
	entries := []model.ChordEntry{
		chord("E7", "Dominant", "Seventh"),
		chord("Eb", "Major", "Triad"),
	}

	// same length, both prefixed by the query; lexicographic order
	// alone would put E7 first
	got := names(Rank(entries, "e"))
	assert.Equal(t, []string{"Eb", "E7"}, got)
}

func TestShorterNameWinsWithinTier(t *testing.T) {
	entries := []model.ChordEntry{
		chord("Gmaj7", "Major", "Seventh"),
		chord("Gm7", "Minor", "Seventh"),
		chord("Gm", "Minor", "Triad"),
	}

	got := names(Rank(entries, "gm"))
	assert.Equal(t, []string{"Gm", "Gm7", "Gmaj7"}, got)
}

func TestResultsAreCapped(t *testing.T) {
	var entries []model.ChordEntry
	for i := 0; i < constants.MaxSearchResults+5; i++ {
		entries = append(entries, chord(fmt.Sprintf("C%v", i), "Major", "Triad"))
	}

	assert.Len(t, Rank(entries, "c"), constants.MaxSearchResults)
}

func TestNonMatchingEntriesAreExcluded(t *testing.T) {
	entries := []model.ChordEntry{
		chord("C", "Major", "Triad"),
		chord("Dm", "Minor", "Triad"),
	}

	got := names(Rank(entries, "d"))
	assert.Equal(t, []string{"Dm"}, got)
}

func TestMatchPitchClassesIgnoresOctaves(t *testing.T) {
	entries := []model.ChordEntry{
		{Name: "C", PitchNumbers: []int{60, 64, 67}},
		{Name: "Am", PitchNumbers: []int{69, 72, 76}},
	}

	assert := assert.New(t)

	// first inversion of C major, an octave up
	got := MatchPitchClasses(entries, ClassSet([]int{76, 79, 84}))
	assert.Equal([]string{"C"}, names(got))

	// a dyad matches nothing
	assert.Empty(MatchPitchClasses(entries, ClassSet([]int{60, 64})))

	assert.Empty(MatchPitchClasses(entries, ClassSet(nil)))
}
