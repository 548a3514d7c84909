package search

import (
	"sort"
	"strings"

	"github.com/chordpad/chordpad/constants"
	"github.com/chordpad/chordpad/model"
	"github.com/chordpad/chordpad/pitch"
)

// isSimple reports whether an entry is a plain major triad. Simple
// chords outrank exotic ones when nothing else separates two matches.
func isSimple(entry model.ChordEntry) bool {
	return strings.EqualFold(entry.Category, "Major") &&
		strings.EqualFold(entry.Subcategory, "Triad")
}

func rankLess(a, b model.ChordEntry, query string) bool {
	aName := strings.ToLower(a.Name)
	bName := strings.ToLower(b.Name)

	if aExact, bExact := aName == query, bName == query; aExact != bExact {
		return aExact
	}
	if aPre, bPre := strings.HasPrefix(aName, query), strings.HasPrefix(bName, query); aPre != bPre {
		return aPre
	}
	if aSimple, bSimple := isSimple(a), isSimple(b); aSimple != bSimple {
		return aSimple
	}
	if len(a.Name) != len(b.Name) {
		return len(a.Name) < len(b.Name)
	}
	return aName < bName
}

// Rank returns the entries whose names contain the query, best match
// first, capped for autocomplete display.
func Rank(entries []model.ChordEntry, query string) []model.ChordEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []model.ChordEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), query) {
			matches = append(matches, entry)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return rankLess(matches[i], matches[j], query)
	})

	if len(matches) > constants.MaxSearchResults {
		matches = matches[:constants.MaxSearchResults]
	}
	return matches
}

// ClassSet reduces pitches to their set of pitch classes.
func ClassSet(pitches []int) map[int]bool {
	classes := make(map[int]bool)
	for _, p := range pitches {
		classes[pitch.Class(p)] = true
	}
	return classes
}

// MatchPitchClasses returns every entry built from exactly the given
// pitch classes, octave placement ignored. Used to name a chord from
// live input.
func MatchPitchClasses(entries []model.ChordEntry, classes map[int]bool) []model.ChordEntry {
	var res []model.ChordEntry
	if len(classes) == 0 {
		return res
	}
	for _, entry := range entries {
		if sameClassSet(ClassSet(entry.PitchNumbers), classes) {
			res = append(res, entry)
		}
	}
	return res
}

func sameClassSet(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b[c] {
			return false
		}
	}
	return true
}
