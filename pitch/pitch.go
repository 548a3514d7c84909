package pitch

import "fmt"

// ReferenceC is middle C. Every label is anchored relative to it.
const ReferenceC = 60

// pitchClass is one chromatic step above the reference C, with every
// accepted spelling for it. Sharps and flats of neighboring letters are
// aliases for the same class.
type pitchClass struct {
	semitones int
	labels    []string
}

var pitchClasses = [12]pitchClass{
	{0, []string{"C", "B#"}},
	{1, []string{"C#", "Db"}},
	{2, []string{"D"}},
	{3, []string{"D#", "Eb"}},
	{4, []string{"E", "Fb"}},
	{5, []string{"F", "E#"}},
	{6, []string{"F#", "Gb"}},
	{7, []string{"G"}},
	{8, []string{"G#", "Ab"}},
	{9, []string{"A"}},
	{10, []string{"A#", "Bb"}},
	{11, []string{"B", "Cb"}},
}

var labelToPitch = buildLabelMap()

func buildLabelMap() map[string]int {
	m := make(map[string]int)
	for _, pc := range pitchClasses {
		for _, label := range pc.labels {
			m[label] = ReferenceC + pc.semitones
		}
	}
	return m
}

// FromLabel maps a note-name label to its MIDI pitch in the octave of
// middle C. An unrecognized label does not abort anything: it substitutes
// middle C so the surrounding record can still be used.
func FromLabel(label string) int {
	if p, ok := labelToPitch[label]; ok {
		return p
	}
	fmt.Printf("Unknown note label %q, substituting middle C\n", label)
	return ReferenceC
}

// Class reduces a pitch to its pitch class, safe for negative input.
func Class(p int) int {
	return ((p % 12) + 12) % 12
}
