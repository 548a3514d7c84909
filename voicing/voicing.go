package voicing

import (
	"github.com/chordpad/chordpad/constants"
	"github.com/chordpad/chordpad/model"
	"github.com/chordpad/chordpad/util"
)

var labels = [constants.MaxVoicings]string{"Root", "1st Inv", "2nd Inv", "3rd Inv"}

// Compute derives the displayable voicings for one entry: root position
// followed by up to three inversions. Notes past the fourth never lead a
// voicing of their own.
func Compute(entry model.ChordEntry) []model.Voicing {
	n := len(entry.PitchNumbers)
	if n == 0 {
		return nil
	}

	count := util.Min(n, constants.MaxVoicings)
	res := make([]model.Voicing, 0, count)

	root := make([]int, n)
	copy(root, entry.PitchNumbers)
	res = append(res, model.Voicing{Label: labels[0], Pitches: root})

	for k := 1; k < count; k++ {
		res = append(res, model.Voicing{Label: labels[k], Pitches: invert(entry.PitchNumbers, k)})
	}
	return res
}

// invert moves the bottom k notes up an octave and re-stacks. The bottom
// notes rotate to the top, every later pitch is raised by octaves until
// the sequence ascends again, and if the top escapes the keyboard window
// the whole voicing shifts down one octave. The shift is applied once,
// not iterated.
func invert(pitches []int, k int) []int {
	n := len(pitches)

	raised := make([]int, n)
	copy(raised, pitches)
	for i := 0; i < k; i++ {
		raised[i] += 12
	}

	rotated := make([]int, 0, n)
	rotated = append(rotated, raised[k:]...)
	rotated = append(rotated, raised[:k]...)

	for i := 1; i < n; i++ {
		for rotated[i] <= rotated[i-1] {
			rotated[i] += 12
		}
	}

	// ascending, so the last element is the max
	if rotated[n-1] > constants.WindowHigh {
		for i := range rotated {
			rotated[i] -= 12
		}
	}
	return rotated
}
