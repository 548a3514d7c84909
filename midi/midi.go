package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/chordpad/chordpad/model"
)

const velocity = 100

// VoicingsToSMF builds a one-track Standard MIDI File that plays each
// voicing as a block chord, in order, two beats apiece.
func VoicingsToSMF(voicings []model.Voicing) *smf.SMF {
	s := smf.New()
	clock := smf.MetricTicks(960)
	s.TimeFormat = clock

	hold := clock.Ticks4th() * 2

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	for _, v := range voicings {
		for _, p := range v.Pitches {
			track.Add(0, midi.NoteOn(0, uint8(p), velocity))
		}
		for i, p := range v.Pitches {
			delta := uint32(0)
			if i == 0 {
				delta = hold
			}
			track.Add(delta, midi.NoteOff(0, uint8(p)))
		}
	}
	track.Close(0)
	s.Add(track)
	return s
}
