package model

// ChordEntry is one parsed catalog record. PitchNumbers holds the MIDI
// pitch of each note name in authored root-position order, already
// normalized to be strictly ascending.
type ChordEntry struct {
	Name         string   `json:"name"`
	NoteNames    []string `json:"note_names"`
	PitchNumbers []int    `json:"pitch_numbers"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
}

// Voicing is one keyboard-displayable arrangement of a chord's notes.
type Voicing struct {
	Label   string `json:"label"`
	Pitches []int  `json:"pitches"`
}
