package catalog

import (
	"fmt"
	"strings"

	"github.com/chordpad/chordpad/constants"
	"github.com/chordpad/chordpad/model"
	"github.com/chordpad/chordpad/pitch"
)

const numFields = 4

// splitRecord splits one catalog line into its four top-level fields:
// name, quoted note list, category, subcategory. The note list is the
// only field that may contain commas, so commas inside a quoted span
// don't split. Quotes are not escapable inside the span.
func splitRecord(line string) ([numFields]string, bool) {
	var fields [numFields]string
	var curr strings.Builder
	numParsed := 0
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			if numParsed == numFields {
				return fields, false
			}
			fields[numParsed] = strings.TrimSpace(curr.String())
			numParsed++
			curr.Reset()
		default:
			curr.WriteRune(r)
		}
	}
	if inQuotes || numParsed != numFields-1 {
		return fields, false
	}
	fields[numParsed] = strings.TrimSpace(curr.String())

	for _, f := range fields {
		if f == "" {
			return fields, false
		}
	}
	return fields, true
}

// assignPitches maps each label to a pitch while preserving the authored
// voicing shape: the first pitch is taken as mapped, every later one is
// raised by octaves until it clears the pitch before it.
func assignPitches(labels []string) []int {
	res := make([]int, len(labels))
	for i, label := range labels {
		p := pitch.FromLabel(label)
		if i > 0 {
			for p <= res[i-1] {
				p += 12
			}
		}
		res[i] = p
	}
	return res
}

func parseLine(line string) (model.ChordEntry, bool) {
	var entry model.ChordEntry

	fields, ok := splitRecord(line)
	if !ok {
		fmt.Printf("Skipping malformed catalog line: %v\n", line)
		return entry, false
	}

	var labels []string
	for _, label := range strings.Split(fields[1], ",") {
		labels = append(labels, strings.TrimSpace(label))
	}

	entry.Name = fields[0]
	entry.NoteNames = labels
	entry.PitchNumbers = assignPitches(labels)
	entry.Category = fields[2]
	entry.Subcategory = fields[3]

	// octave raising on a long chord can walk past the top of the
	// pitch range, in which case the record is unusable
	last := entry.PitchNumbers[len(entry.PitchNumbers)-1]
	if last < constants.MinPitch || last > constants.MaxPitch {
		fmt.Printf("Skipping catalog line with out-of-range pitch %v: %v\n", last, line)
		return entry, false
	}

	return entry, true
}

// Parse turns raw catalog text into entries. The first line is a header
// and is discarded. A bad line never aborts the load: it is skipped with
// a diagnostic and parsing moves on.
func Parse(raw string) []model.ChordEntry {
	var res []model.ChordEntry
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		if entry, ok := parseLine(line); ok {
			res = append(res, entry)
		}
	}
	return res
}
