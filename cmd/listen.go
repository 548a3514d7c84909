package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/chordpad/chordpad/search"
	"github.com/chordpad/chordpad/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a midi input",
	Long:  `Names chords played on a midi input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

// noteSet tracks the currently held keys. The midi driver callback and
// the debounce timer run on different goroutines, so every access goes
// through the mutex.
type noteSet struct {
	mu    sync.Mutex
	notes map[uint8]bool
}

func newNoteSet() *noteSet {
	return &noteSet{notes: make(map[uint8]bool)}
}

func (n *noteSet) press(key uint8) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes[key] = true
}

func (n *noteSet) release(key uint8) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.notes, key)
}

func (n *noteSet) snapshot() []int {
	n.mu.Lock()
	defer n.mu.Unlock()
	var pitches []int
	for _, k := range util.GetKeys(n.notes) {
		pitches = append(pitches, int(k))
	}
	return pitches
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	entries := newCatalog().Load()
	pressed := newNoteSet()

	// coalesce the note flurry of a strummed chord into one lookup
	debounced := debounce.New(100 * time.Millisecond)

	identify := func() {
		pitches := pressed.snapshot()
		if len(pitches) < 2 {
			return
		}
		matches := search.MatchPitchClasses(entries, search.ClassSet(pitches))
		for _, m := range matches {
			fmt.Printf("%v (%v %v)\n", m.Name, m.Category, m.Subcategory)
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			pressed.press(key)
			debounced(identify)
		case msg.GetNoteEnd(&ch, &key):
			pressed.release(key)
			debounced(identify)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
