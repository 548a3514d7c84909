package cmd

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteSetTracksHeldKeys(t *testing.T) {
	ns := newNoteSet()
	ns.press(60)
	ns.press(64)
	ns.press(67)
	ns.release(64)

	assert.ElementsMatch(t, []int{60, 67}, ns.snapshot())
}

func TestNoteSetSafeUnderConcurrentUpdates(t *testing.T) {
	// driver callback and debounce timer touch the set from different
	// goroutines during a strum flurry
	ns := newNoteSet()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			ns.press(uint8(i % 88))
			ns.release(uint8((i + 40) % 88))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			ns.snapshot()
		}
	}()
	wg.Wait()

	assert.LessOrEqual(t, len(ns.snapshot()), 88)
}
