package constants

import "os"

func GetDataPath() string {
	path := os.Getenv("CHORD_DATA_PATH")
	if path != "" {
		return path
	}
	return "./data/chords.csv"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// Two-octave keyboard display window starting at middle C.
const WindowLow = 60
const WindowHigh = 83

// Root position plus at most three inversions.
const MaxVoicings = 4

const MaxSearchResults = 20

const MinPitch = 0
const MaxPitch = 127
