package main

import "github.com/chordpad/chordpad/cmd"

func main() {
	cmd.Execute()
}
