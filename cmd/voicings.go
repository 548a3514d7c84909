package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chordpad/chordpad/voicing"
)

func init() {
	rootCmd.AddCommand(voicingsCmd)
}

var voicingsCmd = &cobra.Command{
	Use:   "voicings",
	Short: "Prints the voicings for a chord",
	Long:  `Prints the voicings for a chord`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		printVoicings(args[0])
	},
}

func printVoicings(name string) {
	entry, ok := newCatalog().Get(name)
	if !ok {
		fmt.Printf("No chord named %v in the catalog\n", name)
		return
	}
	for _, v := range voicing.Compute(entry) {
		fmt.Printf("%-8v %v\n", v.Label, v.Pitches)
	}
}
