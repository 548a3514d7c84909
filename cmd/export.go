package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chordpad/chordpad/midi"
	"github.com/chordpad/chordpad/voicing"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports a chord's voicings as a midi file",
	Long:  `Exports a chord's voicings as a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need 1 or 2 args...")
		}
		out := uuid.New().String() + ".mid"
		if len(args) == 2 {
			out = args[1]
		}
		export(args[0], out)
	},
}

func export(name string, out string) {
	entry, ok := newCatalog().Get(name)
	if !ok {
		fmt.Printf("No chord named %v in the catalog\n", name)
		return
	}

	s := midi.VoicingsToSMF(voicing.Compute(entry))
	if err := s.WriteFile(out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", out)
}
