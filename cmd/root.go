package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chordpad/chordpad/catalog"
	"github.com/chordpad/chordpad/constants"
)

var rootCmd = &cobra.Command{
	Use:   "chordpad",
	Short: "Piano chord catalog engine",
	Long:  `Parses the chord catalog and answers voicing and search queries over CLI or HTTP.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newCatalog() *catalog.Catalog {
	return catalog.New(catalog.FileSource{Path: constants.GetDataPath()})
}
