package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the chord catalog",
	Long:  `Lists the chord catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		list()
	},
}

func list() {
	entries := newCatalog().Load()
	for _, entry := range entries {
		fmt.Printf("%v\t%v\t%v/%v\t%v\n",
			entry.Name,
			strings.Join(entry.NoteNames, " "),
			entry.Category,
			entry.Subcategory,
			entry.PitchNumbers)
	}
	fmt.Printf("%v chords\n", len(entries))
}
