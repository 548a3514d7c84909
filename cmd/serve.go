package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/chordpad/chordpad/catalog"
	"github.com/chordpad/chordpad/constants"
	"github.com/chordpad/chordpad/model"
	"github.com/chordpad/chordpad/search"
	"github.com/chordpad/chordpad/voicing"
)

var cat *catalog.Catalog

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Long:  `Serves the engine over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadCatalog populates the catalog the HTTP handlers read from. Split
// out so tests can point it at their own data first.
func LoadCatalog() {
	cat = newCatalog()
	cat.Load()
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(cat.Load())
}

func HandleVoicings(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	entry, ok := cat.Get(name)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{
			Error: fmt.Sprintf("No chord named %v", name),
		})
		return
	}
	json.NewEncoder(w).Encode(model.VoicingsResponse{
		Name:     entry.Name,
		Voicings: voicing.Compute(entry),
	})
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	res := make([]model.ChordEntry, 0)
	res = append(res, search.Rank(cat.Load(), query)...)
	json.NewEncoder(w).Encode(res)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords", HandleChords).Methods("GET")
	router.HandleFunc("/chords/{name}/voicings", HandleVoicings).Methods("GET")
	router.HandleFunc("/search", HandleSearch).Methods("GET")
	return router
}

func serve() {
	LoadCatalog()
	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
