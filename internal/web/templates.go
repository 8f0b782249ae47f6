// Package web holds the embedded HTML templates and the template
// helpers the pages use.
package web

import (
	"embed"
	"html/template"

	"github.com/stagebook/stagebook/internal/datefmt"
)

//go:embed templates
var files embed.FS

// GenreChoices is the option list offered by the venue and artist
// forms. Stored genres are free text; this list only feeds the form.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": datefmt.FormatTime,
		"hasGenre": func(genres []string, genre string) bool {
			for _, g := range genres {
				if g == genre {
					return true
				}
			}
			return false
		},
	}
}

// Templates parses the embedded template set. Pages are addressed by
// base filename, e.g. "venues.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*/*.html"))
}
