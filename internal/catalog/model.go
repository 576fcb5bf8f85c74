package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MediaType distinguishes movies from series
type MediaType string

const (
	Movie MediaType = "movie"
	TV    MediaType = "tv"
)

// Genre is a named genre tag
type Genre struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Item is one catalog entry
type Item struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Rating      float64   `json:"rating" yaml:"rating"`
	PosterPath  string    `json:"posterPath,omitempty" yaml:"posterPath,omitempty"`
	Type        MediaType `json:"type" yaml:"type"`
	Genres      []Genre   `json:"genres,omitempty" yaml:"genres,omitempty"`
	ReleaseDate string    `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	TrailerKey  string    `json:"trailerKey,omitempty" yaml:"trailerKey,omitempty"`
}

// GenreNames returns the genre names joined for display
func (it Item) GenreNames() string {
	names := make([]string, 0, len(it.Genres))
	for _, g := range it.Genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// TypeLabel returns a human readable media type
func (it Item) TypeLabel() string {
	if it.Type == TV {
		return "TV show"
	}
	return "movie"
}

// WatchURL returns a web search for streaming options
func (it Item) WatchURL() string {
	q := fmt.Sprintf("where to stream %s %s", it.Title, it.TypeLabel())
	return "https://www.google.com/search?q=" + url.QueryEscape(q)
}

// TrailerURL returns the trailer link, if the item has one
func (it Item) TrailerURL() (string, bool) {
	if it.TrailerKey == "" {
		return "", false
	}
	return "https://www.youtube.com/watch?v=" + it.TrailerKey, true
}

// View is a top-level browsing section
type View string

const (
	Movies View = "movies"
	Shows  View = "tv"
	Anime  View = "anime"
	MyList View = "library"
)

// Views lists the sections in bottom-nav order
var Views = []View{Movies, Shows, Anime, MyList}

// ParseView maps a name to a View
func ParseView(s string) (View, bool) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// Label returns the bottom nav label of a view
func (v View) Label() string {
	switch v {
	case Movies:
		return "Movies"
	case Shows:
		return "TV Shows"
	case Anime:
		return "Anime"
	case MyList:
		return "My List"
	}
	return titleCase(string(v))
}

// Category is one tab inside a view
type Category struct {
	ID    string
	Label string
}

var categoryIDs = map[View][]string{
	Movies: {"popular", "top_rated", "now_playing", "upcoming"},
	Shows:  {"popular", "top_rated", "on_the_air", "airing_today"},
	Anime:  {"popular", "top_rated"},
}

// Label overrides, everything else is derived from the id
var categoryLabels = map[View]map[string]string{
	Movies: {
		"popular":     "Trending Now",
		"top_rated":   "All-Time Favorites",
		"now_playing": "In Theaters",
		"upcoming":    "Coming Soon",
	},
}

// Categories returns the tabs of a view in display order. The library view
// has none.
func Categories(v View) []Category {
	ids := categoryIDs[v]
	out := make([]Category, 0, len(ids))
	for _, id := range ids {
		out = append(out, Category{ID: id, Label: CategoryLabel(v, id)})
	}
	return out
}

// CategoryLabel returns the display label for a category id
func CategoryLabel(v View, id string) string {
	if l, ok := categoryLabels[v][id]; ok {
		return l
	}
	return titleCase(strings.ReplaceAll(id, "_", " "))
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
