package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const yamlCatalog = `
movies:
  popular:
    - id: 1
      title: Heat
      description: A group of professional bank robbers.
      rating: 8.3
      type: movie
      genres:
        - {id: 80, name: Crime}
        - {id: 18, name: Drama}
      releaseDate: "1995-12-15"
anime:
  top_rated:
    - id: 2
      title: Cowboy Bebop
      description: Bounty hunters in space.
      rating: 8.8
      type: tv
`

func TestSample(t *testing.T) {
	c := Sample()

	for _, v := range []View{Movies, Shows, Anime} {
		for _, cat := range Categories(v) {
			if len(c.Items(v, cat.ID)) == 0 {
				t.Errorf("sample has no items in %s/%s", v, cat.ID)
			}
		}
	}
	if c.Count() == 0 {
		t.Error("expected sample items")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(yamlCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	items := c.Items(Movies, "popular")
	if len(items) != 1 || items[0].Title != "Heat" {
		t.Fatalf("unexpected movies/popular: %+v", items)
	}
	if items[0].GenreNames() != "Crime, Drama" {
		t.Errorf("expected genres 'Crime, Drama', got %q", items[0].GenreNames())
	}
	if got := c.Items(Anime, "top_rated"); len(got) != 1 || got[0].Type != TV {
		t.Errorf("unexpected anime/top_rated: %+v", got)
	}
	if got := c.Items(Shows, "popular"); len(got) != 0 {
		t.Errorf("expected no tv items, got %d", len(got))
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{"tv": {"on_the_air": [{"id": 7, "title": "Severance", "description": "", "rating": 8.4, "type": "tv"}]}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	if got := c.Items(Shows, "on_the_air"); len(got) != 1 || got[0].ID != 7 {
		t.Errorf("unexpected tv/on_the_air: %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unsupported extension", "catalog.txt", "{}", "unsupported catalog format"},
		{"bad json", "bad.json", "{", "failed to parse"},
		{"unknown field", "extra.json", `{"music": {}}`, "failed to parse"},
		{"unknown category", "cat.yaml", "movies:\n  classics: []\n", "unknown category"},
		{"missing title", "title.json", `{"movies": {"popular": [{"id": 1, "type": "movie"}]}}`, "missing title"},
		{"bad type", "type.json", `{"movies": {"popular": [{"id": 1, "title": "X", "type": "book"}]}}`, "invalid type"},
		{"duplicate id", "dup.json", `{"anime": {"popular": [{"id": 1, "title": "A", "type": "tv"}, {"id": 1, "title": "B", "type": "tv"}]}}`, "duplicate item id"},
		{"zero id", "zero.json", `{"anime": {"popular": [{"id": 0, "title": "A", "type": "tv"}]}}`, "id must be positive"},
		{"rating range", "rating.json", `{"anime": {"popular": [{"id": 1, "title": "A", "type": "tv", "rating": 11}]}}`, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCategoryLabels(t *testing.T) {
	tests := []struct {
		view View
		id   string
		want string
	}{
		{Movies, "popular", "Trending Now"},
		{Movies, "top_rated", "All-Time Favorites"},
		{Movies, "now_playing", "In Theaters"},
		{Movies, "upcoming", "Coming Soon"},
		{Shows, "top_rated", "Top Rated"},
		{Shows, "on_the_air", "On The Air"},
		{Shows, "airing_today", "Airing Today"},
		{Anime, "popular", "Popular"},
	}

	for _, tt := range tests {
		if got := CategoryLabel(tt.view, tt.id); got != tt.want {
			t.Errorf("CategoryLabel(%s, %s) = %q, want %q", tt.view, tt.id, got, tt.want)
		}
	}

	if len(Categories(MyList)) != 0 {
		t.Error("expected library view to have no categories")
	}
	if n := len(Categories(Movies)); n != 4 {
		t.Errorf("expected 4 movie categories, got %d", n)
	}
}

func TestParseView(t *testing.T) {
	if v, ok := ParseView(" TV "); !ok || v != Shows {
		t.Errorf("expected tv view, got %q %v", v, ok)
	}
	if _, ok := ParseView("music"); ok {
		t.Error("expected unknown view to fail")
	}
	if v, ok := ParseView("library"); !ok || v != MyList {
		t.Errorf("expected library view, got %q %v", v, ok)
	}
	if MyList.Label() != "My List" {
		t.Errorf("unexpected library label %q", MyList.Label())
	}
}

func TestItemLinks(t *testing.T) {
	it := Item{ID: 1, Title: "Heat", Type: Movie}
	if _, ok := it.TrailerURL(); ok {
		t.Error("expected no trailer")
	}
	if !strings.Contains(it.WatchURL(), "where+to+stream+Heat+movie") {
		t.Errorf("unexpected watch url %q", it.WatchURL())
	}

	it.Type = TV
	it.TrailerKey = "abc"
	if u, ok := it.TrailerURL(); !ok || u != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("unexpected trailer url %q", u)
	}
	if !strings.Contains(it.WatchURL(), "TV+show") {
		t.Errorf("expected TV show in %q", it.WatchURL())
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(yamlCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer w.Close()

	updated := strings.Replace(yamlCatalog, "title: Heat", "title: Ronin", 1)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Err != nil {
			t.Fatalf("reload failed: %v", ev.Err)
		}
		if got := ev.Catalog.Items(Movies, "popular")[0].Title; got != "Ronin" {
			t.Errorf("expected reloaded title Ronin, got %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherRejectsUnknownFormat(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "catalog.toml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}

	// Events is closed once the loop exits
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("expected closed events channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed")
	}
}
