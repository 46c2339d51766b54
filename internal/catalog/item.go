package catalog

import "strings"

// UnknownSource labels items whose source category is missing upstream.
const UnknownSource = "Unknown"

// Item is one seasonal catalog entry. Items are created by the jikan mapper
// and never mutated afterwards.
type Item struct {
	ID            int
	URL           string
	Title         string
	TitleEnglish  string
	TitleJapanese string
	Synopsis      string
	Year          int // 0 when unknown
	Type          string
	Source        string
	Status        string
	Rating        string
	Duration      string
	Episodes      int

	Score     float64
	HasScore  bool
	ScoredBy  int
	Members   int
	Favorites int

	Genres  []Genre
	Trailer Trailer
	Images  Images
}

// Genre is a genre tag attached to an item.
type Genre struct {
	ID   int
	Name string
}

// Trailer references a promotional video.
type Trailer struct {
	YouTubeID string
	URL       string
	EmbedURL  string
}

// WatchURL returns a browser URL for the trailer, or "" when none exists.
func (t Trailer) WatchURL() string {
	if t.URL != "" {
		return t.URL
	}
	if t.YouTubeID != "" {
		return "https://www.youtube.com/watch?v=" + t.YouTubeID
	}
	return ""
}

// Images holds poster URLs at several resolutions.
type Images struct {
	Small  string
	Medium string
	Large  string
}

// DisplayTitle prefers the English title when one exists.
func (i Item) DisplayTitle() string {
	if strings.TrimSpace(i.TitleEnglish) != "" {
		return i.TitleEnglish
	}
	return i.Title
}

// HasGenre reports whether the item carries the genre with the given ID.
func (i Item) HasGenre(id int) bool {
	for _, g := range i.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

// Pagination mirrors the remote source's cursor metadata.
type Pagination struct {
	CurrentPage     int
	HasNextPage     bool
	LastVisiblePage int
	Count           int
	Total           int
	PerPage         int
}

// Page is one batch of items plus its pagination metadata.
type Page struct {
	Items      []Item
	Pagination Pagination
}

// IDSet is a membership set of item IDs.
type IDSet map[int]struct{}

// NewIDSet builds a set from ids. Duplicates collapse.
func NewIDSet(ids ...int) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports membership. A nil set contains nothing.
func (s IDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}
