package catalog

import "sort"

// SourceCount is a source label and the number of items carrying it.
type SourceCount struct {
	Source string
	Count  int
}

// GenreCount is a genre and the number of items tagged with it.
type GenreCount struct {
	Genre Genre
	Count int
}

// Facets summarises the filterable values present in a dataset.
type Facets struct {
	Sources []SourceCount
	Genres  []GenreCount
}

// GenreName returns the display name of the genre with the given ID.
func (f Facets) GenreName(id int) (string, bool) {
	for _, g := range f.Genres {
		if g.Genre.ID == id {
			return g.Genre.Name, true
		}
	}
	return "", false
}

// BuildFacets counts source labels and genres across items. Labels are
// discovered from the data; both lists are ordered by descending count with
// ties kept in first-seen order.
func BuildFacets(items []Item) Facets {
	var f Facets
	sourceIdx := make(map[string]int)
	genreIdx := make(map[int]int)

	for _, item := range items {
		src := item.Source
		if src == "" {
			src = UnknownSource
		}
		if i, ok := sourceIdx[src]; ok {
			f.Sources[i].Count++
		} else {
			sourceIdx[src] = len(f.Sources)
			f.Sources = append(f.Sources, SourceCount{Source: src, Count: 1})
		}

		for _, g := range item.Genres {
			if i, ok := genreIdx[g.ID]; ok {
				f.Genres[i].Count++
				continue
			}
			genreIdx[g.ID] = len(f.Genres)
			f.Genres = append(f.Genres, GenreCount{Genre: g, Count: 1})
		}
	}

	sort.SliceStable(f.Sources, func(i, j int) bool {
		return f.Sources[i].Count > f.Sources[j].Count
	})
	sort.SliceStable(f.Genres, func(i, j int) bool {
		return f.Genres[i].Count > f.Genres[j].Count
	})
	return f
}
