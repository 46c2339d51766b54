package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// SortOption selects the ordering applied after filtering.
type SortOption int

const (
	SortDefault SortOption = iota // arrival order
	SortScore                     // descending score, unscored last
	SortMembers                   // descending member count
)

var sortOrder = []SortOption{SortDefault, SortScore, SortMembers}

// String returns the persisted name of the option.
func (s SortOption) String() string {
	switch s {
	case SortScore:
		return "score"
	case SortMembers:
		return "members"
	default:
		return "default"
	}
}

// Next cycles to the following sort option.
func (s SortOption) Next() SortOption {
	for i, opt := range sortOrder {
		if opt == s {
			return sortOrder[(i+1)%len(sortOrder)]
		}
	}
	return SortDefault
}

// ParseSort converts a persisted or user-supplied name to a SortOption.
// "popularity" is accepted as an alias for members.
func ParseSort(name string) (SortOption, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "none":
		return SortDefault, nil
	case "score":
		return SortScore, nil
	case "members", "popularity":
		return SortMembers, nil
	default:
		return SortDefault, fmt.Errorf("unknown sort option %q", name)
	}
}

// Criteria holds the independent filter predicates. Zero values mean "any".
type Criteria struct {
	Source        string
	Genre         int
	Search        string
	FavoritesOnly bool
}

// Active reports whether any predicate other than search is set.
func (c Criteria) Active() bool {
	return c.Source != "" || c.Genre != 0 || c.FavoritesOnly
}

// ClearFacets drops source, genre and favorites-only but keeps search text.
func (c Criteria) ClearFacets() Criteria {
	return Criteria{Search: c.Search}
}

// Match reports whether item satisfies every active predicate.
func (c Criteria) Match(item Item, favs IDSet) bool {
	if c.Source != "" && item.Source != c.Source {
		return false
	}
	if c.Genre != 0 && !item.HasGenre(c.Genre) {
		return false
	}
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		english := item.TitleEnglish != "" && strings.Contains(strings.ToLower(item.TitleEnglish), needle)
		if !english && !strings.Contains(strings.ToLower(item.Title), needle) {
			return false
		}
	}
	if c.FavoritesOnly && !favs.Contains(item.ID) {
		return false
	}
	return true
}

// Derive filters items by c and orders the survivors by s. The input slice
// is never modified; the result is always a fresh slice.
func Derive(items []Item, c Criteria, favs IDSet, s SortOption) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if c.Match(item, favs) {
			out = append(out, item)
		}
	}

	switch s {
	case SortScore:
		sort.SliceStable(out, func(i, j int) bool {
			return scoreAbove(out[i], out[j])
		})
	case SortMembers:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Members > out[j].Members
		})
	}
	return out
}

// scoreAbove orders scored items before unscored ones, then by descending score.
func scoreAbove(a, b Item) bool {
	if a.HasScore != b.HasScore {
		return a.HasScore
	}
	return a.Score > b.Score
}
