package jikan

import (
	"strings"

	"github.com/five82/shiki/internal/catalog"
)

// MapPage normalizes a season response into a catalog page. Records without
// a positive ID are dropped; every optional field receives a defined default.
func MapPage(resp SeasonResponse) catalog.Page {
	items := make([]catalog.Item, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.MalID <= 0 {
			continue
		}
		items = append(items, MapAnime(a))
	}
	return catalog.Page{
		Items: items,
		Pagination: catalog.Pagination{
			CurrentPage:     resp.Pagination.CurrentPage,
			HasNextPage:     resp.Pagination.HasNextPage,
			LastVisiblePage: resp.Pagination.LastVisiblePage,
			Count:           resp.Pagination.Items.Count,
			Total:           resp.Pagination.Items.Total,
			PerPage:         resp.Pagination.Items.PerPage,
		},
	}
}

// MapAnime converts one transport record into a catalog item.
func MapAnime(a Anime) catalog.Item {
	item := catalog.Item{
		ID:            a.MalID,
		URL:           strings.TrimSpace(a.URL),
		Title:         strings.TrimSpace(a.Title),
		TitleEnglish:  str(a.TitleEnglish),
		TitleJapanese: str(a.TitleJapanese),
		Synopsis:      str(a.Synopsis),
		Year:          nonNegative(a.Year),
		Type:          str(a.Type),
		Source:        str(a.Source),
		Status:        str(a.Status),
		Rating:        str(a.Rating),
		Duration:      str(a.Duration),
		Episodes:      nonNegative(a.Episodes),
		ScoredBy:      nonNegative(a.ScoredBy),
		Members:       nonNegative(a.Members),
		Favorites:     nonNegative(a.Favorites),
		Trailer: catalog.Trailer{
			YouTubeID: str(a.Trailer.YouTubeID),
			URL:       str(a.Trailer.URL),
			EmbedURL:  str(a.Trailer.EmbedURL),
		},
		Images: mapImages(a.Images),
	}
	if item.Source == "" {
		item.Source = catalog.UnknownSource
	}
	if item.Title == "" {
		item.Title = item.TitleEnglish
	}
	if a.Score != nil && *a.Score >= 0 {
		item.Score = *a.Score
		item.HasScore = true
	}
	if len(a.Genres) > 0 {
		item.Genres = make([]catalog.Genre, 0, len(a.Genres))
		for _, g := range a.Genres {
			if g.MalID <= 0 {
				continue
			}
			item.Genres = append(item.Genres, catalog.Genre{ID: g.MalID, Name: strings.TrimSpace(g.Name)})
		}
	}
	return item
}

func mapImages(img Images) catalog.Images {
	pick := func(primary, fallback string) string {
		if primary != "" {
			return primary
		}
		return fallback
	}
	return catalog.Images{
		Small:  pick(img.JPG.SmallImageURL, img.WebP.SmallImageURL),
		Medium: pick(img.JPG.ImageURL, img.WebP.ImageURL),
		Large:  pick(img.JPG.LargeImageURL, img.WebP.LargeImageURL),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func nonNegative(p *int) int {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}
