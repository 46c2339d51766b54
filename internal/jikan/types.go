package jikan

// SeasonResponse mirrors the payload returned by /seasons/{year}/{season}.
type SeasonResponse struct {
	Data       []Anime    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination mirrors the cursor block shared by Jikan list endpoints.
type Pagination struct {
	LastVisiblePage int             `json:"last_visible_page"`
	HasNextPage     bool            `json:"has_next_page"`
	CurrentPage     int             `json:"current_page"`
	Items           PaginationItems `json:"items"`
}

// PaginationItems carries item counts for the current page.
type PaginationItems struct {
	Count   int `json:"count"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// Anime describes one catalog record in transport form. Nullable fields are
// pointers so the mapper can tell "absent" from a zero value.
type Anime struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url"`
	Images        Images   `json:"images"`
	Trailer       Trailer  `json:"trailer"`
	Title         string   `json:"title"`
	TitleEnglish  *string  `json:"title_english"`
	TitleJapanese *string  `json:"title_japanese"`
	Type          *string  `json:"type"`
	Source        *string  `json:"source"`
	Episodes      *int     `json:"episodes"`
	Status        *string  `json:"status"`
	Duration      *string  `json:"duration"`
	Rating        *string  `json:"rating"`
	Score         *float64 `json:"score"`
	ScoredBy      *int     `json:"scored_by"`
	Members       *int     `json:"members"`
	Favorites     *int     `json:"favorites"`
	Synopsis      *string  `json:"synopsis"`
	Year          *int     `json:"year"`
	Genres        []Genre  `json:"genres"`
}

// Images groups image sets by encoding.
type Images struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// ImageSet lists one encoding at several resolutions.
type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

// Trailer references the promotional video for a title.
type Trailer struct {
	YouTubeID *string `json:"youtube_id"`
	URL       *string `json:"url"`
	EmbedURL  *string `json:"embed_url"`
}

// Genre is a MyAnimeList genre tag.
type Genre struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}
