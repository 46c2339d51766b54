package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutGenresWidth is the minimum width to show the genres column.
	LayoutGenresWidth = 130
)

// Fixed chrome heights.
const (
	// headerHeight covers the status bar and the filter bar.
	headerHeight = 2

	// footerHeight is the single footer line.
	footerHeight = 1
)

// Column widths for the catalog list.
const (
	colFav     = 2
	colScore   = 5
	colType    = 7
	colSource  = 13
	colMembers = 8
	colGenres  = 28
)
