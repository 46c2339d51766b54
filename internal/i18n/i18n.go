// Package i18n holds the English and Traditional Chinese UI string tables.
package i18n

import "strings"

// Language identifies a string table.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Parse maps a preference value to a Language, defaulting to English.
func Parse(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(Chinese)) {
		return Chinese
	}
	return English
}

// Next toggles between English and Chinese.
func (l Language) Next() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Strings is one complete UI string table.
type Strings struct {
	Season            string
	Subtitle          string
	SearchPlaceholder string
	FoundTitles       string
	Scanning          string
	NoResults         string
	ClearFilters      string
	Retry             string
	Error             string
	RateLimited       string
	Offline           string
	Filters           string
	ShowAll           string
	Source            string
	Genres            string
	Score             string
	Members           string
	Favs              string
	Synopsis          string
	NoSynopsis        string
	Translate         string
	Trailer           string
	NoTrailer         string
	ViewMAL           string
	LoadMore          string
	LoadingMore       string
	NoMoreResults     string
	MyFavorites       string
	SortBy            string
	SortDefault       string
	SortScore         string
	SortMembers       string
	Help              string
}

var tables = map[Language]Strings{
	English: {
		Season:            "Season",
		Subtitle:          "Seasonal anime browser",
		SearchPlaceholder: "Search titles...",
		FoundTitles:       "titles found",
		Scanning:          "Scanning the season...",
		NoResults:         "No titles match the current filters.",
		ClearFilters:      "Clear filters",
		Retry:             "Retry",
		Error:             "Failed to load the season listing. Please try again.",
		RateLimited:       "Rate limit exceeded. Please wait a moment.",
		Offline:           "offline",
		Filters:           "Filters",
		ShowAll:           "Show all",
		Source:            "Source",
		Genres:            "Genres",
		Score:             "Score",
		Members:           "Members",
		Favs:              "Favs",
		Synopsis:          "Synopsis",
		NoSynopsis:        "No synopsis available.",
		Translate:         "Google Translate",
		Trailer:           "Trailer",
		NoTrailer:         "No trailer available",
		ViewMAL:           "View on MyAnimeList",
		LoadMore:          "Load more",
		LoadingMore:       "Loading more...",
		NoMoreResults:     "You have reached the end of the list.",
		MyFavorites:       "My favorites",
		SortBy:            "Sort",
		SortDefault:       "Default",
		SortScore:         "Score",
		SortMembers:       "Members",
		Help:              "Help",
	},
	Chinese: {
		Season:            "季度",
		Subtitle:          "季度動畫瀏覽器",
		SearchPlaceholder: "搜尋標題...",
		FoundTitles:       "部作品",
		Scanning:          "正在讀取本季資料...",
		NoResults:         "沒有符合目前篩選條件的作品。",
		ClearFilters:      "清除篩選",
		Retry:             "重試",
		Error:             "無法載入本季列表，請稍後再試。",
		RateLimited:       "請求過於頻繁，請稍候再試。",
		Offline:           "離線",
		Filters:           "篩選",
		ShowAll:           "顯示全部",
		Source:            "原作",
		Genres:            "類型",
		Score:             "評分",
		Members:           "成員",
		Favs:              "收藏",
		Synopsis:          "簡介",
		NoSynopsis:        "暫無簡介。",
		Translate:         "Google 翻譯",
		Trailer:           "預告片",
		NoTrailer:         "暫無預告片",
		ViewMAL:           "在 MyAnimeList 查看",
		LoadMore:          "載入更多",
		LoadingMore:       "載入中...",
		NoMoreResults:     "已經到底了。",
		MyFavorites:       "我的收藏",
		SortBy:            "排序",
		SortDefault:       "預設",
		SortScore:         "評分",
		SortMembers:       "人氣",
		Help:              "說明",
	},
}

// For returns the table for lang, falling back to English.
func For(lang Language) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[English]
}
