// Package config loads shiki's runtime configuration.
//
// # Sources
//
// Values are layered, later sources winning:
//
//  1. Built-in defaults (Winter 2026 on the public Jikan API)
//  2. ~/.config/shiki/config.toml, or the path given with --config
//  3. A .env file next to the config file, then one in the working directory
//  4. SHIKI_* environment variables (SHIKI_API_YEAR, SHIKI_LOGGING_LEVEL, ...)
//
// A .env file never overrides a variable that is already set. A missing
// config file is not an error.
//
// # TOML Format
//
//	[api]
//	base_url = "https://api.jikan.moe/v4"
//	year = 2026
//	season = "winter"      # winter, spring, summer, fall
//	page_delay = "300ms"   # pause before every page request
//	timeout = "10s"
//
//	[storage]
//	favorites_db = "~/.local/share/shiki/favorites.db"  # "memory" to disable
//
//	[logging]
//	file = "~/.local/share/shiki/shiki.log"
//	level = "info"
//
//	[translate]
//	target = "zh-TW"
//
// Blank values fall back to defaults and paths get tilde expansion. Load
// calls Validate, which rejects unknown seasons and implausible years.
package config
