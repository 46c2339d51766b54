// Package jikan is the HTTP client for the Jikan v4 API, the unofficial
// MyAnimeList REST service that backs the seasonal listing.
//
// # Endpoint
//
// Only one endpoint is consumed:
//
//	GET {base}/seasons/{year}/{season}?page=N
//
// The response carries a "data" array of anime records and a "pagination"
// block (current_page, has_next_page, last_visible_page, item counts).
//
// # Request pacing
//
// Jikan throttles aggressively. Every FetchSeasonPage call waits a fixed
// delay (DefaultPageDelay unless configured) before issuing the request.
// There is no retry and no backoff: a failed page is reported once and the
// caller decides whether to ask again.
//
// # Errors
//
//   - 429 Too Many Requests: ErrRateLimited
//   - any other status >= 400: *StatusError
//   - transport failures: wrapped with "execute request"
//   - malformed JSON: wrapped with "decode response"
//
// # Normalization
//
// Transport structs in types.go keep nullable fields as pointers. MapPage
// and MapAnime convert them into catalog.Item values with defined defaults
// (empty strings, zero counts, HasScore=false, Source="Unknown") so that
// code downstream of this package never deals with missing fields.
package jikan
