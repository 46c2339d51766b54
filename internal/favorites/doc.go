// Package favorites persists the user's favorite titles in a bbolt file.
//
// The whole set lives under one key (bucket "favorites", key "ids") as a JSON
// array of integer IDs. Load reads it once at startup; malformed data is
// treated as an empty set. Toggle rewrites the array synchronously, so a
// later Load in the same or another process sees the change. Order inside
// the array carries no meaning.
package favorites
