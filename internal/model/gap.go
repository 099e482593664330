package model

import "time"

// GapSuggestion names a wardrobe item missing from a generated outfit,
// with a short search term and a human-readable rationale. ImageURL is
// filled from the cache when the term has been suggested before.
type GapSuggestion struct {
	Term      string
	Reason    string
	SearchURL string
	ImageURL  string
}

// CachedGapItem is a previously suggested missing item, keyed by the
// lower-cased search term so it is reusable across users.
type CachedGapItem struct {
	CachedAt time.Time
	Term     string
	ImageURL string
}
