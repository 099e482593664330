package model

// PreferenceProfile holds a user's stated shopping preferences. It is
// supplied by the caller and read-only to the ranking engine.
type PreferenceProfile struct {
	UserID    string
	Gender    string
	Styles    []string
	Colors    []string
	Materials []string
	FitTypes  []string
	Sizes     []string
	PriceMin  float64
	PriceMax  float64
}
