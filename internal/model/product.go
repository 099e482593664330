package model

// ShopProduct is an external catalog entry ranked against a user's
// preference profile. Read-only input to the product ranker.
type ShopProduct struct {
	ID       string
	Title    string
	Gender   string
	Color    string
	Category string
	Style    string   // single style field
	Styles   []string // some catalogs tag multiple styles
	Material string
	FitType  string
	Sizes    []string
	Price    float64
}
