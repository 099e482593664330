package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// GarmentSource indicates where a garment record came from.
type GarmentSource string

const (
	// GarmentSourceOwned marks garments uploaded by the user.
	GarmentSourceOwned GarmentSource = "owned"
	// GarmentSourceExternal marks garments pulled from a shop catalog.
	GarmentSourceExternal GarmentSource = "external"
)

// Garment represents a single classified wardrobe item. The engine treats
// garments as read-only: they are created at upload/import time and never
// mutated by the matching pipeline.
type Garment struct {
	CreatedAt time.Time
	ID        string
	UserID    string
	Title     string
	Color     string // free text, normalized against the color vocabulary at match time
	Category  string // free-form classification, mapped to a slot via vocab.NormalizeSlot
	Style     string // aesthetic style tag, optional
	Source    GarmentSource
	Hash      string
}

// GenerateHash creates a stable hash for duplicate detection on import.
func (g *Garment) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		g.UserID,
		g.Title,
		g.Color,
		g.Category)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
