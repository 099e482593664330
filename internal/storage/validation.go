package storage

import (
	"context"
	"fmt"

	"github.com/fernwood/dresscode/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context is required")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

func validateGarment(g *model.Garment) error {
	if g == nil {
		return fmt.Errorf("garment is required")
	}
	if err := validateString(g.ID, "garment ID"); err != nil {
		return err
	}
	if err := validateString(g.UserID, "garment user ID"); err != nil {
		return err
	}
	return validateString(g.Title, "garment title")
}
