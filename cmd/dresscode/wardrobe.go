package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
	"github.com/fernwood/dresscode/internal/vocab"
)

func wardrobeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Manage your garment catalog",
	}

	cmd.AddCommand(wardrobeListCmd())
	cmd.AddCommand(wardrobeAddCmd())
	cmd.AddCommand(wardrobeRemoveCmd())

	return cmd
}

func wardrobeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all garments in your wardrobe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			garments, err := store.GetGarments(ctx, currentUser())
			if err != nil {
				return fmt.Errorf("failed to list garments: %w", err)
			}

			if len(garments) == 0 {
				fmt.Println("Your wardrobe is empty. Add garments with 'dresscode wardrobe add'.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCOLOR\tSLOT\tSTYLE\tSOURCE")
			for _, g := range garments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					g.ID, g.Title, g.Color, vocab.NormalizeSlot(g.Category), g.Style, g.Source)
			}
			return w.Flush()
		},
	}
}

func wardrobeAddCmd() *cobra.Command {
	var color, category, style, source string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a garment to your wardrobe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			garment := &model.Garment{
				ID:       uuid.New().String(),
				UserID:   currentUser(),
				Title:    args[0],
				Color:    strings.ToLower(color),
				Category: vocab.NormalizeSlot(category),
				Style:    strings.ToLower(style),
				Source:   model.GarmentSourceOwned,
			}
			if strings.EqualFold(source, string(model.GarmentSourceExternal)) {
				garment.Source = model.GarmentSourceExternal
			}
			garment.Hash = garment.GenerateHash()

			if err := store.SaveGarment(ctx, garment); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					fmt.Printf("Already in your wardrobe: %s\n", garment.Title)
					return nil
				}
				return fmt.Errorf("failed to save garment: %w", err)
			}

			fmt.Printf("Added %s (%s)\n", garment.Title, garment.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "garment color (e.g. navy, white)")
	cmd.Flags().StringVar(&category, "category", "", "garment category (e.g. shirt, jeans, sneakers)")
	cmd.Flags().StringVar(&style, "style", "", "garment style (e.g. casual, formal)")
	cmd.Flags().StringVar(&source, "source", "owned", "garment source (owned, external)")

	return cmd
}

func wardrobeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a garment from your wardrobe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteGarment(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("no garment with ID %s", args[0])
				}
				return fmt.Errorf("failed to remove garment: %w", err)
			}

			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}
