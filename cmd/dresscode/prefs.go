package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
)

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage your shopping preference profile",
	}

	cmd.AddCommand(prefsShowCmd())
	cmd.AddCommand(prefsSetCmd())

	return cmd
}

func prefsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your saved preference profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			prefs, err := store.GetPreferences(ctx, currentUser())
			if errors.Is(err, common.ErrNotFound) {
				fmt.Println("No preference profile saved. Set one with 'dresscode prefs set'.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}

			fmt.Printf("Gender:    %s\n", prefs.Gender)
			fmt.Printf("Styles:    %s\n", strings.Join(prefs.Styles, ", "))
			fmt.Printf("Colors:    %s\n", strings.Join(prefs.Colors, ", "))
			fmt.Printf("Materials: %s\n", strings.Join(prefs.Materials, ", "))
			fmt.Printf("Fits:      %s\n", strings.Join(prefs.FitTypes, ", "))
			fmt.Printf("Sizes:     %s\n", strings.Join(prefs.Sizes, ", "))
			if prefs.PriceMax > 0 {
				fmt.Printf("Price:     $%.2f - $%.2f\n", prefs.PriceMin, prefs.PriceMax)
			}
			return nil
		},
	}
}

func prefsSetCmd() *cobra.Command {
	var (
		gender    string
		styles    []string
		colors    []string
		materials []string
		fits      []string
		sizes     []string
		priceMin  float64
		priceMax  float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save your preference profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			prefs := &model.PreferenceProfile{
				UserID:    currentUser(),
				Gender:    gender,
				Styles:    styles,
				Colors:    colors,
				Materials: materials,
				FitTypes:  fits,
				Sizes:     sizes,
				PriceMin:  priceMin,
				PriceMax:  priceMax,
			}

			if err := store.SavePreferences(ctx, prefs); err != nil {
				return fmt.Errorf("failed to save preferences: %w", err)
			}

			fmt.Println("Preferences saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "", "preferred gender (male, female, unisex)")
	cmd.Flags().StringSliceVar(&styles, "styles", nil, "preferred styles")
	cmd.Flags().StringSliceVar(&colors, "colors", nil, "preferred colors")
	cmd.Flags().StringSliceVar(&materials, "materials", nil, "preferred materials")
	cmd.Flags().StringSliceVar(&fits, "fits", nil, "preferred fit types")
	cmd.Flags().StringSliceVar(&sizes, "sizes", nil, "your sizes")
	cmd.Flags().Float64Var(&priceMin, "price-min", 0, "minimum price")
	cmd.Flags().Float64Var(&priceMax, "price-max", 0, "maximum price")

	return cmd
}
