package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernwood/dresscode/internal/model"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Rank shop products against your preferences",
	}

	cmd.AddCommand(productsRankCmd())

	return cmd
}

func productsRankCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank <catalog.json>",
		Short: "Rank a product catalog by preference fit",
		Long: `Score each product in a JSON catalog against your saved preference
profile and print them best-first. Without a saved profile every product
scores zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0]) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to read catalog: %w", err)
			}

			var products []model.ShopProduct
			if err := json.Unmarshal(data, &products); err != nil {
				return fmt.Errorf("failed to parse catalog: %w", err)
			}

			stylist, store, err := initStylist(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ranked, err := stylist.RankProducts(ctx, currentUser(), products)
			if err != nil {
				return err
			}

			if limit > 0 && limit < len(ranked) {
				ranked = ranked[:limit]
			}

			for i, r := range ranked {
				fmt.Printf("%2d. [%3.0f] %s", i+1, r.Score, r.Product.Title)
				if r.Product.Price > 0 {
					fmt.Printf(" ($%.2f)", r.Product.Price)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the top N products (0 for all)")

	return cmd
}
