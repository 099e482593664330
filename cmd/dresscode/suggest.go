package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "suggest [occasion]",
		Short: "Suggest outfits from your wardrobe",
		Long: `Compose color-coordinated outfits from your wardrobe. Pass an
occasion (party, office, casual, date, wedding, vacation) to bias the
scoring toward its preferred slots, colors, and styles.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			occasion := ""
			if len(args) > 0 {
				occasion = args[0]
			}

			stylist, store, err := initStylist(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			outfits, err := stylist.Suggest(ctx, currentUser(), occasion, count)
			if err != nil {
				return err
			}

			if len(outfits) == 0 {
				fmt.Println("No outfits could be composed. Add more garments to your wardrobe.")
				return nil
			}

			for i, outfit := range outfits {
				titles := make([]string, 0, len(outfit.Items))
				for _, item := range outfit.Items {
					titles = append(titles, item.Title)
				}
				fmt.Printf("%2d. %s (score %.0f)\n", i+1, strings.Join(titles, " + "), outfit.Score)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of outfits to suggest")

	return cmd
}
