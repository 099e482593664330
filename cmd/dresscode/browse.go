package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernwood/dresscode/internal/tui"
)

func browseCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "browse [occasion]",
		Short: "Browse suggested outfits interactively",
		Args:  cobra.MaximumNArgs(1),
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
				fmt.Println("No outfits to browse. Add more garments to your wardrobe.")
				return nil
			}

			gapSuggestions, _ := stylist.Gaps(ctx, currentUser(), outfits[0].Items, occasion)

			return tui.Run(ctx, tui.Config{
				Occasion: occasion,
				Outfits:  outfits,
				Gaps:     gapSuggestions,
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of outfits to browse")

	return cmd
}
