package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func gapsCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "gaps [occasion]",
		Short: "Identify items missing from your wardrobe",
		Long: `Ask the oracle which pieces would complete your best outfit for the
occasion. Requires a configured oracle provider; without one the command
reports nothing missing.`,
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
				fmt.Println("No outfits could be composed, so there is nothing to compare against.")
				return nil
			}

			suggestions, err := stylist.Gaps(ctx, currentUser(), outfits[0].Items, occasion)
			if err != nil {
				return err
			}

			if len(suggestions) == 0 {
				fmt.Println("Nothing missing, or the oracle is not configured.")
				return nil
			}

			fmt.Println("Missing items:")
			for _, s := range suggestions {
				fmt.Printf("  • %s\n", s.Term)
				if s.Reason != "" {
					fmt.Printf("    %s\n", s.Reason)
				}
				fmt.Printf("    %s\n", s.SearchURL)
				if s.ImageURL != "" {
					fmt.Printf("    %s\n", s.ImageURL)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of outfits to consider")

	return cmd
}
