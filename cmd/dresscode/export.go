package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fernwood/dresscode/internal/sheets"
)

func exportCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "export [occasion]",
		Short: "Export an outfit report to Google Sheets",
		Long: `Compose outfits for the occasion and write them, together with any
identified wardrobe gaps, to a Google Sheets spreadsheet. Authentication
comes from GOOGLE_SHEETS_* environment variables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			occasion := ""
			if len(args) > 0 {
				occasion = args[0]
			}

			sheetsConfig := sheets.DefaultConfig()
			if err := sheetsConfig.LoadFromEnv(); err != nil {
				return err
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
				return fmt.Errorf("no outfits to export; add more garments first")
			}

			gapSuggestions, err := stylist.Gaps(ctx, currentUser(), outfits[0].Items, occasion)
			if err != nil {
				slog.Warn("gap identification failed, exporting outfits only", "error", err)
				gapSuggestions = nil
			}

			writer, err := sheets.NewWriter(ctx, sheetsConfig, slog.Default())
			if err != nil {
				return err
			}

			if err := writer.WriteOutfits(ctx, outfits, gapSuggestions, occasion); err != nil {
				return err
			}

			fmt.Printf("Exported %d outfits\n", len(outfits))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of outfits to export")

	return cmd
}
