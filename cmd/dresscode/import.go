package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernwood/dresscode/internal/importer"
)

func importCmd() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "import <wardrobe.csv>",
		Short: "Import garments from a CSV file",
		Long: `Import garments from a CSV export. The file needs a header row with
at least a title column; color, category, style, and source columns are
picked up when present. Duplicate garments are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0]) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to open CSV: %w", err)
			}
			defer func() { _ = f.Close() }()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			imp, err := importer.New(store, nil)
			if err != nil {
				return err
			}

			result, err := imp.Import(ctx, f, currentUser(), !noProgress)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d garments (%d duplicates skipped)\n", result.Imported, result.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	return cmd
}
