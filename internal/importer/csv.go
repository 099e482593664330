// Package importer loads wardrobes from CSV exports. The expected header
// is title,color,category,style,source; missing optional columns are
// tolerated.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
	"github.com/fernwood/dresscode/internal/service"
	"github.com/fernwood/dresscode/internal/vocab"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
}

// Importer parses garment CSVs and persists the rows.
type Importer struct {
	storage service.Storage
	logger  *slog.Logger
}

// New creates a CSV importer.
func New(storage service.Storage, logger *slog.Logger) (*Importer, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{storage: storage, logger: logger}, nil
}

// Import reads garment rows from r and saves them for the user.
// Duplicates (by content hash) are counted as skipped, not errors. When
// showProgress is true a progress bar is drawn to stderr.
func (i *Importer) Import(ctx context.Context, r io.Reader, userID string, showProgress bool) (*Result, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	garments, err := parseCSV(r)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(garments),
			progressbar.OptionSetDescription("Importing garments"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	result := &Result{}
	for _, garment := range garments {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		garment.UserID = userID
		garment.ID = uuid.New().String()
		garment.Hash = garment.GenerateHash()

		err := i.storage.SaveGarment(ctx, &garment)
		switch {
		case errors.Is(err, common.ErrDuplicateEntry):
			result.Skipped++
			i.logger.Debug("skipping duplicate garment", "title", garment.Title)
		case err != nil:
			return result, fmt.Errorf("failed to save garment %q: %w", garment.Title, err)
		default:
			result.Imported++
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	i.logger.Info("import complete", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

// parseCSV reads garment rows. The first row must be a header naming at
// least a title column; other columns are matched by name in any order.
func parseCSV(r io.Reader) ([]model.Garment, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	if _, ok := columns["title"]; !ok {
		return nil, fmt.Errorf("CSV is missing the required title column")
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var garments []model.Garment
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV line %d: %w", line, err)
		}

		title := field(record, "title")
		if title == "" {
			continue
		}

		source := model.GarmentSourceOwned
		if raw := strings.ToLower(field(record, "source")); raw == string(model.GarmentSourceExternal) {
			source = model.GarmentSourceExternal
		}

		garments = append(garments, model.Garment{
			Title:    title,
			Color:    strings.ToLower(field(record, "color")),
			Category: vocab.NormalizeSlot(field(record, "category")),
			Style:    strings.ToLower(field(record, "style")),
			Source:   source,
		})
	}

	return garments, nil
}
