package storage

import (
	"context"
	"testing"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func garmentFixture(id, title string) *model.Garment {
	g := &model.Garment{
		ID:       id,
		UserID:   "user-1",
		Title:    title,
		Color:    "navy",
		Category: "shirt",
		Style:    "casual",
		Source:   model.GarmentSourceOwned,
	}
	g.Hash = g.GenerateHash()
	return g
}

func TestSaveAndGetGarments(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGarment(ctx, garmentFixture("g1", "Oxford shirt")))
	require.NoError(t, store.SaveGarment(ctx, garmentFixture("g2", "Linen shirt")))

	garments, err := store.GetGarments(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, garments, 2)
	assert.Equal(t, "Oxford shirt", garments[0].Title)
	assert.Equal(t, model.GarmentSourceOwned, garments[0].Source)
}

func TestSaveGarment_DuplicateHash(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGarment(ctx, garmentFixture("g1", "Oxford shirt")))

	// Same content, different ID: the hash collides.
	err := store.SaveGarment(ctx, garmentFixture("g2", "Oxford shirt"))
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	garments, err := store.GetGarments(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, garments, 1)
}

func TestSaveGarment_Validation(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	assert.Error(t, store.SaveGarment(ctx, nil))
	assert.Error(t, store.SaveGarment(ctx, &model.Garment{ID: "g1", UserID: "u1"}))
}

func TestGetGarmentByID(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGarment(ctx, garmentFixture("g1", "Oxford shirt")))

	got, err := store.GetGarmentByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Oxford shirt", got.Title)

	_, err = store.GetGarmentByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteGarment(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGarment(ctx, garmentFixture("g1", "Oxford shirt")))
	require.NoError(t, store.DeleteGarment(ctx, "g1"))

	assert.ErrorIs(t, store.DeleteGarment(ctx, "g1"), common.ErrNotFound)
}

func TestGetGarments_ScopedToUser(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	mine := garmentFixture("g1", "Oxford shirt")
	theirs := garmentFixture("g2", "Band tee")
	theirs.UserID = "user-2"
	theirs.Hash = theirs.GenerateHash()

	require.NoError(t, store.SaveGarment(ctx, mine))
	require.NoError(t, store.SaveGarment(ctx, theirs))

	garments, err := store.GetGarments(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, garments, 1)
	assert.Equal(t, "g1", garments[0].ID)
}

func TestPreferences_RoundTrip(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	prefs := &model.PreferenceProfile{
		UserID:   "user-1",
		Gender:   "female",
		Styles:   []string{"minimalist", "formal"},
		Colors:   []string{"black", "white"},
		Sizes:    []string{"M"},
		PriceMin: 20,
		PriceMax: 150,
	}
	require.NoError(t, store.SavePreferences(ctx, prefs))

	got, err := store.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, prefs.Gender, got.Gender)
	assert.Equal(t, prefs.Styles, got.Styles)
	assert.Equal(t, prefs.Colors, got.Colors)
	assert.Equal(t, prefs.PriceMax, got.PriceMax)
}

func TestPreferences_UpsertOverwrites(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	require.NoError(t, store.SavePreferences(ctx, &model.PreferenceProfile{
		UserID: "user-1",
		Gender: "male",
	}))
	require.NoError(t, store.SavePreferences(ctx, &model.PreferenceProfile{
		UserID: "user-1",
		Gender: "female",
		Styles: []string{"edgy"},
	}))

	got, err := store.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "female", got.Gender)
	assert.Equal(t, []string{"edgy"}, got.Styles)
}

func TestPreferences_NotFound(t *testing.T) {
	store := setupDB(t)

	_, err := store.GetPreferences(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGapItems_UpsertAndGet(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertGapItem(ctx, &model.CachedGapItem{
		Term:     "Brown Leather Belt",
		ImageURL: "https://example.com/belt.jpg",
	}))

	// Lookup is case-insensitive because terms are stored lower-cased.
	items, err := store.GetGapItems(ctx, []string{"brown leather BELT"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "brown leather belt", items[0].Term)
	assert.Equal(t, "https://example.com/belt.jpg", items[0].ImageURL)
}

func TestGapItems_UpsertRefreshesImage(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertGapItem(ctx, &model.CachedGapItem{Term: "silk scarf", ImageURL: "old"}))
	require.NoError(t, store.UpsertGapItem(ctx, &model.CachedGapItem{Term: "silk scarf", ImageURL: "new"}))

	items, err := store.GetGapItems(ctx, []string{"silk scarf"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ImageURL)
}

func TestGapItems_EmptyTerms(t *testing.T) {
	store := setupDB(t)

	items, err := store.GetGapItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := setupDB(t)

	require.NoError(t, store.Migrate(context.Background()))
}
