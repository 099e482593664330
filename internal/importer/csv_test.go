package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/fernwood/dresscode/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `title,color,category,style,source
White tee,White,T-Shirt,casual,owned
Navy chinos,Navy,Chinos,casual,owned
Red gown,Red,Gown,formal,external
`

func TestImport_SavesAllRows(t *testing.T) {
	store := engine.NewMockStorage()
	imp, err := New(store, nil)
	require.NoError(t, err)

	result, err := imp.Import(context.Background(), strings.NewReader(sampleCSV), "user-1", false)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	garments, err := store.GetGarments(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, garments, 3)

	for _, g := range garments {
		assert.NotEmpty(t, g.ID)
		assert.NotEmpty(t, g.Hash)
		// Colors and categories are normalized on the way in.
		assert.Equal(t, strings.ToLower(g.Color), g.Color)
	}
}

func TestImport_SkipsDuplicates(t *testing.T) {
	store := engine.NewMockStorage()
	imp, err := New(store, nil)
	require.NoError(t, err)

	_, err = imp.Import(context.Background(), strings.NewReader(sampleCSV), "user-1", false)
	require.NoError(t, err)

	result, err := imp.Import(context.Background(), strings.NewReader(sampleCSV), "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 3, result.Skipped)
}

func TestImport_NormalizesCategories(t *testing.T) {
	store := engine.NewMockStorage()
	imp, err := New(store, nil)
	require.NoError(t, err)

	csvData := "title,color,category\nOld kicks,white,Sneakers\n"
	_, err = imp.Import(context.Background(), strings.NewReader(csvData), "user-1", false)
	require.NoError(t, err)

	garments, err := store.GetGarments(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, garments, 1)
	assert.Equal(t, "shoes", garments[0].Category)
}

func TestImport_SkipsBlankTitles(t *testing.T) {
	store := engine.NewMockStorage()
	imp, err := New(store, nil)
	require.NoError(t, err)

	csvData := "title,color\n,red\nReal shirt,blue\n"
	result, err := imp.Import(context.Background(), strings.NewReader(csvData), "user-1", false)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImport_MissingTitleColumn(t *testing.T) {
	store := engine.NewMockStorage()
	imp, err := New(store, nil)
	require.NoError(t, err)

	_, err = imp.Import(context.Background(), strings.NewReader("color,category\nred,shirt\n"), "user-1", false)
	assert.Error(t, err)
}

func TestImport_RequiresUserID(t *testing.T) {
	store := engine.NewMockStorage()
	imp, err := New(store, nil)
	require.NoError(t, err)

	_, err = imp.Import(context.Background(), strings.NewReader(sampleCSV), "", false)
	assert.Error(t, err)
}
