package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
)

// MockStorage is an in-memory service.Storage for engine tests.
type MockStorage struct {
	mu       sync.Mutex
	garments map[string]model.Garment
	prefs    map[string]model.PreferenceProfile
	gapItems map[string]model.CachedGapItem

	// Err, when set, is returned by every operation.
	Err error
	// GapErr, when set, is returned only by UpsertGapItem.
	GapErr error
	// GapReadErr, when set, is returned only by GetGapItems.
	GapReadErr error
}

// NewMockStorage creates an empty mock store.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		garments: make(map[string]model.Garment),
		prefs:    make(map[string]model.PreferenceProfile),
		gapItems: make(map[string]model.CachedGapItem),
	}
}

func (m *MockStorage) SaveGarment(_ context.Context, garment *model.Garment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.garments {
		if existing.Hash == garment.Hash {
			return common.ErrDuplicateEntry
		}
	}
	m.garments[garment.ID] = *garment
	return nil
}

func (m *MockStorage) GetGarments(_ context.Context, userID string) ([]model.Garment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []model.Garment
	for _, g := range m.garments {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *MockStorage) GetGarmentByID(_ context.Context, id string) (*model.Garment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	g, ok := m.garments[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &g, nil
}

func (m *MockStorage) DeleteGarment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.garments[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.garments, id)
	return nil
}

func (m *MockStorage) GetPreferences(_ context.Context, userID string) (*model.PreferenceProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.prefs[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &p, nil
}

func (m *MockStorage) SavePreferences(_ context.Context, prefs *model.PreferenceProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.prefs[prefs.UserID] = *prefs
	return nil
}

func (m *MockStorage) UpsertGapItem(_ context.Context, item *model.CachedGapItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.GapErr != nil {
		return m.GapErr
	}
	term := strings.ToLower(item.Term)
	m.gapItems[term] = model.CachedGapItem{
		Term:     term,
		ImageURL: item.ImageURL,
		CachedAt: time.Now(),
	}
	return nil
}

func (m *MockStorage) GetGapItems(_ context.Context, terms []string) ([]model.CachedGapItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.GapReadErr != nil {
		return nil, m.GapReadErr
	}
	var out []model.CachedGapItem
	for _, term := range terms {
		if item, ok := m.gapItems[strings.ToLower(term)]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockStorage) Migrate(_ context.Context) error { return m.Err }

func (m *MockStorage) Close() error { return nil }

// CachedTerms returns the terms currently held in the mock gap cache.
func (m *MockStorage) CachedTerms() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	terms := make([]string, 0, len(m.gapItems))
	for term := range m.gapItems {
		terms = append(terms, term)
	}
	return terms
}

// MockGapIdentifier returns a scripted suggestion list.
type MockGapIdentifier struct {
	Suggestions []model.GapSuggestion
	Err         error
	Calls       int
}

func (m *MockGapIdentifier) Identify(_ context.Context, _, _ []model.Garment, _ string) ([]model.GapSuggestion, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Suggestions, nil
}
