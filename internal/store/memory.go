// Package store provides the default in-memory storage: a fixture-seeded bid
// registry and the per-bid requirement workspaces, created lazily from the
// analysis fixture on first access.
package store

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"bidboard/internal/fixtures"
	"bidboard/internal/workspace"
	"bidboard/models"
)

var ErrBidNotFound = errors.New("bid not found")

// Memory holds all transient state of the observed system.
type Memory struct {
	mu         sync.RWMutex
	bids       []models.Bid
	workspaces map[string]*workspace.Workspace
	library    []models.ContentDocument
	log        *zap.Logger
}

// NewMemory seeds the store from the static fixtures.
func NewMemory(log *zap.Logger) *Memory {
	m := &Memory{
		bids:       fixtures.Bids(),
		workspaces: make(map[string]*workspace.Workspace),
		library:    fixtures.ContentLibrary(),
		log:        log,
	}
	log.Info("memory store seeded", zap.Int("bids", len(m.bids)), zap.Int("library_documents", len(m.library)))
	return m
}

// ListBids filters and sorts the registry and always aggregates stats over
// the unfiltered collection.
func (m *Memory) ListBids(ctx context.Context, f models.BidFilter, key models.BidSortKey) ([]models.Bid, models.BidStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := models.ComputeStats(m.bids)
	out := models.FilterBids(m.bids, f)
	models.SortBids(out, key)
	return out, stats, nil
}

// GetBid returns one bid by id.
func (m *Memory) GetBid(ctx context.Context, id string) (*models.Bid, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.bids {
		if m.bids[i].ID == id {
			b := m.bids[i]
			return &b, nil
		}
	}
	return nil, ErrBidNotFound
}

// CreateBid appends a registered bid to the registry.
func (m *Memory) CreateBid(ctx context.Context, b *models.Bid) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bids = append(m.bids, *b)
	m.log.Info("bid registered", zap.String("bid_id", b.ID), zap.String("name", b.Name))
	return nil
}

// Workspace returns the bid's requirement workspace, cloning it from the
// analysis fixture on first access. The prototype renders the same fixture
// ontology for every bid; the store mirrors that.
func (m *Memory) Workspace(ctx context.Context, bidID string) (*workspace.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ws, ok := m.workspaces[bidID]; ok {
		return ws, nil
	}
	found := false
	for i := range m.bids {
		if m.bids[i].ID == bidID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrBidNotFound
	}
	ws := workspace.New(fixtures.WorkspaceSeed(bidID))
	m.workspaces[bidID] = ws
	m.log.Debug("workspace seeded", zap.String("bid_id", bidID))
	return ws, nil
}

// Library returns the shared content document library.
func (m *Memory) Library(ctx context.Context) ([]models.ContentDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.ContentDocument(nil), m.library...), nil
}
