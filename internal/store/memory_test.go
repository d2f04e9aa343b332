package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bidboard/internal/store"
	"bidboard/models"
)

func TestListBidsDefault(t *testing.T) {
	m := store.NewMemory(zap.NewNop())

	bids, stats, err := m.ListBids(context.Background(), models.BidFilter{}, models.SortByDeadline)
	require.NoError(t, err)

	require.Len(t, bids, 8)
	require.Equal(t, models.BidStats{Total: 8, InPreparation: 4, Urgent: 2, Submitted: 1}, stats)
	// deadline sort: most negative d-day first
	require.Equal(t, "BID-006", bids[0].ID)
	require.Equal(t, "BID-008", bids[len(bids)-1].ID)
}

func TestListBidsFilteredStatsStayGlobal(t *testing.T) {
	m := store.NewMemory(zap.NewNop())

	bids, stats, err := m.ListBids(context.Background(),
		models.BidFilter{Status: models.BidInPreparation}, models.SortByDeadline)
	require.NoError(t, err)

	require.Len(t, bids, 3)
	require.Equal(t, "BID-001", bids[0].ID)
	require.Equal(t, "BID-005", bids[1].ID)
	require.Equal(t, "BID-008", bids[2].ID)
	require.Equal(t, 8, stats.Total)
}

func TestListBidsSearch(t *testing.T) {
	m := store.NewMemory(zap.NewNop())

	bids, _, err := m.ListBids(context.Background(),
		models.BidFilter{Search: "seoul"}, models.SortByDeadline)
	require.NoError(t, err)

	require.Len(t, bids, 1)
	require.Equal(t, "BID-001", bids[0].ID)
}

func TestGetBid(t *testing.T) {
	m := store.NewMemory(zap.NewNop())

	b, err := m.GetBid(context.Background(), "BID-003")
	require.NoError(t, err)
	require.Equal(t, "Cloud Infrastructure Modernization", b.Name)

	_, err = m.GetBid(context.Background(), "BID-999")
	require.ErrorIs(t, err, store.ErrBidNotFound)
}

func TestCreateBid(t *testing.T) {
	m := store.NewMemory(zap.NewNop())

	bid := models.Bid{
		ID:        models.NewBidID(),
		Name:      "Harbor Automation",
		NoticeNo:  "2025-200",
		Client:    "Busan Port Authority",
		Status:    models.BidDraft,
		Deadline:  time.Date(2026, 1, 15, 17, 0, 0, 0, time.UTC),
		Category:  models.CategorySystemIntegration,
		CreatedAt: time.Now(),
	}
	require.NoError(t, m.CreateBid(context.Background(), &bid))

	got, err := m.GetBid(context.Background(), bid.ID)
	require.NoError(t, err)
	require.Equal(t, "Harbor Automation", got.Name)

	_, stats, err := m.ListBids(context.Background(), models.BidFilter{}, models.SortByCreated)
	require.NoError(t, err)
	require.Equal(t, 9, stats.Total)
}

func TestWorkspaceCachedPerBid(t *testing.T) {
	m := store.NewMemory(zap.NewNop())
	ctx := context.Background()

	a, err := m.Workspace(ctx, "BID-001")
	require.NoError(t, err)
	again, err := m.Workspace(ctx, "BID-001")
	require.NoError(t, err)
	require.Same(t, a, again)

	b, err := m.Workspace(ctx, "BID-002")
	require.NoError(t, err)
	require.NotSame(t, a, b)
}

func TestWorkspaceUnknownBid(t *testing.T) {
	m := store.NewMemory(zap.NewNop())

	_, err := m.Workspace(context.Background(), "BID-999")
	require.ErrorIs(t, err, store.ErrBidNotFound)
}

func TestLibrary(t *testing.T) {
	m := store.NewMemory(zap.NewNop())

	docs, err := m.Library(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 14)
	require.Equal(t, "CD001", docs[0].ID)
}
