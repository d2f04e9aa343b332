package handlers

import (
	"context"

	"bidboard/internal/workspace"
	"bidboard/models"
)

// BidStore is the bid registry. The memory store implements it over the
// fixtures; db.Storage implements it over Postgres.
type BidStore interface {
	ListBids(ctx context.Context, f models.BidFilter, key models.BidSortKey) ([]models.Bid, models.BidStats, error)
	GetBid(ctx context.Context, id string) (*models.Bid, error)
	CreateBid(ctx context.Context, b *models.Bid) error
}

// WorkspaceStore serves the per-bid requirement workspaces and the shared
// content library. Workspaces are in-memory working state in every mode.
type WorkspaceStore interface {
	Workspace(ctx context.Context, bidID string) (*workspace.Workspace, error)
	Library(ctx context.Context) ([]models.ContentDocument, error)
}
