// Package db is the optional Postgres-backed bid registry. The requirement
// workspaces stay in memory in every mode; the observed system defines no
// persistent format for them.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"bidboard/internal/store"
	"bidboard/models"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// ListBids applies the filter and sort in SQL and aggregates stats over the
// whole table, mirroring the memory store's contract.
func (s *Storage) ListBids(ctx context.Context, f models.BidFilter, key models.BidSortKey) ([]models.Bid, models.BidStats, error) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR notice_no ILIKE %s OR client ILIKE %s)", p, p, p))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, string(f.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT id, name, notice_no, client, status, d_day, deadline, progress,
	       checklist_progress, owner, category, estimated_amount, created_at FROM bids`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	switch key {
	case models.SortByProgress:
		query += " ORDER BY progress DESC"
	case models.SortByCreated:
		query += " ORDER BY created_at DESC"
	default:
		query += " ORDER BY d_day ASC"
	}

	bids := []models.Bid{}
	if err := s.db.SelectContext(ctx, &bids, query, args...); err != nil {
		return nil, models.BidStats{}, fmt.Errorf("list bids: %w", err)
	}

	var stats models.BidStats
	statsQuery := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status IN ('IN_PREPARATION', 'REVIEW')),
               COUNT(*) FILTER (WHERE d_day > 0 AND d_day <= 7),
               COUNT(*) FILTER (WHERE status = 'SUBMITTED')
        FROM bids`
	err := s.db.QueryRowContext(ctx, statsQuery).
		Scan(&stats.Total, &stats.InPreparation, &stats.Urgent, &stats.Submitted)
	if err != nil {
		return nil, models.BidStats{}, fmt.Errorf("bid stats: %w", err)
	}
	return bids, stats, nil
}

func (s *Storage) GetBid(ctx context.Context, id string) (*models.Bid, error) {
	b := &models.Bid{}
	query := `SELECT id, name, notice_no, client, status, d_day, deadline, progress,
	       checklist_progress, owner, category, estimated_amount, created_at
	       FROM bids WHERE id = $1`
	if err := s.db.GetContext(ctx, b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBidNotFound
		}
		return nil, fmt.Errorf("get bid %s: %w", id, err)
	}
	return b, nil
}

func (s *Storage) CreateBid(ctx context.Context, b *models.Bid) error {
	query := `
        INSERT INTO bids
            (id, name, notice_no, client, status, d_day, deadline, progress,
             checklist_progress, owner, category, estimated_amount, created_at)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := s.db.ExecContext(ctx, query,
		b.ID, b.Name, b.NoticeNo, b.Client, b.Status, b.DDay, b.Deadline,
		b.Progress, b.ChecklistProgress, b.Owner, b.Category, b.EstimatedAmount, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("create bid: %w", err)
	}
	return nil
}
