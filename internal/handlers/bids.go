package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bidboard/models"
)

// ListBidsHandler handles GET /api/bids with search/status/category filters
// and a sort key. Stats always cover the unfiltered collection.
func (h *Handler) ListBidsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.BidFilter{Search: q.Get("search")}
	if v := q.Get("status"); v != "" && v != "all" {
		status := models.BidStatus(v)
		if !status.Valid() {
			h.respondError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		filter.Status = status
	}
	if v := q.Get("category"); v != "" && v != "all" {
		category := models.BidCategory(v)
		if !category.Valid() {
			h.respondError(w, http.StatusBadRequest, "invalid category filter")
			return
		}
		filter.Category = category
	}

	sortKey := models.SortByDeadline
	if v := q.Get("sort"); v != "" {
		sortKey = models.BidSortKey(v)
		if !sortKey.Valid() {
			h.respondError(w, http.StatusBadRequest, "invalid sort key")
			return
		}
	}

	bids, stats, err := h.Bids.ListBids(r.Context(), filter, sortKey)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"bids":  bids,
		"stats": stats,
	})
}

type createBidRequest struct {
	Name            string `json:"name"`
	NoticeNo        string `json:"noticeNo"`
	Client          string `json:"client"`
	Category        string `json:"category"`
	Deadline        string `json:"deadline"`
	Owner           string `json:"owner"`
	EstimatedAmount string `json:"estimatedAmount"`
}

func (req *createBidRequest) validate() error {
	if req.Name == "" || len(req.Name) > 200 {
		return errors.New("name is required and max length 200")
	}
	if req.NoticeNo == "" {
		return errors.New("noticeNo is required")
	}
	if req.Client == "" {
		return errors.New("client is required")
	}
	if !models.BidCategory(req.Category).Valid() {
		return errors.New("invalid category")
	}
	if _, err := time.Parse(models.StampLayout, req.Deadline); err != nil {
		return errors.New("deadline must be in YYYY-MM-DD HH:MM form")
	}
	return nil
}

// CreateBidHandler handles POST /api/bids/new. New bids start as drafts with
// zero progress.
func (h *Handler) CreateBidHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req createBidRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON format")
		return
	}
	if err := req.validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	deadline, _ := time.Parse(models.StampLayout, req.Deadline)
	now := time.Now()
	owner := req.Owner
	if owner == "" {
		owner = models.DefaultActor
	}
	bid := models.Bid{
		ID:              models.NewBidID(),
		Name:            req.Name,
		NoticeNo:        req.NoticeNo,
		Client:          req.Client,
		Status:          models.BidDraft,
		DDay:            int(time.Until(deadline).Hours() / 24),
		Deadline:        deadline,
		Owner:           owner,
		Category:        models.BidCategory(req.Category),
		EstimatedAmount: req.EstimatedAmount,
		CreatedAt:       now,
	}

	if err := h.Bids.CreateBid(r.Context(), &bid); err != nil {
		h.storeError(w, err)
		return
	}
	h.Log.Info("bid created", zap.String("bid_id", bid.ID))
	h.respondJSON(w, http.StatusOK, bid)
}

// SelectBidHandler handles GET /api/bids/{bidId}: the bid row plus its
// requirement workspace snapshot.
func (h *Handler) SelectBidHandler(w http.ResponseWriter, r *http.Request) {
	bidID := chi.URLParam(r, "bidId")

	bid, err := h.Bids.GetBid(r.Context(), bidID)
	if err != nil {
		h.storeError(w, err)
		return
	}
	ws, err := h.Workspaces.Workspace(r.Context(), bidID)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"bid":       bid,
		"workspace": ws.Snapshot(),
	})
}

// LibraryHandler handles GET /api/library.
func (h *Handler) LibraryHandler(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Workspaces.Library(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}
