package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"bidboard/internal/store"
	"bidboard/internal/workspace"
)

// Handler wires the HTTP command surface to the stores.
type Handler struct {
	Bids       BidStore
	Workspaces WorkspaceStore
	Log        *zap.Logger
}

func NewHandler(bids BidStore, workspaces WorkspaceStore, log *zap.Logger) *Handler {
	return &Handler{Bids: bids, Workspaces: workspaces, Log: log}
}

// PingHandler answers "ok" for liveness checks.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Reason string `json:"reason"`
}

func (h *Handler) respondError(w http.ResponseWriter, status int, reason string) {
	h.respondJSON(w, status, errorResponse{Reason: reason})
}

// storeError maps unresolved-reference errors to 404 and everything else to
// 500. The prototype silently no-opped on unknown ids; the service surfaces
// them instead.
func (h *Handler) storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrBidNotFound),
		errors.Is(err, workspace.ErrNodeNotFound),
		errors.Is(err, workspace.ErrLicenseNotFound),
		errors.Is(err, workspace.ErrSlotNotFound),
		errors.Is(err, workspace.ErrDocumentNotFound),
		errors.Is(err, workspace.ErrLinkNotFound),
		errors.Is(err, workspace.ErrItemNotFound),
		errors.Is(err, workspace.ErrNoChecklist):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.Log.Error("storage failure", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal error")
	}
}
