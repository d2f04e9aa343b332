package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bidboard/internal/workspace"
	"bidboard/models"
)

func (h *Handler) workspaceFor(w http.ResponseWriter, r *http.Request) (*workspace.Workspace, bool) {
	ws, err := h.Workspaces.Workspace(r.Context(), chi.URLParam(r, "bidId"))
	if err != nil {
		h.storeError(w, err)
		return nil, false
	}
	return ws, true
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	defer r.Body.Close()
	if err := json.Unmarshal(body, v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON format")
		return false
	}
	return true
}

// respondMutation returns the notification plus the node's detail record as
// it stands after the operation, when one exists.
func (h *Handler) respondMutation(w http.ResponseWriter, ws *workspace.Workspace, nodeID string, note *models.Notification) {
	resp := map[string]interface{}{}
	if note != nil {
		resp["notification"] = note
	}
	if detail, ok := ws.Detail(nodeID); ok {
		resp["detail"] = detail
	}
	h.respondJSON(w, http.StatusOK, resp)
}

type changeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// ChangeNodeStatusHandler handles PUT /api/bids/{bidId}/nodes/{nodeId}/status.
func (h *Handler) ChangeNodeStatusHandler(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeId")

	var req changeStatusRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	status := models.NodeStatus(req.Status)
	if !status.Valid() {
		h.respondError(w, http.StatusBadRequest, "invalid node status")
		return
	}

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.ChangeStatus(nodeID, status, req.Reason)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.Log.Info("node status changed",
		zap.String("node_id", nodeID), zap.String("status", string(status)))
	h.respondMutation(w, ws, nodeID, &note)
}

type mapLicenseRequest struct {
	LicenseID string `json:"licenseId"`
	Source    string `json:"source"`
}

// MapLicenseHandler handles POST /api/bids/{bidId}/nodes/{nodeId}/license.
func (h *Handler) MapLicenseHandler(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeId")

	var req mapLicenseRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	source := workspace.LicenseSource(req.Source)
	if !source.Valid() {
		h.respondError(w, http.StatusBadRequest, "source must be owned or consortium")
		return
	}

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.MapLicense(nodeID, req.LicenseID, source)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.Log.Info("license mapped",
		zap.String("node_id", nodeID), zap.String("license_id", req.LicenseID))
	h.respondMutation(w, ws, nodeID, &note)
}

type uploadEvidenceRequest struct {
	Files     []workspace.FileMeta `json:"files"`
	Reference string               `json:"reference"`
}

// UploadEvidenceHandler handles POST /api/bids/{bidId}/nodes/{nodeId}/evidence.
// Only metadata is recorded; no file bytes travel through this endpoint.
func (h *Handler) UploadEvidenceHandler(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeId")

	var req uploadEvidenceRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if len(req.Files) == 0 {
		h.respondError(w, http.StatusBadRequest, "at least one file is required")
		return
	}

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.UploadEvidence(nodeID, req.Files, req.Reference)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.respondMutation(w, ws, nodeID, &note)
}

type linkDocumentRequest struct {
	LibraryDocumentID string `json:"libraryDocumentId"`
}

// LinkDocumentHandler handles
// POST /api/bids/{bidId}/nodes/{nodeId}/documents/{slotId}/link.
func (h *Handler) LinkDocumentHandler(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeId")
	slotID := chi.URLParam(r, "slotId")

	var req linkDocumentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.LibraryDocumentID == "" {
		h.respondError(w, http.StatusBadRequest, "libraryDocumentId is required")
		return
	}

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.LinkDocument(nodeID, slotID, req.LibraryDocumentID)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.Log.Info("document linked",
		zap.String("node_id", nodeID), zap.String("slot_id", slotID),
		zap.String("document_id", req.LibraryDocumentID))
	h.respondMutation(w, ws, nodeID, &note)
}

// UnlinkDocumentHandler handles
// DELETE /api/bids/{bidId}/nodes/{nodeId}/documents/{slotId}/link.
func (h *Handler) UnlinkDocumentHandler(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeId")
	slotID := chi.URLParam(r, "slotId")

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.UnlinkDocument(nodeID, slotID)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.respondMutation(w, ws, nodeID, &note)
}

type toggleChecklistRequest struct {
	Checked bool `json:"checked"`
}

// ToggleGlobalChecklistHandler handles PUT /api/bids/{bidId}/checklist/{itemId}.
func (h *Handler) ToggleGlobalChecklistHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	var req toggleChecklistRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.ToggleGlobalItem(itemID, req.Checked)
	if err != nil {
		h.storeError(w, err)
		return
	}
	view := ws.Snapshot()
	resp := map[string]interface{}{
		"checklist":           view.Checklist,
		"checklistCompletion": view.ChecklistCompletion,
	}
	if note != nil {
		resp["notification"] = note
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// ToggleNodeChecklistHandler handles
// PUT /api/bids/{bidId}/nodes/{nodeId}/checklist/{itemId}.
func (h *Handler) ToggleNodeChecklistHandler(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeId")
	itemID := chi.URLParam(r, "itemId")

	var req toggleChecklistRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.ToggleNodeItem(nodeID, itemID, req.Checked)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.respondMutation(w, ws, nodeID, note)
}

type editReferenceRequest struct {
	Page    string `json:"page"`
	Article string `json:"article"`
	Content string `json:"content"`
}

// EditReferenceHandler handles PUT /api/bids/{bidId}/nodes/{nodeId}/reference.
// Content is stored as-is; markup well-formedness is a rendering concern.
func (h *Handler) EditReferenceHandler(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeId")

	var req editReferenceRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	ws, ok := h.workspaceFor(w, r)
	if !ok {
		return
	}
	note, err := ws.EditReference(nodeID, models.ReferenceInfo{
		Page:    req.Page,
		Article: req.Article,
		Content: req.Content,
	})
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.respondMutation(w, ws, nodeID, &note)
}
