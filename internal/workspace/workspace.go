// Package workspace implements the per-bid requirement workspace: the
// ontology tree, the node detail records, the global submission checklist and
// the license pools, together with every mutating command the detail view
// offers. All mutations run under one lock so a node's status can never
// differ between the tree and its detail record.
package workspace

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"bidboard/internal/ontology"
	"bidboard/models"
)

var (
	ErrNodeNotFound     = errors.New("node not found")
	ErrLicenseNotFound  = errors.New("license not found")
	ErrSlotNotFound     = errors.New("required document slot not found")
	ErrDocumentNotFound = errors.New("content document not found")
	ErrLinkNotFound     = errors.New("no document link bound to slot")
	ErrItemNotFound     = errors.New("checklist item not found")
	ErrNoChecklist      = errors.New("node has no checklist")
)

// LicenseSource selects which pool a license id is resolved against.
type LicenseSource string

const (
	SourceOwned      LicenseSource = "owned"
	SourceConsortium LicenseSource = "consortium"
)

func (s LicenseSource) Valid() bool {
	return s == SourceOwned || s == SourceConsortium
}

// FileMeta is the metadata of an uploaded evidence file. File bytes are never
// read or stored.
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

const statusChangeAction = "status changed"

// Workspace is the working state of one bid's requirement breakdown.
type Workspace struct {
	mu sync.Mutex

	bidID      string
	tree       []models.TreeNode
	details    map[string]*models.NodeDetail
	checklist  []models.ChecklistItem
	owned      []models.License
	consortium []models.ConsortiumMember
	library    []models.ContentDocument

	now func() time.Time
}

// Seed is everything a workspace starts from.
type Seed struct {
	BidID      string
	Tree       []models.TreeNode
	Details    map[string]models.NodeDetail
	Checklist  []models.ChecklistItem
	Owned      []models.License
	Consortium []models.ConsortiumMember
	Library    []models.ContentDocument
}

// New builds a workspace from a seed, deep-copying everything mutable so
// workspaces never share state with the seed or each other.
func New(seed Seed) *Workspace {
	details := make(map[string]*models.NodeDetail, len(seed.Details))
	for id, d := range seed.Details {
		clone := d.Clone()
		details[id] = &clone
	}
	return &Workspace{
		bidID:      seed.BidID,
		tree:       models.CloneTree(seed.Tree),
		details:    details,
		checklist:  append([]models.ChecklistItem(nil), seed.Checklist...),
		owned:      seed.Owned,
		consortium: seed.Consortium,
		library:    seed.Library,
		now:        time.Now,
	}
}

// SetClock replaces the timestamp source. Tests use this for deterministic
// stamps.
func (w *Workspace) SetClock(now func() time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.now = now
}

func (w *Workspace) stamp() string {
	return w.now().Format(models.StampLayout)
}

// View is a read snapshot of the workspace with its derived aggregates, all
// recomputed at snapshot time.
type View struct {
	BidID                   string                       `json:"bidId"`
	Tree                    []models.TreeNode            `json:"tree"`
	Details                 map[string]models.NodeDetail `json:"details"`
	Checklist               []models.ChecklistItem       `json:"checklist"`
	ChecklistCompletion     int                          `json:"checklistCompletion"`
	CriticalIncompleteCount int                          `json:"criticalIncompleteCount"`
	OwnedLicenses           []models.License             `json:"ownedLicenses"`
	Consortium              []models.ConsortiumMember    `json:"consortiumMembers"`
}

// Snapshot returns a deep copy of the current state.
func (w *Workspace) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	details := make(map[string]models.NodeDetail, len(w.details))
	for id, d := range w.details {
		details[id] = d.Clone()
	}
	return View{
		BidID:                   w.bidID,
		Tree:                    models.CloneTree(w.tree),
		Details:                 details,
		Checklist:               append([]models.ChecklistItem(nil), w.checklist...),
		ChecklistCompletion:     models.CompletionPercent(w.checklist),
		CriticalIncompleteCount: models.CriticalIncompleteCount(w.checklist),
		OwnedLicenses:           w.owned,
		Consortium:              w.consortium,
	}
}

// FilterTree returns the tree narrowed by the predicate without touching the
// workspace state.
func (w *Workspace) FilterTree(p ontology.Predicate) []models.TreeNode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ontology.Filter(models.CloneTree(w.tree), p)
}

// Detail returns a copy of the detail record for a node, if one exists.
func (w *Workspace) Detail(nodeID string) (models.NodeDetail, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.details[nodeID]
	if !ok {
		return models.NodeDetail{}, false
	}
	return d.Clone(), true
}

// setStatus updates the tree and, when a detail record exists, the detail
// plus its history, in one step. Callers hold the lock.
func (w *Workspace) setStatus(nodeID string, status models.NodeStatus, reason string) error {
	tree, found := ontology.UpdateStatus(w.tree, nodeID, status)
	if !found {
		return fmt.Errorf("set status %s: %w", nodeID, ErrNodeNotFound)
	}
	w.tree = tree

	if d, ok := w.details[nodeID]; ok {
		prev := d.Status
		d.Status = status
		entry := models.HistoryEntry{
			ID:     uuid.NewString(),
			At:     w.stamp(),
			Who:    d.Actor(),
			Action: statusChangeAction,
			From:   prev,
			To:     status,
			Detail: reason,
		}
		d.History = append([]models.HistoryEntry{entry}, d.History...)
	}
	return nil
}

// ChangeStatus sets a node's status, records history and returns the success
// notification. Setting the current status again is allowed.
func (w *Workspace) ChangeStatus(nodeID string, status models.NodeStatus, reason string) (models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.setStatus(nodeID, status, reason); err != nil {
		return models.Notification{}, err
	}
	return models.Notification{
		Code:    models.NoteStatusChanged,
		Message: fmt.Sprintf("Status changed to %q", status.Label()),
		Detail:  reason,
	}, nil
}

// MapLicense resolves a license in the requested pool and, when found, forces
// the node's status to SATISFIED regardless of other unmet requirements on
// the node. An unknown license id changes nothing.
func (w *Workspace) MapLicense(nodeID, licenseID string, source LicenseSource) (models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pool := w.owned
	if source == SourceConsortium {
		pool = nil
		for _, m := range w.consortium {
			pool = append(pool, m.Licenses...)
		}
	}

	var license *models.License
	for i := range pool {
		if pool[i].ID == licenseID {
			license = &pool[i]
			break
		}
	}
	if license == nil {
		return models.Notification{}, fmt.Errorf("map license %s: %w", licenseID, ErrLicenseNotFound)
	}

	if err := w.setStatus(nodeID, models.StatusSatisfied, ""); err != nil {
		return models.Notification{}, err
	}
	return models.Notification{
		Code:    models.NoteLicenseMapped,
		Message: "License mapped",
		Detail:  fmt.Sprintf("%s - %s", license.Name, license.Owner),
	}, nil
}

// UploadEvidence appends one metadata-only evidence record per file. Node
// status is untouched.
func (w *Workspace) UploadEvidence(nodeID string, files []FileMeta, reference string) (models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.details[nodeID]
	if !ok {
		return models.Notification{}, fmt.Errorf("upload evidence %s: %w", nodeID, ErrNodeNotFound)
	}

	at := w.stamp()
	for _, f := range files {
		d.Evidence = append(d.Evidence, models.Evidence{
			ID:        uuid.NewString(),
			Name:      f.Name,
			Version:   "v1",
			By:        d.Actor(),
			At:        at,
			Reference: reference,
		})
	}
	return models.Notification{
		Code:    models.NoteEvidenceUploaded,
		Message: fmt.Sprintf("%d file(s) uploaded", len(files)),
		Detail:  reference,
	}, nil
}

// LinkDocument binds a library document to a required document slot. When the
// binding completes the node's required set, status is forced to SATISFIED
// and the distinct all-required-linked notification is returned.
func (w *Workspace) LinkDocument(nodeID, slotID, libraryDocID string) (models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.details[nodeID]
	if !ok {
		return models.Notification{}, fmt.Errorf("link document %s: %w", nodeID, ErrNodeNotFound)
	}

	var doc *models.ContentDocument
	for i := range w.library {
		if w.library[i].ID == libraryDocID {
			doc = &w.library[i]
			break
		}
	}
	if doc == nil {
		return models.Notification{}, fmt.Errorf("link document %s: %w", libraryDocID, ErrDocumentNotFound)
	}

	slot := findSlot(d, slotID)
	if slot == nil {
		return models.Notification{}, fmt.Errorf("link document %s: %w", slotID, ErrSlotNotFound)
	}

	slot.Link = &models.ContentDocumentLink{
		ID:                uuid.NewString(),
		ContentDocumentID: doc.ID,
		LinkedEntityID:    nodeID,
		ContentDocument:   *doc,
		LinkedBy:          d.Actor(),
		LinkedAt:          w.stamp(),
	}

	if allRequiredLinked(d.RequiredDocs) {
		if err := w.setStatus(nodeID, models.StatusSatisfied, ""); err != nil {
			return models.Notification{}, err
		}
		return models.Notification{
			Code:    models.NoteAllRequiredLinked,
			Message: "All required documents linked; node marked satisfied",
			Detail:  doc.Title,
		}, nil
	}
	return models.Notification{
		Code:    models.NoteLinkCreated,
		Message: "Document link created",
		Detail:  doc.Title,
	}, nil
}

// UnlinkDocument clears the bound link from a slot. A SATISFIED node drops
// back to IN_PROGRESS unconditionally; status is not recomputed from the
// remaining slots.
func (w *Workspace) UnlinkDocument(nodeID, slotID string) (models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.details[nodeID]
	if !ok {
		return models.Notification{}, fmt.Errorf("unlink document %s: %w", nodeID, ErrNodeNotFound)
	}
	slot := findSlot(d, slotID)
	if slot == nil {
		return models.Notification{}, fmt.Errorf("unlink document %s: %w", slotID, ErrSlotNotFound)
	}
	if slot.Link == nil {
		return models.Notification{}, fmt.Errorf("unlink document %s: %w", slotID, ErrLinkNotFound)
	}

	title := slot.Link.ContentDocument.Title
	slot.Link = nil

	if d.Status == models.StatusSatisfied {
		if err := w.setStatus(nodeID, models.StatusInProgress, ""); err != nil {
			return models.Notification{}, err
		}
	}
	return models.Notification{
		Code:    models.NoteLinkRemoved,
		Message: "Document link removed",
		Detail:  title,
	}, nil
}

// ToggleGlobalItem sets a global checklist item and stamps or clears the
// checker. The ready-to-submit notification fires only on the toggle that
// completes the whole checklist.
func (w *Workspace) ToggleGlobalItem(itemID string, checked bool) (*models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	wasComplete := allChecked(w.checklist)

	idx := -1
	for i := range w.checklist {
		if w.checklist[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("toggle checklist item %s: %w", itemID, ErrItemNotFound)
	}
	setChecked(&w.checklist[idx], checked, models.DefaultActor, w.stamp())

	if allChecked(w.checklist) && !wasComplete {
		return &models.Notification{
			Code:    models.NoteReadyToSubmit,
			Message: "All checklist items complete",
			Detail:  "Ready to submit",
		}, nil
	}
	return nil, nil
}

// ToggleNodeItem sets an item in a node's checklist. When the toggle
// completes the checklist and the node is not yet satisfied, status is forced
// to SATISFIED through the standard status path.
func (w *Workspace) ToggleNodeItem(nodeID, itemID string, checked bool) (*models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.details[nodeID]
	if !ok {
		return nil, fmt.Errorf("toggle node checklist %s: %w", nodeID, ErrNodeNotFound)
	}
	if len(d.Checklist) == 0 {
		return nil, fmt.Errorf("toggle node checklist %s: %w", nodeID, ErrNoChecklist)
	}

	idx := -1
	for i := range d.Checklist {
		if d.Checklist[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("toggle node checklist %s: %w", itemID, ErrItemNotFound)
	}
	setChecked(&d.Checklist[idx], checked, d.Actor(), w.stamp())

	if allChecked(d.Checklist) && d.Status != models.StatusSatisfied {
		if err := w.setStatus(nodeID, models.StatusSatisfied, ""); err != nil {
			return nil, err
		}
		return &models.Notification{
			Code:    models.NoteNodeChecklistComplete,
			Message: "All checklist items complete",
			Detail:  "Node marked satisfied",
		}, nil
	}
	return nil, nil
}

// EditReference replaces the node's notice excerpt wholesale, stamped as a
// manual entry.
func (w *Workspace) EditReference(nodeID string, ref models.ReferenceInfo) (models.Notification, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.details[nodeID]
	if !ok {
		return models.Notification{}, fmt.Errorf("edit reference %s: %w", nodeID, ErrNodeNotFound)
	}
	ref.ExtractedAt = w.stamp()
	ref.ExtractedBy = "manual entry"
	d.Reference = &ref

	return models.Notification{
		Code:    models.NoteReferenceUpdated,
		Message: "Notice reference updated",
	}, nil
}

func findSlot(d *models.NodeDetail, slotID string) *models.RequiredDocument {
	for i := range d.RequiredDocs {
		if d.RequiredDocs[i].ID == slotID {
			return &d.RequiredDocs[i]
		}
	}
	return nil
}

func allRequiredLinked(docs []models.RequiredDocument) bool {
	for _, rd := range docs {
		if rd.Required && rd.Link == nil {
			return false
		}
	}
	return true
}

func allChecked(items []models.ChecklistItem) bool {
	for _, it := range items {
		if !it.Checked {
			return false
		}
	}
	return len(items) > 0
}

func setChecked(item *models.ChecklistItem, checked bool, who, at string) {
	item.Checked = checked
	if checked {
		item.CheckedBy = who
		item.CheckedAt = at
	} else {
		item.CheckedBy = ""
		item.CheckedAt = ""
	}
}
