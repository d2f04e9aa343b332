package models

import "math"

// StampLayout is the minute-precision format used for actor stamps on
// history, evidence, checklist and link records.
const StampLayout = "2006-01-02 15:04"

// DefaultActor is recorded when a node has no owner to attribute an action to.
const DefaultActor = "user"

// NodeStatus is the status of a single requirement node.
type NodeStatus string

const (
	StatusNotStarted NodeStatus = "NOT_STARTED"
	StatusInProgress NodeStatus = "IN_PROGRESS"
	StatusBlocked    NodeStatus = "BLOCKED"
	StatusRisk       NodeStatus = "RISK"
	StatusSatisfied  NodeStatus = "SATISFIED"
)

func (s NodeStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusRisk, StatusSatisfied:
		return true
	}
	return false
}

// Label returns the human-readable form used in notifications.
func (s NodeStatus) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusBlocked:
		return "Blocked"
	case StatusRisk:
		return "At risk"
	case StatusSatisfied:
		return "Satisfied"
	}
	return string(s)
}

// TreeNode is one entry in the hierarchical breakdown of tender requirements.
// Parent owns children; the tree is never restructured at runtime.
type TreeNode struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Status   NodeStatus `json:"status"`
	Required bool       `json:"required"`
	Children []TreeNode `json:"children,omitempty"`
}

// Clone returns a deep copy of the node and its subtree.
func (n TreeNode) Clone() TreeNode {
	out := n
	if n.Children != nil {
		out.Children = make([]TreeNode, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// CloneTree deep-copies a whole forest.
func CloneTree(nodes []TreeNode) []TreeNode {
	if nodes == nil {
		return nil
	}
	out := make([]TreeNode, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// Evidence is a free-standing attachment record, metadata only. It is
// independent of the required-document mechanism: evidence is general backup
// material, required documents form the mandatory submission checklist.
type Evidence struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	By        string `json:"by"`
	At        string `json:"at"`
	Reference string `json:"reference,omitempty"`
}

// ContentDocument is a file in the shared content library.
type ContentDocument struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	FileExtension    string `json:"fileExtension"`
	FileType         string `json:"fileType"`
	ContentSize      int64  `json:"contentSize"`
	CreatedBy        string `json:"createdBy"`
	CreatedDate      string `json:"createdDate"`
	LastModifiedDate string `json:"lastModifiedDate"`
	Description      string `json:"description,omitempty"`
}

// ContentDocumentLink binds a library document to exactly one required
// document slot on one node.
type ContentDocumentLink struct {
	ID                string          `json:"id"`
	ContentDocumentID string          `json:"contentDocumentId"`
	LinkedEntityID    string          `json:"linkedEntityId"`
	ContentDocument   ContentDocument `json:"contentDocument"`
	LinkedBy          string          `json:"linkedBy"`
	LinkedAt          string          `json:"linkedAt"`
}

// RequiredDocument is a named submission requirement slot.
type RequiredDocument struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Required    bool                 `json:"required"`
	Link        *ContentDocumentLink `json:"contentDocumentLink,omitempty"`
}

// License held by the bidder or a consortium member.
type License struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExpiryDate string `json:"expiryDate"`
	Issuer     string `json:"issuer"`
	Owner      string `json:"owner"`
}

// ConsortiumMember is a co-bidding entity contributing its licenses toward
// eligibility.
type ConsortiumMember struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Share    int       `json:"share"`
	Role     string    `json:"role"`
	Licenses []License `json:"licenses"`
}

// HistoryEntry is an immutable audit record. New entries are always
// prepended; entries are never edited or removed.
type HistoryEntry struct {
	ID     string     `json:"id"`
	At     string     `json:"at"`
	Who    string     `json:"who"`
	Action string     `json:"action"`
	From   NodeStatus `json:"from,omitempty"`
	To     NodeStatus `json:"to,omitempty"`
	Detail string     `json:"detail,omitempty"`
}

// ChecklistCategory classifies a checklist item.
type ChecklistCategory string

const (
	CheckDeadline  ChecklistCategory = "deadline"
	CheckUpload    ChecklistCategory = "upload"
	CheckSignature ChecklistCategory = "signature"
	CheckFilename  ChecklistCategory = "filename"
	CheckAmount    ChecklistCategory = "amount"
	CheckEvidence  ChecklistCategory = "evidence"
	CheckGeneral   ChecklistCategory = "general"
)

// Critical reports whether an unchecked item of this category must be
// surfaced with urgency.
func (c ChecklistCategory) Critical() bool {
	return c == CheckDeadline || c == CheckSignature || c == CheckAmount
}

// ChecklistItem is a boolean-gated submission-readiness check.
type ChecklistItem struct {
	ID          string            `json:"id"`
	Label       string            `json:"label"`
	Description string            `json:"description,omitempty"`
	Checked     bool              `json:"checked"`
	CheckedBy   string            `json:"checkedBy,omitempty"`
	CheckedAt   string            `json:"checkedAt,omitempty"`
	Category    ChecklistCategory `json:"category"`
}

// CompletionPercent is checked-count over total, rounded to the nearest
// integer. An empty checklist reports 0.
func CompletionPercent(items []ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	return int(math.Round(float64(checked) / float64(len(items)) * 100))
}

// CriticalIncompleteCount counts unchecked items in critical categories.
func CriticalIncompleteCount(items []ChecklistItem) int {
	n := 0
	for _, it := range items {
		if it.Category.Critical() && !it.Checked {
			n++
		}
	}
	return n
}

// ReferenceInfo is a rich-text excerpt from the source notice. Content is a
// constrained markup subset stored as-is; well-formedness is a rendering
// concern.
type ReferenceInfo struct {
	Page        string `json:"page,omitempty"`
	Article     string `json:"article,omitempty"`
	Content     string `json:"content"`
	ExtractedAt string `json:"extractedAt,omitempty"`
	ExtractedBy string `json:"extractedBy,omitempty"`
}

// NodeDetail is the extended record for a tree node, keyed by node id. Its
// Status must equal the tree node's status after every mutation; the
// workspace updates both in one transaction.
type NodeDetail struct {
	ID           string             `json:"id"`
	Label        string             `json:"label"`
	Status       NodeStatus         `json:"status"`
	Required     bool               `json:"required"`
	LicenseType  string             `json:"licenseType,omitempty"`
	Weight       int                `json:"weight,omitempty"`
	Owner        string             `json:"owner,omitempty"`
	Reviewer     string             `json:"reviewer,omitempty"`
	Evidence     []Evidence         `json:"evidence"`
	RequiredDocs []RequiredDocument `json:"requiredDocuments,omitempty"`
	History      []HistoryEntry     `json:"history"`
	RelatedNodes int                `json:"relatedNodes,omitempty"`
	Checklist    []ChecklistItem    `json:"checklist,omitempty"`
	Reference    *ReferenceInfo     `json:"reference,omitempty"`
}

// Actor returns the identity to record for actions on this node.
func (d *NodeDetail) Actor() string {
	if d != nil && d.Owner != "" {
		return d.Owner
	}
	return DefaultActor
}

// Clone returns a deep copy of the detail record.
func (d NodeDetail) Clone() NodeDetail {
	out := d
	out.Evidence = append([]Evidence(nil), d.Evidence...)
	out.History = append([]HistoryEntry(nil), d.History...)
	if d.Checklist != nil {
		out.Checklist = append([]ChecklistItem(nil), d.Checklist...)
	}
	if d.RequiredDocs != nil {
		out.RequiredDocs = make([]RequiredDocument, len(d.RequiredDocs))
		for i, rd := range d.RequiredDocs {
			out.RequiredDocs[i] = rd
			if rd.Link != nil {
				link := *rd.Link
				out.RequiredDocs[i].Link = &link
			}
		}
	}
	if d.Reference != nil {
		ref := *d.Reference
		out.Reference = &ref
	}
	return out
}

// NotificationCode identifies the kind of transient notification an
// operation produced.
type NotificationCode string

const (
	NoteStatusChanged         NotificationCode = "status_changed"
	NoteLicenseMapped         NotificationCode = "license_mapped"
	NoteEvidenceUploaded      NotificationCode = "evidence_uploaded"
	NoteLinkCreated           NotificationCode = "link_created"
	NoteAllRequiredLinked     NotificationCode = "all_required_linked"
	NoteLinkRemoved           NotificationCode = "link_removed"
	NoteReadyToSubmit         NotificationCode = "ready_to_submit"
	NoteNodeChecklistComplete NotificationCode = "node_checklist_complete"
	NoteReferenceUpdated      NotificationCode = "reference_updated"
)

// Notification is the transient success message surfaced to the user after a
// mutating operation.
type Notification struct {
	Code    NotificationCode `json:"code"`
	Message string           `json:"message"`
	Detail  string           `json:"detail,omitempty"`
}
