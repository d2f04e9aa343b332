package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BidStatus is the lifecycle status of a bid.
type BidStatus string

const (
	BidDraft         BidStatus = "DRAFT"
	BidInPreparation BidStatus = "IN_PREPARATION"
	BidReview        BidStatus = "REVIEW"
	BidSubmitted     BidStatus = "SUBMITTED"
	BidAwarded       BidStatus = "AWARDED"
	BidLost          BidStatus = "LOST"
)

func (s BidStatus) Valid() bool {
	switch s {
	case BidDraft, BidInPreparation, BidReview, BidSubmitted, BidAwarded, BidLost:
		return true
	}
	return false
}

// BidCategory is a closed set; filter options derive from this list, not from
// scanning instance data.
type BidCategory string

const (
	CategorySystemIntegration BidCategory = "SI/System Integration"
	CategoryBigDataAI         BidCategory = "Big Data/AI"
	CategoryCloudInfra        BidCategory = "Cloud/Infra"
	CategoryIoTSmartFactory   BidCategory = "IoT/Smart Factory"
	CategorySecurity          BidCategory = "Security"
	CategoryERPGroupware      BidCategory = "ERP/Groupware"
	CategoryDigitalTwin       BidCategory = "Digital Twin"
)

// Categories lists every known bid category in display order.
func Categories() []BidCategory {
	return []BidCategory{
		CategorySystemIntegration,
		CategoryBigDataAI,
		CategoryCloudInfra,
		CategoryIoTSmartFactory,
		CategorySecurity,
		CategoryERPGroupware,
		CategoryDigitalTwin,
	}
}

func (c BidCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// BidSortKey selects the ordering of a bid listing.
type BidSortKey string

const (
	SortByDeadline BidSortKey = "deadline" // ascending days-to-deadline
	SortByProgress BidSortKey = "progress" // descending progress percent
	SortByCreated  BidSortKey = "created"  // newest first
)

func (k BidSortKey) Valid() bool {
	switch k {
	case SortByDeadline, SortByProgress, SortByCreated:
		return true
	}
	return false
}

// Bid is one tender the team is pursuing. DDay is the signed day count to the
// deadline; negative means the deadline has passed.
type Bid struct {
	ID                string      `db:"id" json:"id"`
	Name              string      `db:"name" json:"name"`
	NoticeNo          string      `db:"notice_no" json:"noticeNo"`
	Client            string      `db:"client" json:"client"`
	Status            BidStatus   `db:"status" json:"status"`
	DDay              int         `db:"d_day" json:"dDay"`
	Deadline          time.Time   `db:"deadline" json:"deadline"`
	Progress          int         `db:"progress" json:"progress"`
	ChecklistProgress int         `db:"checklist_progress" json:"checklistProgress"`
	Owner             string      `db:"owner" json:"owner"`
	Category          BidCategory `db:"category" json:"category"`
	EstimatedAmount   string      `db:"estimated_amount" json:"estimatedAmount,omitempty"`
	CreatedAt         time.Time   `db:"created_at" json:"createdAt"`
}

// NewBidID generates an id for a bid registered at runtime.
func NewBidID() string {
	return "BID-" + strings.ToUpper(uuid.NewString()[:8])
}

// BidFilter narrows a bid listing. Zero values mean "all".
type BidFilter struct {
	Search   string
	Status   BidStatus
	Category BidCategory
}

// BidStats are aggregates over the unfiltered bid collection.
type BidStats struct {
	Total         int `json:"total"`
	InPreparation int `json:"inPreparation"`
	Urgent        int `json:"urgent"`
	Submitted     int `json:"submitted"`
}

// FilterBids returns the bids whose name, notice number or client contains the
// search text (case-insensitive) and whose status/category match the filter.
func FilterBids(bids []Bid, f BidFilter) []Bid {
	needle := strings.ToLower(f.Search)
	out := make([]Bid, 0, len(bids))
	for _, b := range bids {
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.Name), needle) &&
			!strings.Contains(strings.ToLower(b.NoticeNo), needle) &&
			!strings.Contains(strings.ToLower(b.Client), needle) {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortBids orders bids in place by the given key. Ties keep their relative
// order.
func SortBids(bids []Bid, key BidSortKey) {
	switch key {
	case SortByDeadline:
		sort.SliceStable(bids, func(i, j int) bool { return bids[i].DDay < bids[j].DDay })
	case SortByProgress:
		sort.SliceStable(bids, func(i, j int) bool { return bids[i].Progress > bids[j].Progress })
	case SortByCreated:
		sort.SliceStable(bids, func(i, j int) bool { return bids[i].CreatedAt.After(bids[j].CreatedAt) })
	}
}

// ComputeStats aggregates over the full, unfiltered collection. Urgent means
// the deadline is within the next seven days and not yet passed.
func ComputeStats(bids []Bid) BidStats {
	var s BidStats
	s.Total = len(bids)
	for _, b := range bids {
		if b.Status == BidInPreparation || b.Status == BidReview {
			s.InPreparation++
		}
		if b.DDay > 0 && b.DDay <= 7 {
			s.Urgent++
		}
		if b.Status == BidSubmitted {
			s.Submitted++
		}
	}
	return s
}
