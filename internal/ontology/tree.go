// Package ontology holds the pure operations over the requirement tree.
// Every function returns a new tree and never mutates its input.
package ontology

import (
	"strings"

	"bidboard/models"
)

// Predicate narrows a tree. Zero-value fields match everything: empty Search
// matches every label, nil Status matches every status, nil Required matches
// both flags.
type Predicate struct {
	Search   string
	Status   *models.NodeStatus
	Required *bool
}

func (p Predicate) matches(n models.TreeNode) bool {
	if p.Search != "" && !strings.Contains(strings.ToLower(n.Label), strings.ToLower(p.Search)) {
		return false
	}
	if p.Status != nil && n.Status != *p.Status {
		return false
	}
	if p.Required != nil && n.Required != *p.Required {
		return false
	}
	return true
}

// Filter returns a new tree containing the nodes that match the predicate.
// A matching node is kept with its children filtered (possibly to none); a
// non-matching node survives only while it still has matching descendants.
func Filter(nodes []models.TreeNode, p Predicate) []models.TreeNode {
	var out []models.TreeNode
	for _, n := range nodes {
		kept := n
		kept.Children = Filter(n.Children, p)
		if p.matches(n) || len(kept.Children) > 0 {
			out = append(out, kept)
		}
	}
	return out
}

// Find locates a node by id, depth-first. Returns nil if absent.
func Find(nodes []models.TreeNode, id string) *models.TreeNode {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
		if hit := Find(nodes[i].Children, id); hit != nil {
			return hit
		}
	}
	return nil
}

// UpdateStatus returns a new tree in which exactly the node with the given id
// has its status replaced. Structure and every other field are unchanged.
// found is false when the id does not occur; the input tree is returned
// untouched in that case.
func UpdateStatus(nodes []models.TreeNode, id string, status models.NodeStatus) (out []models.TreeNode, found bool) {
	if Find(nodes, id) == nil {
		return nodes, false
	}
	return updateStatus(nodes, id, status), true
}

func updateStatus(nodes []models.TreeNode, id string, status models.NodeStatus) []models.TreeNode {
	out := make([]models.TreeNode, len(nodes))
	for i, n := range nodes {
		if n.ID == id {
			n.Status = status
		} else if n.Children != nil {
			n.Children = updateStatus(n.Children, id, status)
		}
		out[i] = n
	}
	return out
}
