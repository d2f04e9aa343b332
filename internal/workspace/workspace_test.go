package workspace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bidboard/internal/fixtures"
	"bidboard/internal/ontology"
	"bidboard/internal/workspace"
	"bidboard/models"
)

func newWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	ws := workspace.New(fixtures.WorkspaceSeed("BID-001"))
	ws.SetClock(func() time.Time {
		return time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)
	})
	return ws
}

func treeStatus(t *testing.T, ws *workspace.Workspace, nodeID string) models.NodeStatus {
	t.Helper()
	hit := ontology.Find(ws.Snapshot().Tree, nodeID)
	require.NotNil(t, hit)
	return hit.Status
}

func TestChangeStatusSyncsTreeAndDetail(t *testing.T) {
	ws := newWorkspace(t)

	note, err := ws.ChangeStatus("N0102", models.StatusInProgress, "Roster collection started")
	require.NoError(t, err)
	require.Equal(t, models.NoteStatusChanged, note.Code)
	require.Equal(t, `Status changed to "In progress"`, note.Message)

	require.Equal(t, models.StatusInProgress, treeStatus(t, ws, "N0102"))

	d, ok := ws.Detail("N0102")
	require.True(t, ok)
	require.Equal(t, models.StatusInProgress, d.Status)

	// newest history entry first, attributed to the node owner
	require.Equal(t, "status changed", d.History[0].Action)
	require.Equal(t, models.StatusNotStarted, d.History[0].From)
	require.Equal(t, models.StatusInProgress, d.History[0].To)
	require.Equal(t, "Y. Lee", d.History[0].Who)
	require.Equal(t, "2025-10-15 10:30", d.History[0].At)
	require.Equal(t, "Roster collection started", d.History[0].Detail)
}

func TestChangeStatusUnknownNode(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.ChangeStatus("N9999", models.StatusSatisfied, "")
	require.ErrorIs(t, err, workspace.ErrNodeNotFound)
}

func TestChangeStatusNodeWithoutDetail(t *testing.T) {
	ws := newWorkspace(t)

	// N0202 exists in the tree but has no detail record
	_, err := ws.ChangeStatus("N0202", models.StatusInProgress, "")
	require.NoError(t, err)
	require.Equal(t, models.StatusInProgress, treeStatus(t, ws, "N0202"))

	_, ok := ws.Detail("N0202")
	require.False(t, ok)
}

func TestMapLicenseForcesSatisfied(t *testing.T) {
	ws := newWorkspace(t)

	note, err := ws.MapLicense("N0101", "L004", workspace.SourceConsortium)
	require.NoError(t, err)
	require.Equal(t, models.NoteLicenseMapped, note.Code)
	require.Contains(t, note.Detail, "Digital Innovation")

	// mapping satisfies the node even though required slots are still open
	require.Equal(t, models.StatusSatisfied, treeStatus(t, ws, "N0101"))
	d, _ := ws.Detail("N0101")
	require.Equal(t, models.StatusSatisfied, d.Status)
	require.Equal(t, "status changed", d.History[0].Action)
}

func TestMapLicenseUnknownIDChangesNothing(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.MapLicense("N0101", "L999", workspace.SourceOwned)
	require.ErrorIs(t, err, workspace.ErrLicenseNotFound)

	require.Equal(t, models.StatusRisk, treeStatus(t, ws, "N0101"))
	d, _ := ws.Detail("N0101")
	require.Equal(t, "H001", d.History[0].ID)
}

func TestMapLicenseOwnedPoolExcludesConsortium(t *testing.T) {
	ws := newWorkspace(t)

	// L003 belongs to a consortium member, not the owned pool
	_, err := ws.MapLicense("N0101", "L003", workspace.SourceOwned)
	require.ErrorIs(t, err, workspace.ErrLicenseNotFound)

	_, err = ws.MapLicense("N0101", "L003", workspace.SourceConsortium)
	require.NoError(t, err)
}

func TestUploadEvidenceAppends(t *testing.T) {
	ws := newWorkspace(t)

	files := []workspace.FileMeta{
		{Name: "roster.xlsx", Size: 1024},
		{Name: "financials.pdf", Size: 2048},
	}
	note, err := ws.UploadEvidence("N0102", files, "Notice art. 4")
	require.NoError(t, err)
	require.Equal(t, models.NoteEvidenceUploaded, note.Code)
	require.Equal(t, "2 file(s) uploaded", note.Message)

	d, _ := ws.Detail("N0102")
	require.Len(t, d.Evidence, 2)
	require.Equal(t, "roster.xlsx", d.Evidence[0].Name)
	require.Equal(t, "v1", d.Evidence[0].Version)
	require.Equal(t, "Y. Lee", d.Evidence[0].By)
	require.Equal(t, "Notice art. 4", d.Evidence[1].Reference)
	// status is untouched by evidence uploads
	require.Equal(t, models.StatusNotStarted, d.Status)
}

func TestLinkDocumentPlainLink(t *testing.T) {
	ws := newWorkspace(t)

	// N0101 has RD001 linked, RD002 and RD003 open
	note, err := ws.LinkDocument("N0101", "RD002", "CD002")
	require.NoError(t, err)
	require.Equal(t, models.NoteLinkCreated, note.Code)
	require.Equal(t, "Corporate_Seal_Certificate_2025", note.Detail)

	d, _ := ws.Detail("N0101")
	require.NotNil(t, d.RequiredDocs[1].Link)
	require.Equal(t, "CD002", d.RequiredDocs[1].Link.ContentDocumentID)
	require.Equal(t, "N0101", d.RequiredDocs[1].Link.LinkedEntityID)
	// one slot still open, status unchanged
	require.Equal(t, models.StatusRisk, d.Status)
}

func TestLinkDocumentCompletionForcesSatisfied(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.LinkDocument("N0101", "RD002", "CD002")
	require.NoError(t, err)

	note, err := ws.LinkDocument("N0101", "RD003", "CD003")
	require.NoError(t, err)
	require.Equal(t, models.NoteAllRequiredLinked, note.Code)

	require.Equal(t, models.StatusSatisfied, treeStatus(t, ws, "N0101"))
	d, _ := ws.Detail("N0101")
	require.Equal(t, models.StatusSatisfied, d.Status)
	require.Equal(t, "status changed", d.History[0].Action)
}

func TestLinkDocumentUnknownTargets(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.LinkDocument("N9999", "RD002", "CD002")
	require.ErrorIs(t, err, workspace.ErrNodeNotFound)

	_, err = ws.LinkDocument("N0101", "RD999", "CD002")
	require.ErrorIs(t, err, workspace.ErrSlotNotFound)

	_, err = ws.LinkDocument("N0101", "RD002", "CD999")
	require.ErrorIs(t, err, workspace.ErrDocumentNotFound)
}

func TestUnlinkDocumentDropsSatisfiedToInProgress(t *testing.T) {
	ws := newWorkspace(t)

	// N0103 is SATISFIED with every required slot linked
	note, err := ws.UnlinkDocument("N0103", "RD201")
	require.NoError(t, err)
	require.Equal(t, models.NoteLinkRemoved, note.Code)
	require.Equal(t, "Consortium_Agreement_Template", note.Detail)

	require.Equal(t, models.StatusInProgress, treeStatus(t, ws, "N0103"))
	d, _ := ws.Detail("N0103")
	require.Nil(t, d.RequiredDocs[0].Link)

	_, err = ws.UnlinkDocument("N0103", "RD201")
	require.ErrorIs(t, err, workspace.ErrLinkNotFound)
}

func TestUnlinkDocumentLeavesOtherStatusesAlone(t *testing.T) {
	ws := newWorkspace(t)

	// N0101 is RISK; removing its one link must not touch the status
	_, err := ws.UnlinkDocument("N0101", "RD001")
	require.NoError(t, err)
	require.Equal(t, models.StatusRisk, treeStatus(t, ws, "N0101"))
}

func TestToggleGlobalItemReadyToSubmitFiresOnce(t *testing.T) {
	ws := newWorkspace(t)

	// C003 and C006 are pre-checked; complete the remaining ten
	remaining := []string{"C001", "C002", "C004", "C005", "C007", "C008", "C009", "C010", "C011", "C012"}
	for _, id := range remaining[:len(remaining)-1] {
		note, err := ws.ToggleGlobalItem(id, true)
		require.NoError(t, err)
		require.Nil(t, note)
	}

	note, err := ws.ToggleGlobalItem(remaining[len(remaining)-1], true)
	require.NoError(t, err)
	require.NotNil(t, note)
	require.Equal(t, models.NoteReadyToSubmit, note.Code)

	// re-toggling on an already complete checklist stays silent
	note, err = ws.ToggleGlobalItem("C001", true)
	require.NoError(t, err)
	require.Nil(t, note)

	view := ws.Snapshot()
	require.Equal(t, 100, view.ChecklistCompletion)
	require.Equal(t, 0, view.CriticalIncompleteCount)
}

func TestToggleGlobalItemStampsAndClears(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.ToggleGlobalItem("C001", true)
	require.NoError(t, err)

	view := ws.Snapshot()
	require.True(t, view.Checklist[0].Checked)
	require.Equal(t, models.DefaultActor, view.Checklist[0].CheckedBy)
	require.Equal(t, "2025-10-15 10:30", view.Checklist[0].CheckedAt)

	_, err = ws.ToggleGlobalItem("C001", false)
	require.NoError(t, err)

	view = ws.Snapshot()
	require.False(t, view.Checklist[0].Checked)
	require.Empty(t, view.Checklist[0].CheckedBy)
	require.Empty(t, view.Checklist[0].CheckedAt)
}

func TestToggleGlobalItemUnknownID(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.ToggleGlobalItem("C999", true)
	require.ErrorIs(t, err, workspace.ErrItemNotFound)
}

func TestToggleNodeItemCompletionForcesSatisfied(t *testing.T) {
	ws := newWorkspace(t)

	note, err := ws.ToggleNodeItem("N0101", "NC101", true)
	require.NoError(t, err)
	require.Nil(t, note)

	note, err = ws.ToggleNodeItem("N0101", "NC102", true)
	require.NoError(t, err)
	require.NotNil(t, note)
	require.Equal(t, models.NoteNodeChecklistComplete, note.Code)

	require.Equal(t, models.StatusSatisfied, treeStatus(t, ws, "N0101"))
	d, _ := ws.Detail("N0101")
	require.Equal(t, "K. Hong", d.Checklist[0].CheckedBy)
}

func TestToggleNodeItemUncheckDoesNotRevertStatus(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.ToggleNodeItem("N0101", "NC101", true)
	require.NoError(t, err)
	_, err = ws.ToggleNodeItem("N0101", "NC102", true)
	require.NoError(t, err)

	// completion forced SATISFIED; unchecking afterwards leaves it standing
	note, err := ws.ToggleNodeItem("N0101", "NC101", false)
	require.NoError(t, err)
	require.Nil(t, note)
	require.Equal(t, models.StatusSatisfied, treeStatus(t, ws, "N0101"))
}

func TestToggleNodeItemErrors(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.ToggleNodeItem("N9999", "NC101", true)
	require.ErrorIs(t, err, workspace.ErrNodeNotFound)

	// N0102 carries no checklist at all
	_, err = ws.ToggleNodeItem("N0102", "NC101", true)
	require.ErrorIs(t, err, workspace.ErrNoChecklist)

	_, err = ws.ToggleNodeItem("N0101", "NC999", true)
	require.ErrorIs(t, err, workspace.ErrItemNotFound)
}

func TestEditReferenceReplacesWholesale(t *testing.T) {
	ws := newWorkspace(t)

	note, err := ws.EditReference("N0101", models.ReferenceInfo{
		Page:    "7",
		Article: "Art. 6",
		Content: "<p>Corrected excerpt</p>",
	})
	require.NoError(t, err)
	require.Equal(t, models.NoteReferenceUpdated, note.Code)

	d, _ := ws.Detail("N0101")
	require.Equal(t, "7", d.Reference.Page)
	require.Equal(t, "<p>Corrected excerpt</p>", d.Reference.Content)
	require.Equal(t, "manual entry", d.Reference.ExtractedBy)
	require.Equal(t, "2025-10-15 10:30", d.Reference.ExtractedAt)
}

func TestFilterTree(t *testing.T) {
	ws := newWorkspace(t)

	out := ws.FilterTree(ontology.Predicate{Search: "proposal"})
	require.Len(t, out, 1)
	require.Equal(t, "N0002", out[0].ID)
	require.Len(t, out[0].Children, 2)
	require.Equal(t, "N0201", out[0].Children[0].ID)
	require.Equal(t, "N0202", out[0].Children[1].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	ws := newWorkspace(t)

	view := ws.Snapshot()
	view.Tree[0].Status = models.StatusSatisfied
	view.Checklist[0].Checked = true
	d := view.Details["N0101"]
	d.Evidence = append(d.Evidence, models.Evidence{ID: "EX"})

	fresh := ws.Snapshot()
	require.Equal(t, models.StatusInProgress, fresh.Tree[0].Status)
	require.False(t, fresh.Checklist[0].Checked)
	require.Len(t, fresh.Details["N0101"].Evidence, 2)
}

func TestWorkspacesDoNotShareState(t *testing.T) {
	a := workspace.New(fixtures.WorkspaceSeed("BID-001"))
	b := workspace.New(fixtures.WorkspaceSeed("BID-002"))

	_, err := a.ChangeStatus("N0102", models.StatusSatisfied, "")
	require.NoError(t, err)

	hit := ontology.Find(b.Snapshot().Tree, "N0102")
	require.Equal(t, models.StatusNotStarted, hit.Status)
}
