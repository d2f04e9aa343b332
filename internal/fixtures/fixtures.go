// Package fixtures holds the static analysis result the service is seeded
// with: the bid registry, the requirement ontology produced for the flagship
// bid, the submission checklist, the license pools and the content library.
package fixtures

import (
	"time"

	"bidboard/internal/workspace"
	"bidboard/models"
)

func mustTime(layout, v string) time.Time {
	t, err := time.Parse(layout, v)
	if err != nil {
		panic(err)
	}
	return t
}

func day(v string) time.Time      { return mustTime("2006-01-02", v) }
func deadline(v string) time.Time { return mustTime(models.StampLayout, v) }

// Bids returns the seed bid registry.
func Bids() []models.Bid {
	return []models.Bid{
		{
			ID: "BID-001", Name: "Smart City Integration Platform", NoticeNo: "2025-001",
			Client: "Seoul Metropolitan Government", Status: models.BidInPreparation,
			DDay: 3, Deadline: deadline("2025-10-18 17:00"), Progress: 62, ChecklistProgress: 17,
			Owner: "J. Kim", Category: models.CategorySystemIntegration,
			EstimatedAmount: "KRW 5.0B", CreatedAt: day("2025-10-01"),
		},
		{
			ID: "BID-002", Name: "Big Data Analytics Platform", NoticeNo: "2025-002",
			Client: "Gyeonggi Provincial Office", Status: models.BidReview,
			DDay: 7, Deadline: deadline("2025-10-22 15:00"), Progress: 85, ChecklistProgress: 75,
			Owner: "H. Lee", Category: models.CategoryBigDataAI,
			EstimatedAmount: "KRW 3.0B", CreatedAt: day("2025-09-28"),
		},
		{
			ID: "BID-003", Name: "Cloud Infrastructure Modernization", NoticeNo: "2025-003",
			Client: "Korea Electric Power Corporation", Status: models.BidDraft,
			DDay: 15, Deadline: deadline("2025-10-30 18:00"), Progress: 25, ChecklistProgress: 0,
			Owner: "S. Park", Category: models.CategoryCloudInfra,
			EstimatedAmount: "KRW 8.0B", CreatedAt: day("2025-10-10"),
		},
		{
			ID: "BID-004", Name: "Electronic Document Management Upgrade", NoticeNo: "2025-004",
			Client: "Ministry of Land and Transport", Status: models.BidSubmitted,
			DDay: -5, Deadline: deadline("2025-10-10 17:00"), Progress: 100, ChecklistProgress: 100,
			Owner: "M. Choi", Category: models.CategorySystemIntegration,
			EstimatedAmount: "KRW 2.0B", CreatedAt: day("2025-09-15"),
		},
		{
			ID: "BID-005", Name: "IoT Smart Factory Platform", NoticeNo: "2025-005",
			Client: "Ministry of SMEs and Startups", Status: models.BidInPreparation,
			DDay: 12, Deadline: deadline("2025-10-27 16:00"), Progress: 45, ChecklistProgress: 33,
			Owner: "D. Jung", Category: models.CategoryIoTSmartFactory,
			EstimatedAmount: "KRW 4.0B", CreatedAt: day("2025-10-05"),
		},
		{
			ID: "BID-006", Name: "Security Operations Center Build-out", NoticeNo: "2024-089",
			Client: "Financial Supervisory Service", Status: models.BidAwarded,
			DDay: -30, Deadline: deadline("2025-09-15 17:00"), Progress: 100, ChecklistProgress: 100,
			Owner: "J. Kim", Category: models.CategorySecurity,
			EstimatedAmount: "KRW 3.5B", CreatedAt: day("2025-08-01"),
		},
		{
			ID: "BID-007", Name: "Next-Generation ERP System", NoticeNo: "2024-095",
			Client: "POSCO", Status: models.BidLost,
			DDay: -20, Deadline: deadline("2025-09-25 15:00"), Progress: 100, ChecklistProgress: 100,
			Owner: "H. Lee", Category: models.CategoryERPGroupware,
			EstimatedAmount: "KRW 12.0B", CreatedAt: day("2025-08-10"),
		},
		{
			ID: "BID-008", Name: "Digital Twin Platform", NoticeNo: "2025-006",
			Client: "Incheon Metropolitan City", Status: models.BidInPreparation,
			DDay: 20, Deadline: deadline("2025-11-04 17:00"), Progress: 35, ChecklistProgress: 25,
			Owner: "S. Park", Category: models.CategoryDigitalTwin,
			EstimatedAmount: "KRW 6.0B", CreatedAt: day("2025-10-12"),
		},
	}
}

// Tree returns the requirement ontology extracted from the tender notice.
func Tree() []models.TreeNode {
	return []models.TreeNode{
		{
			ID: "N0001", Label: "Bid eligibility", Status: models.StatusInProgress, Required: true,
			Children: []models.TreeNode{
				{ID: "N0101", Label: "Base qualification (industry licenses)", Status: models.StatusRisk, Required: true},
				{ID: "N0102", Label: "Track record / staffing / equipment / financials", Status: models.StatusNotStarted, Required: true},
				{ID: "N0103", Label: "Consortium composition limits", Status: models.StatusSatisfied, Required: true},
			},
		},
		{
			ID: "N0002", Label: "Submission documents", Status: models.StatusBlocked, Required: true,
			Children: []models.TreeNode{
				{ID: "N0201", Label: "Technical proposal", Status: models.StatusInProgress, Required: true},
				{ID: "N0202", Label: "Price proposal", Status: models.StatusNotStarted, Required: true},
				{ID: "N0203", Label: "Company profile", Status: models.StatusSatisfied, Required: false},
			},
		},
		{
			ID: "N0003", Label: "Evaluation and award", Status: models.StatusNotStarted, Required: true,
			Children: []models.TreeNode{
				{ID: "N0301", Label: "Technical evaluation items", Status: models.StatusNotStarted, Required: true},
				{ID: "N0302", Label: "Price evaluation criteria", Status: models.StatusNotStarted, Required: true},
			},
		},
		{
			ID: "N0004", Label: "Contract and delivery", Status: models.StatusNotStarted, Required: false,
			Children: []models.TreeNode{
				{ID: "N0401", Label: "Contract terms", Status: models.StatusNotStarted, Required: false},
				{ID: "N0402", Label: "Performance bond", Status: models.StatusNotStarted, Required: false},
			},
		},
	}
}

// GlobalChecklist returns the bid-wide final submission checklist.
func GlobalChecklist() []models.ChecklistItem {
	return []models.ChecklistItem{
		{ID: "C001", Label: "Confirm closing time", Description: "Bid closes 2025-10-18 17:00 (KST)", Category: models.CheckDeadline},
		{ID: "C002", Label: "Verify timestamps", Description: "Every document's last-modified time must precede the deadline", Category: models.CheckDeadline},
		{ID: "C003", Label: "Validate uploaded files", Description: "No corruption, within the 50MB limit, virus scan complete", Checked: true, CheckedBy: "K. Tech", CheckedAt: "2025-10-14 16:00", Category: models.CheckUpload},
		{ID: "C004", Label: "Signatures and seals", Description: "CEO signature and corporate seal applied", Category: models.CheckSignature},
		{ID: "C005", Label: "Document passwords", Description: "Passwords set where required and delivered separately", Category: models.CheckSignature},
		{ID: "C006", Label: "File naming convention", Description: "Names follow the notice format (company_doctype_version)", Checked: true, CheckedBy: "Y. Lee", CheckedAt: "2025-10-13 14:30", Category: models.CheckFilename},
		{ID: "C007", Label: "Numeric amounts consistent", Description: "Every numeric amount agrees across quote and proposal", Category: models.CheckAmount},
		{ID: "C008", Label: "Spelled-out amounts consistent", Description: "Spelled-out amounts match the numeric figures", Category: models.CheckAmount},
		{ID: "C009", Label: "VAT treatment stated", Description: "VAT included/excluded is stated explicitly", Category: models.CheckAmount},
		{ID: "C010", Label: "Supporting document validity", Description: "Licenses and certificates are within their validity period", Category: models.CheckEvidence},
		{ID: "C011", Label: "Originals vs copies", Description: "Originals submitted where required, copies where allowed", Category: models.CheckEvidence},
		{ID: "C012", Label: "Cross-check submission list", Description: "Submitted files match the notice's document list", Category: models.CheckGeneral},
	}
}

// OwnedLicenses returns the bidder's own license pool.
func OwnedLicenses() []models.License {
	return []models.License{
		{ID: "L001", Name: "Information & Communication Construction License", ExpiryDate: "2026-12-31", Issuer: "Ministry of Science and ICT", Owner: "Sunjin Engineering"},
		{ID: "L002", Name: "Software Business Certificate", ExpiryDate: "2027-03-15", Issuer: "Korea Software Industry Association", Owner: "Sunjin Engineering"},
	}
}

// ConsortiumMembers returns the co-bidding entities and their license pools.
func ConsortiumMembers() []models.ConsortiumMember {
	return []models.ConsortiumMember{
		{ID: "C001", Name: "Sunjin Engineering", Share: 60, Role: "prime", Licenses: OwnedLicenses()},
		{ID: "C002", Name: "TechSolution", Share: 30, Role: "member", Licenses: []models.License{
			{ID: "L003", Name: "Electrical Construction License", ExpiryDate: "2026-08-20", Issuer: "Ministry of Trade, Industry and Energy", Owner: "TechSolution"},
		}},
		{ID: "C003", Name: "Digital Innovation", Share: 10, Role: "member", Licenses: []models.License{
			{ID: "L004", Name: "Information Security Management Certification", ExpiryDate: "2026-11-30", Issuer: "Korea Internet & Security Agency", Owner: "Digital Innovation"},
		}},
	}
}

// ContentLibrary returns the shared document library.
func ContentLibrary() []models.ContentDocument {
	return []models.ContentDocument{
		{ID: "CD001", Title: "ICT_Construction_License_2024", FileExtension: "pdf", FileType: "PDF", ContentSize: 2456789, CreatedBy: "K. Hong", CreatedDate: "2024-01-15 10:30", LastModifiedDate: "2024-01-15 10:30", Description: "License renewed in 2024"},
		{ID: "CD002", Title: "Corporate_Seal_Certificate_2025", FileExtension: "pdf", FileType: "PDF", ContentSize: 987654, CreatedBy: "J. Kim", CreatedDate: "2025-10-01 09:15", LastModifiedDate: "2025-10-01 09:15", Description: "Issued October 2025"},
		{ID: "CD003", Title: "Business_Registration", FileExtension: "pdf", FileType: "PDF", ContentSize: 1234567, CreatedBy: "Y. Lee", CreatedDate: "2024-03-20 14:22", LastModifiedDate: "2024-03-20 14:22"},
		{ID: "CD004", Title: "Similar_Project_References_2023", FileExtension: "pdf", FileType: "PDF", ContentSize: 3456789, CreatedBy: "C. Park", CreatedDate: "2023-12-10 16:45", LastModifiedDate: "2024-01-05 11:20", Description: "Major project references, 2023"},
		{ID: "CD005", Title: "Technical_Staff_Roster_2025", FileExtension: "xlsx", FileType: "EXCEL", ContentSize: 456789, CreatedBy: "D. Jung", CreatedDate: "2025-01-10 08:30", LastModifiedDate: "2025-09-15 13:45", Description: "As of September 2025"},
		{ID: "CD006", Title: "Financial_Statements_2022-2024", FileExtension: "pdf", FileType: "PDF", ContentSize: 5678901, CreatedBy: "M. Choi", CreatedDate: "2024-08-20 10:00", LastModifiedDate: "2024-08-20 10:00", Description: "Three-year financial statements"},
		{ID: "CD007", Title: "Equipment_Inventory", FileExtension: "xlsx", FileType: "EXCEL", ContentSize: 234567, CreatedBy: "K. Hong", CreatedDate: "2024-05-15 15:30", LastModifiedDate: "2025-08-01 09:20"},
		{ID: "CD008", Title: "Consortium_Agreement_Template", FileExtension: "docx", FileType: "WORD", ContentSize: 876543, CreatedBy: "J. Kim", CreatedDate: "2024-02-10 11:00", LastModifiedDate: "2025-06-20 14:15"},
		{ID: "CD009", Title: "Equity_Share_Confirmation_Form", FileExtension: "docx", FileType: "WORD", ContentSize: 345678, CreatedBy: "C. Park", CreatedDate: "2024-02-10 11:15", LastModifiedDate: "2024-02-10 11:15"},
		{ID: "CD010", Title: "Technical_Proposal_Standard_Form", FileExtension: "docx", FileType: "WORD", ContentSize: 1567890, CreatedBy: "K. Tech", CreatedDate: "2024-07-01 09:00", LastModifiedDate: "2025-09-10 16:30", Description: "Company standard proposal template"},
		{ID: "CD011", Title: "Business_Understanding_Guide", FileExtension: "pdf", FileType: "PDF", ContentSize: 2345678, CreatedBy: "K. Tech", CreatedDate: "2024-06-15 13:20", LastModifiedDate: "2025-08-25 10:40"},
		{ID: "CD012", Title: "Company_Profile_2025", FileExtension: "pdf", FileType: "PDF", ContentSize: 8901234, CreatedBy: "Y. Lee", CreatedDate: "2025-01-05 10:00", LastModifiedDate: "2025-09-01 14:00", Description: "Latest company profile"},
		{ID: "CD013", Title: "ISO9001_Certificate", FileExtension: "pdf", FileType: "PDF", ContentSize: 1890123, CreatedBy: "M. Choi", CreatedDate: "2024-11-20 09:30", LastModifiedDate: "2024-11-20 09:30", Description: "Quality management certification"},
		{ID: "CD014", Title: "ISMS_Certificate", FileExtension: "pdf", FileType: "PDF", ContentSize: 2123456, CreatedBy: "D. Jung", CreatedDate: "2024-09-10 11:00", LastModifiedDate: "2024-09-10 11:00"},
	}
}

const aiExtraction = "AI ontology analysis"
const nodeCreatedAction = "node created"

// NodeDetails returns the extended records for the ontology. Two leaf nodes
// (N0202, N0203) intentionally have none: the analysis produced no extended
// record for them.
func NodeDetails() map[string]models.NodeDetail {
	library := ContentLibrary()
	return map[string]models.NodeDetail{
		"N0101": {
			ID: "N0101", Label: "Base qualification (industry licenses)", Status: models.StatusRisk,
			Required: true, LicenseType: "Information & Communication", Weight: 30,
			Owner: "K. Hong", Reviewer: "J. Kim", RelatedNodes: 3,
			Reference: &models.ReferenceInfo{
				Page: "3-4", Article: "Art. 3 (1)",
				Content: "<p><strong>Article 3 (Bid eligibility requirements)</strong></p>" +
					"<p>(1) A bidder shall satisfy all of the following:</p>" +
					"<ul><li>1. Hold an <strong>Information &amp; Communication Construction</strong> license</li>" +
					"<li>2. The license must remain valid for <u>at least three months</u> past the closing date</li>" +
					"<li>3. Comparable work in the same industry within the last <em>five years</em></li></ul>" +
					"<p>For consortiums the prime contractor must satisfy the above.</p>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{
				{ID: "E001", Name: "eligibility_basis.pdf", Version: "v2", By: "K. Hong", At: "2025-10-12 09:22", Reference: "Notice art. 3 (1)"},
				{ID: "E002", Name: "license_copy.pdf", Version: "v1", By: "J. Kim", At: "2025-10-11 14:30", Reference: "Supporting material"},
			},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD001", Name: "ICT construction license", Description: "Copy within its validity period", Required: true,
					Link: &models.ContentDocumentLink{ID: "CDL001", ContentDocumentID: "CD001", LinkedEntityID: "N0101", ContentDocument: library[0], LinkedBy: "K. Hong", LinkedAt: "2025-10-12 09:22"}},
				{ID: "RD002", Name: "Corporate seal certificate", Description: "Issued within the last three months", Required: true},
				{ID: "RD003", Name: "Business registration", Description: "Copy acceptable", Required: true},
			},
			Checklist: []models.ChecklistItem{
				{ID: "NC101", Label: "License validity covers the deadline plus three months", Category: models.CheckDeadline},
				{ID: "NC102", Label: "License copy notarized", Category: models.CheckSignature},
			},
			History: []models.HistoryEntry{
				{ID: "H001", At: "2025-10-12 09:22", Who: "K. Hong", Action: "status changed", From: models.StatusNotStarted, To: models.StatusRisk, Detail: "License expiry is close to the bid deadline"},
				{ID: "H002", At: "2025-10-10 16:00", Who: "J. Kim", Action: nodeCreatedAction, Detail: "Generated by ontology analysis"},
			},
		},
		"N0102": {
			ID: "N0102", Label: "Track record / staffing / equipment / financials", Status: models.StatusNotStarted,
			Required: true, Weight: 40, Owner: "Y. Lee", Reviewer: "J. Kim", RelatedNodes: 5,
			Reference: &models.ReferenceInfo{
				Page: "4-5", Article: "Art. 4",
				Content: "<p><strong>Article 4 (Technical capability and financial standing)</strong></p>" +
					"<ol><li><strong>References:</strong> at least <em>two</em> comparable projects in the last five years</li>" +
					"<li><strong>Staffing:</strong> two expert-grade, five senior-grade and ten mid-grade engineers</li>" +
					"<li><strong>Equipment:</strong> the test and measurement equipment the project needs</li>" +
					"<li><strong>Financials:</strong> three-year average revenue of <u>at least 50%</u> of the estimated price</li></ol>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD101", Name: "Comparable project references", Description: "At least two within five years", Required: true},
				{ID: "RD102", Name: "Technical staff roster", Description: "2 expert, 5 senior, 10 mid grade", Required: true},
				{ID: "RD103", Name: "Financial statements", Description: "Last three years", Required: true},
				{ID: "RD104", Name: "Equipment inventory", Description: "Test and measurement equipment", Required: false},
			},
			History: []models.HistoryEntry{
				{ID: "H003", At: "2025-10-10 16:00", Who: "J. Kim", Action: nodeCreatedAction, Detail: "Generated by ontology analysis"},
			},
		},
		"N0103": {
			ID: "N0103", Label: "Consortium composition limits", Status: models.StatusSatisfied,
			Required: true, Weight: 20, Owner: "C. Park", Reviewer: "J. Kim", RelatedNodes: 2,
			Reference: &models.ReferenceInfo{
				Page: "5", Article: "Art. 5",
				Content: "<p><strong>Article 5 (Consortium composition limits)</strong></p>" +
					"<ol><li>At most <strong>three member companies</strong></li>" +
					"<li>The prime contractor holds <em>at least 40%</em> equity</li>" +
					"<li>Member equity shares sum to 100%</li>" +
					"<li>Membership changes after the notice are <u>not allowed</u></li></ol>" +
					"<p>The consortium agreement must accompany the bid.</p>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{
				{ID: "E003", Name: "consortium_agreement.pdf", Version: "v3", By: "C. Park", At: "2025-10-13 11:00", Reference: "Attachment 1"},
			},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD201", Name: "Consortium agreement", Description: "Sealed by every member", Required: true,
					Link: &models.ContentDocumentLink{ID: "CDL201", ContentDocumentID: "CD008", LinkedEntityID: "N0103", ContentDocument: library[7], LinkedBy: "C. Park", LinkedAt: "2025-10-13 11:00"}},
				{ID: "RD202", Name: "Equity share confirmation", Description: "Prime holds 40% or more", Required: true,
					Link: &models.ContentDocumentLink{ID: "CDL202", ContentDocumentID: "CD009", LinkedEntityID: "N0103", ContentDocument: library[8], LinkedBy: "C. Park", LinkedAt: "2025-10-13 10:45"}},
			},
			History: []models.HistoryEntry{
				{ID: "H004", At: "2025-10-13 11:05", Who: "C. Park", Action: "status changed", From: models.StatusInProgress, To: models.StatusSatisfied, Detail: "Consortium agreement finalized"},
				{ID: "H005", At: "2025-10-12 10:00", Who: "C. Park", Action: "status changed", From: models.StatusNotStarted, To: models.StatusInProgress},
			},
		},
		"N0201": {
			ID: "N0201", Label: "Technical proposal", Status: models.StatusInProgress,
			Required: true, Weight: 50, Owner: "K. Tech", Reviewer: "J. Kim", RelatedNodes: 8,
			Reference: &models.ReferenceInfo{
				Page: "8-12", Article: "Art. 8 (2)",
				Content: "<p><strong>Article 8 (Submission documents)</strong></p>" +
					"<p>(2) The technical proposal consists of:</p>" +
					"<ul><li><strong>Business understanding</strong> - project goals and scope, 10 pages</li>" +
					"<li><strong>Technical approach</strong> - architecture, stack, implementation, <em>30 pages</em></li>" +
					"<li><strong>Execution plan</strong> - schedule, staffing, WBS, 15 pages</li></ul>" +
					"<p><strong>The total may not exceed 100 pages.</strong></p>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{
				{ID: "E004", Name: "technical_proposal_draft.docx", Version: "v1", By: "K. Tech", At: "2025-10-14 15:30"},
			},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD301", Name: "Business understanding", Description: "10 pages max", Required: true,
					Link: &models.ContentDocumentLink{ID: "CDL301", ContentDocumentID: "CD011", LinkedEntityID: "N0201", ContentDocument: library[10], LinkedBy: "K. Tech", LinkedAt: "2025-10-14 15:30"}},
				{ID: "RD302", Name: "Technical approach", Description: "30 pages max (architecture, stack)", Required: true},
				{ID: "RD303", Name: "Execution plan", Description: "15 pages max (schedule, staffing)", Required: true},
			},
			Checklist: []models.ChecklistItem{
				{ID: "NC301", Label: "Total page limit respected", Description: "100 pages across all sections", Category: models.CheckGeneral},
				{ID: "NC302", Label: "All mandated sections present", Checked: true, CheckedBy: "K. Tech", CheckedAt: "2025-10-14 15:30", Category: models.CheckGeneral},
				{ID: "NC303", Label: "Table of contents follows the notice order", Category: models.CheckGeneral},
			},
			History: []models.HistoryEntry{
				{ID: "H006", At: "2025-10-14 15:35", Who: "K. Tech", Action: "status changed", From: models.StatusNotStarted, To: models.StatusInProgress, Detail: "Draft started"},
			},
		},
		"N0301": {
			ID: "N0301", Label: "Technical evaluation items", Status: models.StatusNotStarted,
			Required: true, Weight: 60, Owner: "K. Tech", Reviewer: "J. Kim", RelatedNodes: 4,
			Reference: &models.ReferenceInfo{
				Page: "15-18", Article: "Art. 10",
				Content: "<p><strong>Article 10 (Technical evaluation criteria)</strong></p>" +
					"<p>Proposals are scored out of 100:</p>" +
					"<ul><li><strong>Business understanding</strong> - 20 points</li>" +
					"<li><strong>Technical merit</strong> - <em>40 points</em> (originality, feasibility, scalability)</li>" +
					"<li><strong>Execution capability</strong> - 25 points</li>" +
					"<li><strong>Maintenance plan</strong> - 15 points</li></ul>" +
					"<p><strong>Below 70 points the bid is <u>void</u>.</strong></p>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD310", Name: "Per-criterion proposal sections", Description: "Detail for every evaluation item", Required: true},
				{ID: "RD311", Name: "Technical supporting material", Description: "Patents, certifications", Required: false},
			},
			History: []models.HistoryEntry{
				{ID: "H310", At: "2025-10-10 16:00", Who: "J. Kim", Action: nodeCreatedAction, Detail: "Generated by ontology analysis"},
			},
		},
		"N0302": {
			ID: "N0302", Label: "Price evaluation criteria", Status: models.StatusNotStarted,
			Required: true, Weight: 40, Owner: "M. Choi", Reviewer: "J. Kim", RelatedNodes: 2,
			Reference: &models.ReferenceInfo{
				Page: "19-20", Article: "Art. 11",
				Content: "<p><strong>Article 11 (Price evaluation)</strong></p>" +
					"<p>(1) Price score = (estimated - bid) / estimated x 100 x 40 points.</p>" +
					"<ul><li>At or below <em>95%</em> of the estimate: full marks</li>" +
					"<li>95% to 98%: prorated</li><li>Above 98%: zero</li></ul>" +
					"<p>(3) Combined award: technical 60 + price 40; the <strong>highest total wins</strong>.</p>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD320", Name: "Price proposal", Description: "Itemized quotation", Required: true},
				{ID: "RD321", Name: "Cost calculation sheet", Description: "Basis for the cost estimate", Required: true},
			},
			History: []models.HistoryEntry{
				{ID: "H320", At: "2025-10-10 16:00", Who: "J. Kim", Action: nodeCreatedAction, Detail: "Generated by ontology analysis"},
			},
		},
		"N0401": {
			ID: "N0401", Label: "Contract terms", Status: models.StatusNotStarted,
			Required: false, Weight: 15, Owner: "D. Jung", Reviewer: "J. Kim", RelatedNodes: 3,
			Reference: &models.ReferenceInfo{
				Page: "22-24", Article: "Art. 15",
				Content: "<p><strong>Article 15 (Contract terms)</strong></p>" +
					"<ol><li><strong>Term:</strong> start within <em>10 days</em> of signing, complete within <u>12 months</u></li>" +
					"<li><strong>Payment:</strong> 30% advance, 40% at 50% progress, 30% on acceptance</li>" +
					"<li><strong>Delay damages:</strong> days late x contract value x 0.5/1000</li>" +
					"<li><strong>Warranty:</strong> one year of free defect repair after completion</li></ol>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD410", Name: "Draft contract review notes", Description: "Legal review findings", Required: false},
			},
			History: []models.HistoryEntry{
				{ID: "H410", At: "2025-10-10 16:00", Who: "J. Kim", Action: nodeCreatedAction, Detail: "Generated by ontology analysis"},
			},
		},
		"N0402": {
			ID: "N0402", Label: "Performance bond", Status: models.StatusNotStarted,
			Required: false, Weight: 10, Owner: "D. Jung", Reviewer: "J. Kim", RelatedNodes: 1,
			Reference: &models.ReferenceInfo{
				Page: "25", Article: "Art. 16",
				Content: "<p><strong>Article 16 (Performance bond)</strong></p>" +
					"<p>(1) The awardee provides one of:</p>" +
					"<ul><li>A performance bond insurance policy for <em>10%</em> of the contract value</li>" +
					"<li>A payment guarantee from a financial institution</li>" +
					"<li>Government or public bonds of equivalent value</li></ul>" +
					"<p>(2) Due within <u>7 days</u> of signing; (3) valid until <em>three months</em> past contract end.</p>" +
					"<p><strong>Failure to provide the bond is grounds for termination.</strong></p>",
				ExtractedAt: "2025-10-10 16:00", ExtractedBy: aiExtraction,
			},
			Evidence: []models.Evidence{},
			RequiredDocs: []models.RequiredDocument{
				{ID: "RD420", Name: "Bond policy or payment guarantee", Description: "10% of contract value", Required: false},
			},
			History: []models.HistoryEntry{
				{ID: "H420", At: "2025-10-10 16:00", Who: "J. Kim", Action: nodeCreatedAction, Detail: "Generated by ontology analysis"},
			},
		},
	}
}

// WorkspaceSeed assembles the analysis-result seed for a bid's workspace.
func WorkspaceSeed(bidID string) workspace.Seed {
	return workspace.Seed{
		BidID:      bidID,
		Tree:       Tree(),
		Details:    NodeDetails(),
		Checklist:  GlobalChecklist(),
		Owned:      OwnedLicenses(),
		Consortium: ConsortiumMembers(),
		Library:    ContentLibrary(),
	}
}
