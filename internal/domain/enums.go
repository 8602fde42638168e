package domain

// FilingStatus is the lifecycle state of a filing.
type FilingStatus string

const (
	// FilingStatusDraft means the payload is stored but no report has been generated.
	FilingStatusDraft FilingStatus = "draft"
	// FilingStatusGenerated means a report has been generated and totals persisted.
	FilingStatusGenerated FilingStatus = "generated"
	// FilingStatusFiled means the return was submitted to the portal.
	FilingStatusFiled FilingStatus = "filed"
)

// ValidFilingStatuses is the set of statuses accepted from clients.
var ValidFilingStatuses = map[FilingStatus]bool{
	FilingStatusDraft:     true,
	FilingStatusGenerated: true,
	FilingStatusFiled:     true,
}
