package review

import "time"

// Notice describes an audit outcome for the applicant.
type Notice struct {
	ApplicationKind string
	ApplicationID   string
	CustomerName    string
	ApplicantName   string
	ApplicantEmail  string
	Decision        Status
	Remarks         *string
	AuditedAt       time.Time
}
