package models

import "time"

type DefaultApplicationModel struct {
	AppID           string     `gorm:"column:app_id;primaryKey;size:32"`
	CustomerID      string     `gorm:"column:customer_id;size:32;not null;index"`
	DefaultReasonID string     `gorm:"column:default_reason_id;size:32;not null"`
	SeverityLevel   string     `gorm:"column:severity_level;size:10;not null"`
	Remarks         *string    `gorm:"column:remarks;type:text"`
	AttachmentURL   *string    `gorm:"column:attachment_url;size:255"`
	ApplicantID     string     `gorm:"column:applicant_id;size:32;not null"`
	ApplyTime       time.Time  `gorm:"column:apply_time;not null;index"`
	AuditStatus     string     `gorm:"column:audit_status;size:20;not null;index"`
	AuditorID       *string    `gorm:"column:auditor_id;size:32"`
	AuditTime       *time.Time `gorm:"column:audit_time"`
	AuditRemarks    *string    `gorm:"column:audit_remarks;type:text"`

	// No foreign key constraints; references are checked by the use cases.
}

func (DefaultApplicationModel) TableName() string {
	return "t_default_application"
}

type RecoveryApplicationModel struct {
	RecoveryAppID        string     `gorm:"column:recovery_app_id;primaryKey;size:32"`
	CustomerID           string     `gorm:"column:customer_id;size:32;not null;index"`
	OriginalDefaultAppID string     `gorm:"column:original_default_app_id;size:32;not null;index"`
	RecoveryReasonID     string     `gorm:"column:recovery_reason_id;size:32;not null"`
	ApplicantID          string     `gorm:"column:applicant_id;size:32;not null"`
	ApplyTime            time.Time  `gorm:"column:apply_time;not null;index"`
	AuditStatus          string     `gorm:"column:audit_status;size:20;not null;index"`
	AuditorID            *string    `gorm:"column:auditor_id;size:32"`
	AuditTime            *time.Time `gorm:"column:audit_time"`
	AuditRemarks         *string    `gorm:"column:audit_remarks;type:text"`
}

func (RecoveryApplicationModel) TableName() string {
	return "t_recovery_application"
}

// DefaultApplicationRow is a default application joined with display names.
type DefaultApplicationRow struct {
	DefaultApplicationModel `gorm:"embedded"`
	CustomerName            string `gorm:"column:customer_name"`
	ReasonContent           string `gorm:"column:reason_content"`
	ApplicantName           string `gorm:"column:applicant_name"`
	AuditorName             string `gorm:"column:auditor_name"`
}

// RecoveryApplicationRow is a recovery application joined with display names.
type RecoveryApplicationRow struct {
	RecoveryApplicationModel `gorm:"embedded"`
	CustomerName             string `gorm:"column:customer_name"`
	ReasonContent            string `gorm:"column:reason_content"`
	ApplicantName            string `gorm:"column:applicant_name"`
	AuditorName              string `gorm:"column:auditor_name"`
}
