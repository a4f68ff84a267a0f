// Package application serves default and recovery applications over HTTP.
package application

import (
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/infrastructure/export"
)

var statusLabels = map[review.Status]string{
	review.StatusPending:  "待审核",
	review.StatusApproved: "同意",
	review.StatusRejected: "拒绝",
}

var severityLabels = map[defaultapp.Severity]string{
	defaultapp.SeverityHigh:   "高",
	defaultapp.SeverityMedium: "中",
	defaultapp.SeverityLow:    "低",
}

func StatusLabel(s review.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func SeverityLabel(s defaultapp.Severity) string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return string(s)
}

// NormalizeStatus maps an exact Chinese label to its status value. Anything
// else is passed through untouched for the use case to accept or reject.
func NormalizeStatus(s string) string {
	for status, label := range statusLabels {
		if s == label {
			return string(status)
		}
	}
	return s
}

// NormalizeSeverity does the same for 高/中/低.
func NormalizeSeverity(s string) string {
	for severity, label := range severityLabels {
		if s == label {
			return string(severity)
		}
	}
	return s
}

func exportLabels() export.Labels {
	return export.Labels{Status: StatusLabel, Severity: SeverityLabel}
}
