package defaultapp

import "fmt"

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Severities lists the accepted values, most severe first.
var Severities = []Severity{SeverityHigh, SeverityMedium, SeverityLow}

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

func NewSeverity(s string) (Severity, error) {
	sv := Severity(s)
	if !sv.IsValid() {
		return "", fmt.Errorf("severity must be one of high, medium, low")
	}
	return sv, nil
}
