// Package review holds the audit state machine shared by default and
// recovery applications.
package review

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	// ErrInvalidDecision is returned when a decision is neither approved nor rejected.
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
	// ErrAlreadyAudited is returned when an audited application is audited again.
	ErrAlreadyAudited = errors.New("application has already been audited")
)

var validStatuses = map[Status]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsApproved() bool {
	return s == StatusApproved
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

// IsTerminal reports whether no further transition is defined.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid audit status: %s", s)
	}
	return st, nil
}

// ParseDecision accepts only the two terminal statuses.
func ParseDecision(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusApproved, StatusRejected:
		return st, nil
	}
	return "", ErrInvalidDecision
}
