package dto

import (
	"time"

	"weiyue/internal/domain/reason"
)

type ReasonDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	IsEnabled bool      `json:"is_enabled"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

func ToReasonDTO(r *reason.Reason) *ReasonDTO {
	if r == nil {
		return nil
	}
	return &ReasonDTO{
		ID:        r.ID(),
		Kind:      r.Kind().String(),
		Content:   r.Content(),
		IsEnabled: r.IsEnabled(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func ToReasonDTOs(list []*reason.Reason) []*ReasonDTO {
	out := make([]*ReasonDTO, 0, len(list))
	for _, r := range list {
		out = append(out, ToReasonDTO(r))
	}
	return out
}
