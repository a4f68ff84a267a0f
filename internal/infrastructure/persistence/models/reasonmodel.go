package models

import "time"

type DefaultReasonModel struct {
	ReasonID      string    `gorm:"column:reason_id;primaryKey;size:32"`
	ReasonContent string    `gorm:"column:reason_content;size:255;not null"`
	IsEnabled     bool      `gorm:"column:is_enabled;not null;index"`
	CreateTime    time.Time `gorm:"column:create_time;not null;index"`
	UpdateTime    time.Time `gorm:"column:update_time;not null"`
}

func (DefaultReasonModel) TableName() string {
	return "t_default_reason"
}

type RecoveryReasonModel struct {
	RecoveryID      string    `gorm:"column:recovery_id;primaryKey;size:32"`
	RecoveryContent string    `gorm:"column:recovery_content;size:255;not null"`
	IsEnabled       bool      `gorm:"column:is_enabled;not null;index"`
	CreateTime      time.Time `gorm:"column:create_time;not null;index"`
	UpdateTime      time.Time `gorm:"column:update_time;not null"`
}

func (RecoveryReasonModel) TableName() string {
	return "t_recovery_reason"
}

// ReasonRow is the column-neutral projection both reason tables are read into.
type ReasonRow struct {
	ID         string    `gorm:"column:id"`
	Content    string    `gorm:"column:content"`
	IsEnabled  bool      `gorm:"column:is_enabled"`
	CreateTime time.Time `gorm:"column:create_time"`
	UpdateTime time.Time `gorm:"column:update_time"`
}
