package models

import "time"

type CustomerModel struct {
	CustomerID            string    `gorm:"column:customer_id;primaryKey;size:32"`
	CustomerName          string    `gorm:"column:customer_name;size:100;not null;index"`
	CurrentExternalRating string    `gorm:"column:current_external_rating;size:20"`
	IndustryType          string    `gorm:"column:industry_type;size:50;index"`
	Region                string    `gorm:"column:region;size:50;index"`
	IsDefault             bool      `gorm:"column:is_default;not null;default:false;index"`
	CreateTime            time.Time `gorm:"column:create_time;not null"`
	UpdateTime            time.Time `gorm:"column:update_time;not null"`
}

func (CustomerModel) TableName() string {
	return "t_customer_info"
}
