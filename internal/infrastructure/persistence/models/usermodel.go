package models

import "time"

type UserModel struct {
	UserID     string    `gorm:"column:user_id;primaryKey;size:32"`
	UserName   string    `gorm:"column:user_name;size:50;not null;uniqueIndex"`
	RealName   string    `gorm:"column:real_name;size:50"`
	Department string    `gorm:"column:department;size:100"`
	Role       string    `gorm:"column:role;size:50"`
	Password   string    `gorm:"column:password;size:255;not null"`
	Phone      string    `gorm:"column:phone;size:20"`
	Email      string    `gorm:"column:email;size:100"`
	CreateTime time.Time `gorm:"column:create_time;not null"`
	UpdateTime time.Time `gorm:"column:update_time;not null"`
}

func (UserModel) TableName() string {
	return "t_user_info"
}
