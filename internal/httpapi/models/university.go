package models

import "time"

type University struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	City      string    `json:"city,omitempty" gorm:"size:100"`
	Country   string    `json:"country,omitempty" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (University) TableName() string {
	return "universities"
}
