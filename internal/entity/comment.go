package entity

import "time"

type Comment struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"constraint:OnDelete:CASCADE"`

	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`

	Star    int    `gorm:"not null"`
	Message string `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
