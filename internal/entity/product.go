package entity

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Image       *string `gorm:"type:varchar(255)"`

	AuthorID uint `gorm:"not null;index"`
	Author   User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	CategoryID uint     `gorm:"not null;index"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
