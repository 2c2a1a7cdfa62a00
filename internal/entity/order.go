package entity

import "time"

type Order struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"constraint:OnDelete:CASCADE"`

	Items []OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	OrderID uint  `gorm:"not null;index"`
	Order   Order `gorm:"constraint:OnDelete:CASCADE"`

	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`

	Count int `gorm:"not null;default:1"`

	CreatedAt time.Time
}
