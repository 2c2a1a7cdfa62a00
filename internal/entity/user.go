package entity

import "time"

type UserRole string

const (
	UserRoleUser       UserRole = "USER"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleShop       UserRole = "SHOP"
)

func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleUser, UserRoleAdmin, UserRoleSuperAdmin, UserRoleShop:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusPending UserStatus = "PENDING"
	UserStatusActive  UserStatus = "ACTIVE"
)

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	FullName     string     `gorm:"type:varchar(50);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string     `gorm:"type:varchar(15);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:text;not null"`
	Role         UserRole   `gorm:"type:varchar(20);default:'USER';not null"`
	Status       UserStatus `gorm:"type:varchar(10);default:'PENDING';not null"`

	Image *string `gorm:"type:varchar(255)"`
	Year  *int

	RegionID uint   `gorm:"not null;index"`
	Region   Region `gorm:"constraint:OnDelete:CASCADE"`

	// Outstanding OTP challenge for a PENDING account, cleared on consumption.
	PendingOTP *string `gorm:"type:varchar(10)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
