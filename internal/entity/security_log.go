package entity

import (
	"time"

	"gorm.io/datatypes"
)

type SecurityAction string

const (
	LoginSuccess SecurityAction = "login_success"
	LoginFailed  SecurityAction = "login_failed"
	OTPVerified  SecurityAction = "otp_verified"
	OTPFailed    SecurityAction = "otp_failed"
	Registered   SecurityAction = "registered"
	TokenRefresh SecurityAction = "token_refresh"
	UserDeleted  SecurityAction = "user_deleted"
	UserUpdated  SecurityAction = "user_updated"
)

type SecurityLog struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	UserID *uint `gorm:"index"`
	User   *User `gorm:"constraint:OnDelete:SET NULL"`

	IPAddress *string        `gorm:"type:varchar(45)"`
	Action    SecurityAction `gorm:"type:varchar(30);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}
