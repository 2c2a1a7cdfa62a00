package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidRole            = errors.New("invalid role")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrNotVerified            = errors.New("account not verified")
	ErrAlreadyVerified        = errors.New("account already verified")
	ErrInvalidOTP             = errors.New("invalid or expired otp")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrUserNotFound           = errors.New("user not found")
	ErrRegionNotFound         = errors.New("region not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrCommentNotFound        = errors.New("comment not found")
	ErrNotOwner               = errors.New("you don't have permission for this resource")
)
