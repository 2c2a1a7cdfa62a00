package service

import "bozor/internal/entity"

type RegisterInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
	Role     string
	RegionID uint
	Image    *string
	Year     *int
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
}

type LoginResult struct {
	AccessToken      string
	ExpiresIn        int64
	RefreshToken     string
	RefreshExpiresIn int64
}

type UpdateUserInput struct {
	FullName *string
	Email    *string
	Phone    *string
	Role     *string
	RegionID *uint
	Image    *string
	Year     *int
}

// Actor identifies the authenticated caller for ownership checks.
type Actor struct {
	ID   uint
	Role entity.UserRole
}
