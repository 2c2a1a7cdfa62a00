package dto

type RegisterRequest struct {
	FullName string  `json:"fullName" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,min=9,max=15"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"omitempty,oneof=USER ADMIN SUPER_ADMIN SHOP"`
	RegionID uint    `json:"regionID" validate:"required"`
	Image    *string `json:"image" validate:"omitempty"`
	Year     *int    `json:"year" validate:"omitempty,min=1900,max=2100"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type VerifyOTPRequest struct {
	UserID uint   `json:"userId" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}

type ResendOTPRequest struct {
	UserID uint `json:"userId" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken,omitempty"`
	ExpiresIn        int64  `json:"expiresIn,omitempty"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
