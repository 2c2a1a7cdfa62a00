package service

import (
	"time"

	"bozor/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type TokenIssuer interface {
	IssueAccessToken(userID uint, role entity.UserRole) (string, time.Duration, error)
	IssueRefreshToken(userID uint) (string, time.Duration, error)
	ParseRefreshToken(token string) (uint, error)
}

type OTPGenerator interface {
	Generate(email string, phone string, at time.Time) (string, error)
	Validate(email string, phone string, code string, at time.Time) bool
}

// OTPNotifier delivers a code over the contact channels. Delivery is
// best-effort: implementations must never surface a failure to the caller.
type OTPNotifier interface {
	Dispatch(email string, phone string, code string)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
