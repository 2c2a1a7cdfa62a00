package service

import (
	"time"

	"bozor/internal/entity"
	"bozor/internal/utils"
)

type JWTTokenIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTTokenIssuer) IssueAccessToken(userID uint, role entity.UserRole) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	return j.Manager.IssueAccessToken(userID, string(role))
}

func (j JWTTokenIssuer) IssueRefreshToken(userID uint) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	return j.Manager.IssueRefreshToken(userID)
}

func (j JWTTokenIssuer) ParseRefreshToken(token string) (uint, error) {
	if j.Manager == nil {
		return 0, ErrInvalidToken
	}
	return j.Manager.ParseRefreshToken(token)
}
