package dto

import (
	"time"

	"bozor/internal/entity"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Image     *string   `json:"image,omitempty"`
	Year      *int      `json:"year,omitempty"`
	RegionID  uint      `json:"regionID"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Image:     user.Image,
		Year:      user.Year,
		RegionID:  user.RegionID,
		Region:    user.Region.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UserResponsesFromEntities(users []entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserResponseFromEntity(&users[i]))
	}
	return responses
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=9,max=15"`
	Role     *string `json:"role" validate:"omitempty,oneof=USER ADMIN SUPER_ADMIN SHOP"`
	RegionID *uint   `json:"regionID" validate:"omitempty"`
	Image    *string `json:"image" validate:"omitempty"`
	Year     *int    `json:"year" validate:"omitempty,min=1900,max=2100"`
}

type UsersPageResponse struct {
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int64          `json:"totalPages"`
	Data       []UserResponse `json:"data"`
}
