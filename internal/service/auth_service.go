package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"bozor/internal/entity"
	"bozor/internal/repository"
	"bozor/internal/utils"

	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users        repository.UserRepository
	regions      repository.RegionRepository
	securityLogs repository.SecurityLogRepository

	passwordHash PasswordHasher
	tokens       TokenIssuer
	otp          OTPGenerator
	notifier     OTPNotifier
	clock        Clock
}

func NewAuthService(
	users repository.UserRepository,
	regions repository.RegionRepository,
	securityLogs repository.SecurityLogRepository,
	passwordHash PasswordHasher,
	tokens TokenIssuer,
	otp OTPGenerator,
	notifier OTPNotifier,
	clock Clock,
) *AuthService {
	return &AuthService{
		users:        users,
		regions:      regions,
		securityLogs: securityLogs,
		passwordHash: passwordHash,
		tokens:       tokens,
		otp:          otp,
		notifier:     notifier,
		clock:        clock,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (uint, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" || strings.TrimSpace(input.Password) == "" {
		return 0, ErrInvalidInput
	}

	role := entity.UserRole(input.Role)
	if input.Role == "" {
		role = entity.UserRoleUser
	}
	if !entity.ValidRole(role) {
		return 0, ErrInvalidRole
	}

	email := utils.NormalizeEmail(input.Email)
	phone := utils.NormalizePhone(input.Phone)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailAlreadyRegistered
	}
	existing, err = s.users.FindByPhone(ctx, phone)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrPhoneAlreadyRegistered
	}

	region, err := s.regions.FindByID(ctx, input.RegionID)
	if err != nil {
		return 0, err
	}
	if region == nil {
		return 0, ErrRegionNotFound
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return 0, err
	}

	code, err := s.otp.Generate(email, phone, s.now())
	if err != nil {
		return 0, err
	}

	user := &entity.User{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
		Status:       entity.UserStatusPending,
		Image:        input.Image,
		Year:         input.Year,
		RegionID:     input.RegionID,
		PendingOTP:   &code,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The store's uniqueness constraint arbitrates concurrent
		// registrations; a violation here is the same conflict as the
		// pre-check above.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return 0, ErrEmailAlreadyRegistered
		}
		return 0, err
	}

	if s.notifier != nil {
		s.notifier.Dispatch(email, phone, code)
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.Registered, map[string]any{"email": email})
	return user.ID, nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, userID uint, code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Status != entity.UserStatusPending || user.PendingOTP == nil {
		return ErrInvalidOTP
	}

	match := subtle.ConstantTimeCompare([]byte(*user.PendingOTP), []byte(code)) == 1
	if !match || !s.otp.Validate(user.Email, user.Phone, code, s.now()) {
		_ = s.logSecurity(ctx, &user.ID, nil, entity.OTPFailed, nil)
		return ErrInvalidOTP
	}

	if err := s.users.Activate(ctx, user.ID); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.OTPVerified, nil)
	return nil
}

func (s *AuthService) ResendOTP(ctx context.Context, userID uint) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Status != entity.UserStatusPending {
		return ErrAlreadyVerified
	}

	code, err := s.otp.Generate(user.Email, user.Phone, s.now())
	if err != nil {
		return err
	}
	if err := s.users.SetPendingOTP(ctx, user.ID, code); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.Dispatch(user.Email, user.Phone, code)
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Equalize timing so unknown email and wrong password are
		// indistinguishable to the caller.
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, nil, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if user.Status != entity.UserStatusActive {
		return nil, ErrNotVerified
	}

	accessToken, expiresIn, err := s.tokens.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresIn, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, nil)
	return &LoginResult{
		AccessToken:      accessToken,
		ExpiresIn:        int64(expiresIn.Seconds()),
		RefreshToken:     refreshToken,
		RefreshExpiresIn: int64(refreshExpiresIn.Seconds()),
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidInput
	}

	userID, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Status != entity.UserStatusActive {
		return nil, ErrNotVerified
	}

	accessToken, expiresIn, err := s.tokens.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.TokenRefresh, nil)
	return &LoginResult{
		AccessToken: accessToken,
		ExpiresIn:   int64(expiresIn.Seconds()),
	}, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context, params repository.ListUsersParams) ([]entity.User, int64, error) {
	return s.users.List(ctx, params)
}

func (s *AuthService) UpdateUser(ctx context.Context, userID uint, input UpdateUserInput) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Email != nil {
		user.Email = utils.NormalizeEmail(*input.Email)
	}
	if input.Phone != nil {
		user.Phone = utils.NormalizePhone(*input.Phone)
	}
	if input.Role != nil {
		role := entity.UserRole(*input.Role)
		if !entity.ValidRole(role) {
			return nil, ErrInvalidRole
		}
		user.Role = role
	}
	if input.RegionID != nil {
		region, err := s.regions.FindByID(ctx, *input.RegionID)
		if err != nil {
			return nil, err
		}
		if region == nil {
			return nil, ErrRegionNotFound
		}
		user.RegionID = *input.RegionID
	}
	if input.Image != nil {
		user.Image = input.Image
	}
	if input.Year != nil {
		user.Year = input.Year
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.UserUpdated, nil)
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, &user.ID, nil, entity.UserDeleted, nil)
	return nil
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uint,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.securityLogs.Log(ctx, log)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
