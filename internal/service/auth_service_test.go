package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"bozor/internal/entity"
	"bozor/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Phone == user.Phone {
			return repository.ErrDuplicateKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Phone == phone {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.users {
		if id == user.ID {
			continue
		}
		if existing.Email == user.Email || existing.Phone == user.Phone {
			return repository.ErrDuplicateKey
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) SetPendingOTP(_ context.Context, id uint, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.PendingOTP = &code
	}
	return nil
}

func (r *memUserRepo) Activate(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.Status = entity.UserStatusActive
		user.PendingOTP = nil
	}
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context, _ repository.ListUsersParams) ([]entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, int64(len(users)), nil
}

type memRegionRepo struct {
	regions map[uint]*entity.Region
}

func newMemRegionRepo(ids ...uint) *memRegionRepo {
	repo := &memRegionRepo{regions: make(map[uint]*entity.Region)}
	for _, id := range ids {
		repo.regions[id] = &entity.Region{ID: id, Name: fmt.Sprintf("region-%d", id)}
	}
	return repo
}

func (r *memRegionRepo) Create(_ context.Context, region *entity.Region) error {
	if region.ID == 0 {
		region.ID = uint(len(r.regions) + 1)
	}
	r.regions[region.ID] = region
	return nil
}

func (r *memRegionRepo) FindByID(_ context.Context, id uint) (*entity.Region, error) {
	region, ok := r.regions[id]
	if !ok {
		return nil, nil
	}
	return region, nil
}

func (r *memRegionRepo) Update(_ context.Context, region *entity.Region) error {
	r.regions[region.ID] = region
	return nil
}

func (r *memRegionRepo) Delete(_ context.Context, id uint) error {
	delete(r.regions, id)
	return nil
}

func (r *memRegionRepo) List(_ context.Context, _ string, _, _ int) ([]entity.Region, error) {
	regions := make([]entity.Region, 0, len(r.regions))
	for _, region := range r.regions {
		regions = append(regions, *region)
	}
	return regions, nil
}

type memSecurityLog struct {
	mu      sync.Mutex
	entries []entity.SecurityLog
}

func (r *memSecurityLog) Log(_ context.Context, log *entity.SecurityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *memSecurityLog) actions() []entity.SecurityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]entity.SecurityAction, 0, len(r.entries))
	for _, entry := range r.entries {
		actions = append(actions, entry.Action)
	}
	return actions
}

type fakeTokenIssuer struct {
	counter int
}

func (f *fakeTokenIssuer) IssueAccessToken(userID uint, role entity.UserRole) (string, time.Duration, error) {
	f.counter++
	return fmt.Sprintf("access-%d-%s-%d", userID, role, f.counter), 15 * time.Minute, nil
}

func (f *fakeTokenIssuer) IssueRefreshToken(userID uint) (string, time.Duration, error) {
	f.counter++
	return fmt.Sprintf("refresh-%d-%d", userID, f.counter), 7 * 24 * time.Hour, nil
}

func (f *fakeTokenIssuer) ParseRefreshToken(token string) (uint, error) {
	var userID uint
	var counter int
	if _, err := fmt.Sscanf(token, "refresh-%d-%d", &userID, &counter); err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	codes []string
}

func (n *recordingNotifier) Dispatch(_ string, _ string, code string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes = append(n.codes, code)
}

func (n *recordingNotifier) lastCode() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.codes) == 0 {
		return ""
	}
	return n.codes[len(n.codes)-1]
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type authFixture struct {
	service  *AuthService
	users    *memUserRepo
	logs     *memSecurityLog
	notifier *recordingNotifier
	clock    *fakeClock
}

func newAuthFixture() *authFixture {
	users := newMemUserRepo()
	logs := &memSecurityLog{}
	notifier := &recordingNotifier{}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewAuthService(
		users,
		newMemRegionRepo(1),
		logs,
		BcryptPasswordHasher{Cost: bcrypt.MinCost},
		&fakeTokenIssuer{},
		NewTOTPChallenge([]byte("test-otp-secret"), 5*time.Minute),
		notifier,
		clock,
	)
	return &authFixture{service: svc, users: users, logs: logs, notifier: notifier, clock: clock}
}

func registerInput(email, phone string) RegisterInput {
	return RegisterInput{
		FullName: "Test User",
		Email:    email,
		Phone:    phone,
		Password: "password123",
		RegionID: 1,
	}
}

func TestRegisterCreatesPendingUser(t *testing.T) {
	f := newAuthFixture()
	userID, err := f.service.Register(context.Background(), registerInput("alice@example.com", "+998901112233"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if userID == 0 {
		t.Fatal("expected non-zero user id")
	}

	user, _ := f.users.FindByID(context.Background(), userID)
	if user == nil {
		t.Fatal("user not stored")
	}
	if user.Status != entity.UserStatusPending {
		t.Errorf("status = %s, want PENDING", user.Status)
	}
	if user.PasswordHash == "password123" {
		t.Error("password stored in plaintext")
	}
	if !(BcryptPasswordHasher{}).Verify(user.PasswordHash, "password123") {
		t.Error("stored hash does not verify against the password")
	}
	if user.PendingOTP == nil || *user.PendingOTP == "" {
		t.Error("no pending code stored")
	}
	if f.notifier.lastCode() != *user.PendingOTP {
		t.Error("dispatched code differs from stored code")
	}
}

func TestRegisterNormalizesContact(t *testing.T) {
	f := newAuthFixture()
	userID, err := f.service.Register(context.Background(), registerInput("  Alice@Example.COM ", "+998 90 111 22 33"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	user, _ := f.users.FindByID(context.Background(), userID)
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized lowercase", user.Email)
	}
	if strings.Contains(user.Phone, " ") {
		t.Errorf("phone = %q, want spaces stripped", user.Phone)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	if _, err := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := f.service.Register(ctx, registerInput("alice@example.com", "+998907778899")); err != ErrEmailAlreadyRegistered {
		t.Errorf("duplicate email: got %v, want ErrEmailAlreadyRegistered", err)
	}
	if _, err := f.service.Register(ctx, registerInput("bob@example.com", "+998901112233")); err != ErrPhoneAlreadyRegistered {
		t.Errorf("duplicate phone: got %v, want ErrPhoneAlreadyRegistered", err)
	}
}

func TestRegisterConcurrentDuplicateOneWins(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.Register(ctx, registerInput("race@example.com", "+998900000001"))
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch err {
		case nil:
			succeeded++
		case ErrEmailAlreadyRegistered, ErrPhoneAlreadyRegistered:
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || conflicted != 1 {
		t.Errorf("got %d successes and %d conflicts, want exactly one of each", succeeded, conflicted)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	input := registerInput("alice@example.com", "+998901112233")
	input.FullName = "   "
	if _, err := f.service.Register(ctx, input); err != ErrInvalidInput {
		t.Errorf("blank name: got %v, want ErrInvalidInput", err)
	}

	input = registerInput("alice@example.com", "+998901112233")
	input.Role = "WIZARD"
	if _, err := f.service.Register(ctx, input); err != ErrInvalidRole {
		t.Errorf("bad role: got %v, want ErrInvalidRole", err)
	}

	input = registerInput("alice@example.com", "+998901112233")
	input.RegionID = 42
	if _, err := f.service.Register(ctx, input); err != ErrRegionNotFound {
		t.Errorf("unknown region: got %v, want ErrRegionNotFound", err)
	}
}

func TestVerifyOTPFlow(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, err := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	code := f.notifier.lastCode()

	if err := f.service.VerifyOTP(ctx, userID, "000000"); err != ErrInvalidOTP {
		t.Errorf("wrong code: got %v, want ErrInvalidOTP", err)
	}
	if err := f.service.VerifyOTP(ctx, userID, code); err != nil {
		t.Fatalf("right code: %v", err)
	}

	user, _ := f.users.FindByID(ctx, userID)
	if user.Status != entity.UserStatusActive {
		t.Errorf("status = %s, want ACTIVE", user.Status)
	}
	if user.PendingOTP != nil {
		t.Error("pending code not cleared after verification")
	}

	// A consumed code never validates again.
	if err := f.service.VerifyOTP(ctx, userID, code); err != ErrInvalidOTP {
		t.Errorf("replayed code: got %v, want ErrInvalidOTP", err)
	}
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, err := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	code := f.notifier.lastCode()

	f.clock.advance(20 * time.Minute)
	if err := f.service.VerifyOTP(ctx, userID, code); err != ErrInvalidOTP {
		t.Errorf("expired code: got %v, want ErrInvalidOTP", err)
	}
}

func TestVerifyOTPUnknownUser(t *testing.T) {
	f := newAuthFixture()
	if err := f.service.VerifyOTP(context.Background(), 999, "123456"); err != ErrUserNotFound {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestResendOTP(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, err := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	first := f.notifier.lastCode()

	// Within the window a resend re-delivers the same code.
	if err := f.service.ResendOTP(ctx, userID); err != nil {
		t.Fatalf("resend: %v", err)
	}
	if f.notifier.lastCode() != first {
		t.Error("resend within the window produced a different code")
	}

	if err := f.service.VerifyOTP(ctx, userID, first); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := f.service.ResendOTP(ctx, userID); err != ErrAlreadyVerified {
		t.Errorf("resend after activation: got %v, want ErrAlreadyVerified", err)
	}
}

func TestLoginRequiresVerification(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	if _, err := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233")); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := f.service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "password123"})
	if err != ErrNotVerified {
		t.Errorf("got %v, want ErrNotVerified", err)
	}
}

func TestLoginCredentialErrorsAreUniform(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, _ := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))
	_ = f.service.VerifyOTP(ctx, userID, f.notifier.lastCode())

	_, unknownErr := f.service.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "password123"})
	_, wrongErr := f.service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong-password"})
	if unknownErr != ErrInvalidCredentials || wrongErr != ErrInvalidCredentials {
		t.Errorf("unknown=%v wrong=%v, want ErrInvalidCredentials for both", unknownErr, wrongErr)
	}
}

func TestLoginIssuesDistinctTokens(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, _ := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))
	_ = f.service.VerifyOTP(ctx, userID, f.notifier.lastCode())

	result, err := f.service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if result.AccessToken == result.RefreshToken {
		t.Error("access and refresh tokens are identical")
	}
	if result.ExpiresIn <= 0 || result.RefreshExpiresIn <= result.ExpiresIn {
		t.Errorf("expiries %d/%d not ordered", result.ExpiresIn, result.RefreshExpiresIn)
	}

	actions := f.logs.actions()
	var sawLogin bool
	for _, action := range actions {
		if action == entity.LoginSuccess {
			sawLogin = true
		}
	}
	if !sawLogin {
		t.Error("login success not recorded in security log")
	}
}

func TestRefresh(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, _ := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))
	_ = f.service.VerifyOTP(ctx, userID, f.notifier.lastCode())
	login, err := f.service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := f.service.Refresh(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.AccessToken == login.AccessToken {
		t.Error("refresh did not issue a fresh access token")
	}

	if _, err := f.service.Refresh(ctx, "garbage"); err != ErrInvalidToken {
		t.Errorf("garbage token: got %v, want ErrInvalidToken", err)
	}
}

func TestUpdateUser(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, _ := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))

	name := "Renamed User"
	role := "SHOP"
	user, err := f.service.UpdateUser(ctx, userID, UpdateUserInput{FullName: &name, Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.FullName != name || user.Role != entity.UserRoleShop {
		t.Errorf("update not applied: %q %s", user.FullName, user.Role)
	}

	badRole := "WIZARD"
	if _, err := f.service.UpdateUser(ctx, userID, UpdateUserInput{Role: &badRole}); err != ErrInvalidRole {
		t.Errorf("bad role: got %v, want ErrInvalidRole", err)
	}
	badRegion := uint(42)
	if _, err := f.service.UpdateUser(ctx, userID, UpdateUserInput{RegionID: &badRegion}); err != ErrRegionNotFound {
		t.Errorf("bad region: got %v, want ErrRegionNotFound", err)
	}
}

func TestDeleteUser(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID, _ := f.service.Register(ctx, registerInput("alice@example.com", "+998901112233"))

	if err := f.service.DeleteUser(ctx, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.service.DeleteUser(ctx, userID); err != ErrUserNotFound {
		t.Errorf("second delete: got %v, want ErrUserNotFound", err)
	}
}
