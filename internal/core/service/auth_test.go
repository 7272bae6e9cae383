package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
)

type MockUserStore struct {
	mock.Mock
	txCalls int
}

func (m *MockUserStore) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserStore) WithinTx(ctx context.Context, fn func(port.UserStore) error) error {
	m.txCalls++
	return fn(m)
}

func TestAuthService_PasswordHashRoundTrip(t *testing.T) {
	svc := NewAuthService(new(MockUserStore), "test-secret")

	hash, err := svc.HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, svc.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, svc.CheckPasswordHash("wrong password", hash))
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(new(MockUserStore), "test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	assert.NoError(t, err)

	parsed, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := NewAuthService(new(MockUserStore), "secret-a")
	verifier := NewAuthService(new(MockUserStore), "secret-b")

	token, err := issuer.GenerateToken(uuid.New())
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "taken@example.com").
		Return(domain.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	svc := NewAuthService(users, "test-secret")

	_, err := svc.Register(context.Background(), "taken@example.com", "Someone", "password123")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthService_Register_NewUser(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "new@example.com").
		Return(domain.User{}, domain.ErrUserNotFound)
	users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash != "" && u.PasswordHash != "password123"
	})).Return(domain.User{ID: uuid.New(), Email: "new@example.com", Name: "New User"}, nil)

	svc := NewAuthService(users, "test-secret")

	user, err := svc.Register(context.Background(), "new@example.com", "New User", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, 1, users.txCalls, "lookup and insert should share one transaction")
	users.AssertExpectations(t)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	// The pre-insert lookup misses, but another registration commits first
	// and the insert trips the unique index on email.
	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "raced@example.com").
		Return(domain.User{}, domain.ErrUserNotFound)
	users.On("CreateUser", mock.Anything, mock.Anything).
		Return(domain.User{}, domain.ErrEmailTaken)

	svc := NewAuthService(users, "test-secret")

	_, err := svc.Register(context.Background(), "raced@example.com", "Someone", "password123")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(new(MockUserStore), "test-secret")
	hash, _ := svc.HashPassword("right password")

	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "user@example.com").
		Return(domain.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: hash}, nil)

	svc = NewAuthService(users, "test-secret")

	_, err := svc.Login(context.Background(), "user@example.com", "wrong password")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthService_Login_Success(t *testing.T) {
	bootstrap := NewAuthService(new(MockUserStore), "test-secret")
	hash, _ := bootstrap.HashPassword("right password")
	userID := uuid.New()

	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "user@example.com").
		Return(domain.User{ID: userID, Email: "user@example.com", PasswordHash: hash}, nil)

	svc := NewAuthService(users, "test-secret")

	token, err := svc.Login(context.Background(), "user@example.com", "right password")
	assert.NoError(t, err)

	parsed, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}
