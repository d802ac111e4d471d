package auth

import (
	"context"
	"testing"

	"roomhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestService_Register(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, stubJWT{})
	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "New User",
		Email:    "New@Example.com ",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Register_OwnerRole(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, stubJWT{})
	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret1",
		AsOwner:  true,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, user.Role)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, "dup@example.com").Return(true, nil)

	service := NewService(users, stubJWT{})
	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Dup",
		Email:    "dup@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "u@example.com").Return(&domain.User{
		ID:           7,
		Email:        "u@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleOwner,
	}, nil)

	service := NewService(users, stubJWT{})
	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "u@example.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "u@example.com").Return(&domain.User{
		PasswordHash: string(hash),
	}, nil)

	service := NewService(users, stubJWT{})
	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "u@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
