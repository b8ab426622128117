package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventsnow/internal/auth"
	apperrors "eventsnow/internal/errors"
	"eventsnow/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		userName      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "test@example.com",
			password: "Passw0rd!",
			userName: "test_user",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "user already exists",
			email:    "existing@example.com",
			password: "Passw0rd!",
			userName: "existing_user",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserExists,
		},
		{
			name:     "lost race maps duplicate key to user exists",
			email:    "racing@example.com",
			password: "Passw0rd!",
			userName: "racing_user",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "racing@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
			user, err := service.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, GravatarURL(tt.email), user.Avatar)
				assert.False(t, user.IsAdmin)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Two registrations of the same password must not produce the same digest.
func TestAuthService_RegisterDistinctDigests(t *testing.T) {
	hashes := make(map[string]bool)
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
	for _, email := range []string{"one@example.com", "two@example.com"} {
		user, err := service.Register(context.Background(), "same_pass", email, "Passw0rd!")
		assert.NoError(t, err)
		hashes[user.PasswordHash] = true
	}
	assert.Len(t, hashes, 2)
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcryptCost)
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "Passw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Name:         "test_user",
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "missing@example.com",
			password: "Passw0rd!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidEmail,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "WrongPass1!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			tokens := auth.NewTokenService("test-secret")
			service := NewAuthService(mockRepo, tokens)
			token, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				claims, err := tokens.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, userID.String(), claims.ID)
				assert.Equal(t, "test_user", claims.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// A missing secret must surface an error from login, never a silent success.
func TestAuthService_LoginNoSecret(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcryptCost)
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
	}, nil)

	service := NewAuthService(mockRepo, auth.NewTokenService(""))
	token, err := service.Login(context.Background(), "test@example.com", "Passw0rd!")

	assert.ErrorIs(t, err, auth.ErrNoSecret)
	assert.Empty(t, token)
}

func TestAuthService_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "test_user"}, nil)

		service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
		user, err := service.GetUser(context.Background(), userID.String())

		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewAuthService(mockRepo, auth.NewTokenService("test-secret"))
		user, err := service.GetUser(context.Background(), userID.String())

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("malformed id", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), auth.NewTokenService("test-secret"))
		user, err := service.GetUser(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestGravatarURL_Deterministic(t *testing.T) {
	a := GravatarURL("Someone@Example.com ")
	b := GravatarURL("someone@example.com")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, GravatarURL("other@example.com"))
}
