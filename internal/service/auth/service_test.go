package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	return args.Get(0).(user.User), args.Error(1)
}

const testSecret = "test-secret-key-for-jwt"

func newTestService(repo *mockUserRepository) *AuthServiceImpl {
	return &AuthServiceImpl{
		UserRepository: repo,
		Service:        jwt.NewJWTService(testSecret, "1h"),
		bcryptCost:     bcrypt.MinCost,
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepository)
	repo.On("GetByUsername", ctx, "hr.admin").
		Return(user.User{ID: 7, Username: "hr.admin", PasswordHash: hashed(t, "password123"), Role: user.RoleAdmin}, nil)

	svc := newTestService(repo)
	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "hr.admin", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "Logged in successfully", resp.Message)
	assert.NotEmpty(t, resp.Token)

	token, err := svc.JWTAuth().Decode(resp.Token)
	require.NoError(t, err)
	claims, err := token.AsMap(ctx)
	require.NoError(t, err)
	parsed, err := svc.ParseClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	repo.AssertExpectations(t)
}

func TestLogin_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepository)
	repo.On("GetByUsername", ctx, "ghost").Return(user.User{}, user.ErrUserNotFound)
	repo.On("GetByUsername", ctx, "hr.admin").
		Return(user.User{ID: 7, Username: "hr.admin", PasswordHash: hashed(t, "password123"), Role: user.RoleAdmin}, nil)

	svc := newTestService(repo)

	_, errUnknown := svc.Login(ctx, auth.LoginRequest{Username: "ghost", Password: "password123"})
	_, errMismatch := svc.Login(ctx, auth.LoginRequest{Username: "hr.admin", Password: "wrong-password"})

	assert.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, errMismatch, auth.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errMismatch.Error())
}

func TestLogin_ValidationError(t *testing.T) {
	repo := new(mockUserRepository)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
	repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestLogin_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepository)
	repo.On("GetByUsername", ctx, "hr.admin").Return(user.User{}, errors.New("connection refused"))

	_, err := newTestService(repo).Login(ctx, auth.LoginRequest{Username: "hr.admin", Password: "password123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(u user.User) bool {
		return u.Username == "hr.viewer" &&
			u.Role == user.RoleViewer &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(user.User{ID: 3, Username: "hr.viewer", Role: user.RoleViewer}, nil)

	created, err := newTestService(repo).CreateUser(ctx, auth.CreateUserRequest{
		Username: " hr.viewer ", Password: "password123", Role: "viewer",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	repo.AssertExpectations(t)
}

func TestCreateUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepository)
	repo.On("Create", ctx, mock.Anything).Return(user.User{}, user.ErrUsernameExists)

	_, err := newTestService(repo).CreateUser(ctx, auth.CreateUserRequest{
		Username: "hr.admin", Password: "password123", Role: "admin",
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}
