package auth

import (
	"context"
	"testing"

	autherrors "github.com/anas1606/attendance/internal/auth/errors"
	"github.com/anas1606/attendance/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*user.User)}
	for _, u := range users {
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func seedUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		Password: string(hash),
		Role:     user.RoleStaff,
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := seedUser(t, "s3cret-pass")
	svc := NewService(newFakeUserRepo(u))

	access, refresh, resp, err := svc.Login(context.Background(), u.Email, "s3cret-pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, u.ID.String(), resp.ID)
	assert.Equal(t, user.RoleStaff, resp.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := seedUser(t, "s3cret-pass")
	svc := NewService(newFakeUserRepo(u))

	_, _, _, err := svc.Login(context.Background(), u.Email, "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := seedUser(t, "s3cret-pass")
	svc := NewService(newFakeUserRepo(u))

	_, refresh, _, err := svc.Login(context.Background(), u.Email, "s3cret-pass")
	assert.NoError(t, err)

	access, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, u.Email, resp.Email)
}

func TestRefreshTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(newFakeUserRepo())

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestGetMe(t *testing.T) {
	u := seedUser(t, "s3cret-pass")
	svc := NewService(newFakeUserRepo(u))

	resp, err := svc.GetMe(context.Background(), u.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, u.Email, resp.Email)

	_, err = svc.GetMe(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)

	_, err = svc.GetMe(context.Background(), "nope")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}
