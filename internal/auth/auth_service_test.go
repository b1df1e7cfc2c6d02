package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/atuljain2995/Tangry-Website/internal/auth"
	autherrors "github.com/atuljain2995/Tangry-Website/internal/auth/errors"
	authmock "github.com/atuljain2995/Tangry-Website/internal/mock/auth"
)

func TestRegister_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	var created auth.User
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u auth.User) error {
			created = u
			return nil
		})

	access, refresh, resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "  Asha Patel ",
		Email:    " Asha@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.Equal(t, "Asha Patel", resp.Name)
	assert.Equal(t, "customer", resp.Role)

	assert.Equal(t, "asha@example.com", created.Email)
	assert.NotEqual(t, "supersecret", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("supersecret")))
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(auth.ErrDuplicateEmail)

	_, _, _, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, autherrors.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	user := auth.User{
		ID:       uuid.New(),
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Password: string(hash),
		Role:     "customer",
	}
	repo.EXPECT().
		GetByEmail(gomock.Any(), "asha@example.com").
		Return(user, nil)

	access, refresh, resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ASHA@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, user.ID.String(), resp.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	repo.EXPECT().
		GetByEmail(gomock.Any(), "asha@example.com").
		Return(auth.User{ID: uuid.New(), Email: "asha@example.com", Password: string(hash)}, nil)

	_, _, _, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	repo.EXPECT().
		GetByEmail(gomock.Any(), "nobody@example.com").
		Return(auth.User{}, sql.ErrNoRows)

	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestRefresh_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	user := auth.User{
		ID:    uuid.New(),
		Name:  "Asha Patel",
		Email: "asha@example.com",
		Role:  "customer",
	}
	repo.EXPECT().
		GetByEmail(gomock.Any(), "asha@example.com").
		Return(userWithPassword(t, user, "supersecret"), nil)
	repo.EXPECT().
		GetByID(gomock.Any(), user.ID).
		Return(user, nil)

	_, refresh, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	access2, refresh2, resp, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEmpty(t, refresh2)
	assert.Equal(t, user.ID.String(), resp.ID)
}

func TestRefresh_GarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	_, _, _, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestMe(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	user := auth.User{ID: uuid.New(), Name: "Asha Patel", Email: "asha@example.com", Role: "customer"}
	repo.EXPECT().
		GetByID(gomock.Any(), user.ID).
		Return(user, nil)

	resp, err := svc.Me(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.Email)
}

func TestMe_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	id := uuid.New()
	repo.EXPECT().
		GetByID(gomock.Any(), id).
		Return(auth.User{}, sql.ErrNoRows)

	_, err := svc.Me(context.Background(), id.String())
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}

func TestMe_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	_, err := svc.Me(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func userWithPassword(t *testing.T, u auth.User, password string) auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u.Password = string(hash)
	return u
}
