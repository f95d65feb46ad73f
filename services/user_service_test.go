package services

import (
	"testing"

	"newsapp-api/models"
	"newsapp-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strp(s string) *string { return &s }

func newUserService(t *testing.T) (UserService, repositories.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)
	return NewUserService(repo), repo
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, repo := newUserService(t)

	user, err := svc.Create(models.CreateUserRequest{
		FullName: strp("Alice"),
		Email:    strp("alice@example.com"),
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)

	stored, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestCreateUserCoercesUnknownRole(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Create(models.CreateUserRequest{Password: "secret123", Role: "SuperAdmin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	user, err = svc.Create(models.CreateUserRequest{Password: "secret123", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(models.CreateUserRequest{Email: strp("dup@example.com"), Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Create(models.CreateUserRequest{Email: strp("dup@example.com"), Password: "secret123"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestUpdateUserIgnoresInvalidRoleAndBlankName(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Create(models.CreateUserRequest{FullName: strp("Bob"), Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, models.UpdateUserRequest{
		FullName: strp("   "),
		Role:     strp("Root"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", *updated.FullName)
	assert.Equal(t, models.RoleUser, updated.Role)

	updated, err = svc.Update(user.ID, models.UpdateUserRequest{
		FullName: strp("Robert"),
		Role:     strp(models.RoleAdmin),
	})
	require.NoError(t, err)
	assert.Equal(t, "Robert", *updated.FullName)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestLogin(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(models.CreateUserRequest{Email: strp("login@example.com"), Password: "secret123"})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "login@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(models.LoginRequest{Email: "login@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.Delete(42)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
