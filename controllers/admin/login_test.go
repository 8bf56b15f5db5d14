package adminController

import (
	"net/http"
	"testing"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
	}).Error)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	seedAdmin(t, db, "admin", "admin123")

	rec := doJSON(t, LoginHandler(db), http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin", "password": "admin123"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "admin", resp["username"])
	assert.NotEmpty(t, resp["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	seedAdmin(t, db, "admin", "admin123")

	rec := doJSON(t, LoginHandler(db), http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin", "password": "nope"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)

	rec := doJSON(t, LoginHandler(db), http.MethodPost, "/api/admin/login",
		map[string]string{"username": "ghost", "password": "whatever"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	db := newTestDB(t)

	rec := doJSON(t, LoginHandler(db), http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username and password required", decodeBody(t, rec)["message"])
}
