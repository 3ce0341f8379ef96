package services_test

import (
	"testing"
	"time"

	"quizbox/models"
	"quizbox/services"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Result{},
	))
	return db
}

func TestSignupIssuesUserToken(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, "test-secret")

	token, err := svc.Signup("new@example.com", "hunter2")
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.NotZero(t, claims.UserID)

	var user models.User
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&user).Error)
	assert.NotEqual(t, "hunter2", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, "test-secret")

	_, err := svc.Signup("dup@example.com", "first")
	require.NoError(t, err)

	_, err = svc.Signup("dup@example.com", "second")
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginMatchesStoredIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := models.User{Email: "admin@example.com", PasswordHash: string(hash), Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	token, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, "test-secret")

	_, err := svc.Signup("known@example.com", "right-password")
	require.NoError(t, err)

	_, wrongPassErr := svc.Login("known@example.com", "wrong-password")
	_, unknownErr := svc.Login("nobody@example.com", "whatever")

	assert.ErrorIs(t, wrongPassErr, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownErr)
}

func TestParseTokenRejectsBadTokens(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db, "right-secret")

	_, err := svc.ParseToken("not.a.jwt")
	assert.Error(t, err)

	other := services.NewAuthService(db, "wrong-secret")
	user := models.User{Email: "a@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	forged, err := other.GenerateToken(&user)
	require.NoError(t, err)
	_, err = svc.ParseToken(forged)
	assert.Error(t, err)

	expired := services.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("right-secret"))
	require.NoError(t, err)
	_, err = svc.ParseToken(signed)
	assert.Error(t, err)
}
