package utils

import (
	"time"

	"backoffice/constants"
	"backoffice/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret []byte

// SetJWTSecret injects the signing secret at startup; configuration owns the
// value, this package only holds it.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func JwtSecret() []byte {
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("supersecretkey")
	}
	return jwtSecret
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	return string(bytes), err
}

func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	)
	return err == nil
}

func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		claims,
	)

	return token.SignedString(JwtSecret())
}

// CanAssignDownstream reports whether an actor holding assignerRole may hand
// a task to assignee: the assignee must sit exactly one tier below in the
// role order.
func CanAssignDownstream(assignerRole string, assignee models.User) bool {
	below, ok := constants.RoleBelow(assignerRole)
	if !ok {
		return false
	}
	return assignee.Role == below
}
