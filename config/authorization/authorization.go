package authorization

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"meditrack/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "meditrack-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken issues the session credential returned at login: subject is
// the human-readable identifier (patientId / doctorId), role decides what the
// capability check permits. Valid for 24 hours.
func GenerateToken(subject string, role string, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func ValidateToken(encodedToken string) (*jwt.Token, error) {
	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
}

/*
* Require a Bearer token on every record-access route
* Parse and verify it, then stash subject and role in the gin context
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.TOKEN_NOT_PROVIDED)))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.TOKEN_INVALID)))
			c.Abort()
			return
		}

		token, err := ValidateToken(parts[1])
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.TOKEN_INVALID)))
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.TOKEN_INVALID)))
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		c.Set("subject", sub)
		c.Set("role", role)

		c.Next()
	}
}

// RequirePatientAccess gates the patient-namespace record routes: the patient
// themself, or any doctor. Possession of the identifier alone is not enough.
func RequirePatientAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == RoleDoctor {
			c.Next()
			return
		}
		if role == RolePatient && c.GetString("subject") == c.Param("patientId") {
			c.Next()
			return
		}
		c.JSON(http.StatusForbidden, util.FailedResponse(errors.New(util.ACCESS_DENIED)))
		c.Abort()
	}
}

// RequireDoctor gates the doctor-namespace record routes.
func RequireDoctor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != RoleDoctor {
			c.JSON(http.StatusForbidden, util.FailedResponse(errors.New(util.ACCESS_DENIED)))
			c.Abort()
			return
		}
		c.Next()
	}
}
