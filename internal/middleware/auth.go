package middleware

import (
	"net/http"
	"strings"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "No token, authorization denied", nil)
			c.Abort()
			return
		}

		// 2. Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token format", nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 3. Validasi Token
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token is not valid", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token is not valid", nil)
			c.Abort()
			return
		}

		// AMAN: JWT parse number as float64 -> Convert ke uint64
		var userID uint64
		if val, ok := claims["user_id"].(float64); ok {
			userID = uint64(val)
		}

		// 4. Ambil ulang user dari DB. Role di-resolve tiap request,
		// JANGAN percaya role yang nempel di token lama.
		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Account not found", nil)
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Set("userEmail", user.Email)
		c.Set("userName", user.Name)

		c.Next()
	}
}

// requireRole: satu pintu pengecekan role, handler ga perlu cek ulang
func requireRole(role string, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists || userRole.(string) != role {
			utils.APIResponse(c, http.StatusForbidden, false, message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PatientOnly: hanya akun pasien
func PatientOnly() gin.HandlerFunc {
	return requireRole(models.RolePatient, "Access denied. Patients only.")
}

// DoctorOnly: hanya akun dokter
func DoctorOnly() gin.HandlerFunc {
	return requireRole(models.RoleDoctor, "Access denied. Doctors only.")
}

// AdminOnly: hanya akun admin
func AdminOnly() gin.HandlerFunc {
	return requireRole(models.RoleAdmin, "Access denied. Admin privileges required.")
}
