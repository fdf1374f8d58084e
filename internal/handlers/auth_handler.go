package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// REGISTER
func Register(c *gin.Context) {
	var input models.RegisterInput

	// 1. Validasi Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Name, email, and password are required", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// 2. Validasi format email (wajib Gmail, aturan produk)
	if !utils.IsValidEmail(email) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Please enter a valid Gmail address", nil)
		return
	}

	// 3. Validasi kekuatan password
	if !utils.IsStrongPassword(input.Password) {
		utils.APIResponse(c, http.StatusBadRequest, false,
			"Password must be at least 8 characters and contain uppercase, lowercase, number, and special character", nil)
		return
	}

	// 4. Validasi role. Admin TIDAK boleh register lewat sini.
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = models.RolePatient
	}
	if role != models.RolePatient && role != models.RoleDoctor {
		utils.APIResponse(c, http.StatusBadRequest, false,
			"Invalid role. You can only register as Patient or Doctor.", nil)
		return
	}

	// 5. Cek email sudah terdaftar atau belum
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "User with this email already exists", nil)
		return
	}

	// 6. Hash password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error creating account", nil)
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// Field khusus dokter
	if role == models.RoleDoctor {
		user.Degree = strings.TrimSpace(input.Degree)
		user.Specialization = strings.TrimSpace(input.Specialization)
	}

	// 7. Simpan ke Database
	if err := config.DB.Create(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "User with this email already exists", nil)
		return
	}

	// 8. Generate token biar user langsung login setelah register
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error creating account", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Account created successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// LOGIN
func Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validasi Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email and password are required", nil)
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// 2. Cari User berdasarkan Email
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid email or password", nil)
		return
	}

	// 3. Kalau frontend minta role tertentu (tab login Pasien/Dokter/Admin),
	// rolenya harus cocok dengan yang tersimpan. Case-insensitive.
	if input.Role != "" && !strings.EqualFold(user.Role, input.Role) {
		utils.APIResponse(c, http.StatusForbidden, false,
			fmt.Sprintf("Access denied. This account is registered as %s, not %s", user.Role, input.Role), nil)
		return
	}

	// 4. Cek Password
	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid email or password", nil)
		return
	}

	// Jika device mengirim token FCM, simpan untuk push notif.
	// Kita hanya update kolom fcm_token agar efisien.
	if input.FCMToken != "" {
		config.DB.Model(&user).Update("fcm_token", input.FCMToken)
	}

	// 5. Generate JWT Token
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error logging in", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetCurrentUser mengambil data user yang sedang login (GET /auth/me)
func GetCurrentUser(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	// PasswordHash ga ikut kebawa karena json:"-"
	utils.APIResponse(c, http.StatusOK, true, "Current user", gin.H{"user": user})
}
