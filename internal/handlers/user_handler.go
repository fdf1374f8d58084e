package handlers

import (
	"net/http"
	"strings"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetAllDoctors menampilkan daftar dokter untuk halaman booking
func GetAllDoctors(c *gin.Context) {
	var doctors []models.User
	config.DB.
		Where("role = ?", models.RoleDoctor).
		Order("name asc").
		Find(&doctors)

	utils.APIResponse(c, http.StatusOK, true, "Doctors fetched", gin.H{
		"count":   len(doctors),
		"doctors": doctors,
	})
}

// UpdateProfile dipakai dokter untuk mengisi gelar & spesialisasi
func UpdateProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input models.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	// Cuma field yang dikirim yang diupdate
	updates := map[string]interface{}{}
	if input.Degree != "" {
		updates["degree"] = strings.TrimSpace(input.Degree)
	}
	if input.Specialization != "" {
		updates["specialization"] = strings.TrimSpace(input.Specialization)
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Error updating profile", nil)
			return
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "Profile updated successfully", gin.H{"user": user})
}
