package handlers

import (
	"net/http"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers melihat semua akun, dikelompokkan per role
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	config.DB.Order("created_at desc").Find(&users)

	patients := []models.User{}
	doctors := []models.User{}
	admins := []models.User{}
	for _, u := range users {
		switch u.Role {
		case models.RolePatient:
			patients = append(patients, u)
		case models.RoleDoctor:
			doctors = append(doctors, u)
		case models.RoleAdmin:
			admins = append(admins, u)
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "Users fetched", gin.H{
		"total":    len(users),
		"patients": gin.H{"count": len(patients), "data": patients},
		"doctors":  gin.H{"count": len(doctors), "data": doctors},
		"admins":   gin.H{"count": len(admins), "data": admins},
	})
}

// AdminGetPatients melihat semua pasien
func AdminGetPatients(c *gin.Context) {
	var patients []models.User
	config.DB.
		Where("role = ?", models.RolePatient).
		Order("created_at desc").
		Find(&patients)

	utils.APIResponse(c, http.StatusOK, true, "Patients fetched", gin.H{
		"count":    len(patients),
		"patients": patients,
	})
}

// AdminGetDoctors melihat semua dokter
func AdminGetDoctors(c *gin.Context) {
	var doctors []models.User
	config.DB.
		Where("role = ?", models.RoleDoctor).
		Order("created_at desc").
		Find(&doctors)

	utils.APIResponse(c, http.StatusOK, true, "Doctors fetched", gin.H{
		"count":   len(doctors),
		"doctors": doctors,
	})
}

// AdminGetAppointments melihat semua janji temu di sistem
func AdminGetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	config.DB.
		Preload("Patient").
		Preload("Doctor").
		Order("date desc").
		Find(&appointments)

	utils.APIResponse(c, http.StatusOK, true, "Appointments fetched", gin.H{
		"count":        len(appointments),
		"appointments": appointments,
	})
}

// GetDashboardStats menampilkan angka ringkasan untuk dashboard admin
func GetDashboardStats(c *gin.Context) {
	var totalUsers, totalPatients, totalDoctors, totalAdmins int64
	var totalAppointments, pending, confirmed, completed int64

	config.DB.Model(&models.User{}).Count(&totalUsers)
	config.DB.Model(&models.User{}).Where("role = ?", models.RolePatient).Count(&totalPatients)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleDoctor).Count(&totalDoctors)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&totalAdmins)

	config.DB.Model(&models.Appointment{}).Count(&totalAppointments)
	config.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&pending)
	config.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusConfirmed).Count(&confirmed)
	config.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCompleted).Count(&completed)

	utils.APIResponse(c, http.StatusOK, true, "Dashboard stats", gin.H{
		"stats": gin.H{
			"users": gin.H{
				"total":    totalUsers,
				"patients": totalPatients,
				"doctors":  totalDoctors,
				"admins":   totalAdmins,
			},
			"appointments": gin.H{
				"total":     totalAppointments,
				"pending":   pending,
				"confirmed": confirmed,
				"completed": completed,
			},
		},
	})
}
