package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookAppointment: pasien booking slot ke dokter (POST /appointments).
//
// Urutan pengecekan SENGAJA: aturan ketersediaan dokter dicek duluan
// (hari libur -> slot libur -> slot libur berulang), baru bentrok dengan
// booking lain. Dengan begitu pesan error yang keluar selalu alasan
// yang paling spesifik buat user.
func BookAppointment(c *gin.Context) {
	patientID, _ := c.Get("userID")

	var input models.BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "All fields are required", nil)
		return
	}

	parsed, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}
	day := utils.NormalizeDay(parsed)

	if !models.IsValidTimeSlot(input.TimeSlot) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid time slot", nil)
		return
	}

	// 1. Pastikan dokternya beneran ada
	var doctor models.User
	if err := config.DB.Where("id = ? AND role = ?", input.DoctorID, models.RoleDoctor).First(&doctor).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Doctor not found", nil)
		return
	}

	// 2. Cek buku ketersediaan dokter (kalau ada)
	var avail models.DoctorAvailability
	if err := config.DB.Where("doctor_id = ?", doctor.ID).First(&avail).Error; err == nil {
		// 2a. Satu hari penuh libur?
		var count int64
		config.DB.Model(&models.UnavailableDate{}).
			Where("availability_id = ? AND date = ?", avail.ID, day).
			Count(&count)
		if count > 0 {
			utils.APIResponse(c, http.StatusConflict, false, "Doctor is unavailable on that date", nil)
			return
		}

		// 2b. Slot spesifik di tanggal itu libur?
		config.DB.Model(&models.UnavailableSlot{}).
			Where("availability_id = ? AND date = ? AND time_slot = ?", avail.ID, day, input.TimeSlot).
			Count(&count)
		if count > 0 {
			utils.APIResponse(c, http.StatusConflict, false, "Doctor is unavailable at that time slot", nil)
			return
		}

		// 2c. Slot libur berulang (berlaku semua tanggal)?
		for _, slot := range avail.RecurringList() {
			if slot == input.TimeSlot {
				utils.APIResponse(c, http.StatusConflict, false, "Doctor is unavailable at that time slot", nil)
				return
			}
		}
	}

	// 3. Cek bentrok dengan booking aktif lain (Pending/Confirmed).
	// Ini pre-check biar pesannya enak; penjaga sesungguhnya ada di
	// unique index active_key pas INSERT di bawah.
	var existing int64
	config.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time_slot = ? AND status IN ?",
			doctor.ID, day, input.TimeSlot, []string{models.StatusPending, models.StatusConfirmed}).
		Count(&existing)
	if existing > 0 {
		utils.APIResponse(c, http.StatusConflict, false,
			"This time slot is already booked. Please choose another time slot.", nil)
		return
	}

	// 4. Simpan. Status awal selalu Pending.
	appointment := models.Appointment{
		PatientID: patientID.(uint64),
		DoctorID:  doctor.ID,
		Date:      day,
		TimeSlot:  input.TimeSlot,
		Status:    models.StatusPending,
	}
	key := appointment.BuildActiveKey()
	appointment.ActiveKey = &key

	if err := config.DB.Create(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Dua request rebutan slot yang sama, yang ini kalah.
			utils.APIResponse(c, http.StatusConflict, false,
				"This time slot is already booked. Please choose another time slot.", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error booking appointment", nil)
		return
	}

	// 5. Ambil ulang lengkap dengan data dokter & pasien buat response
	config.DB.Preload("Doctor").Preload("Patient").First(&appointment, appointment.ID)

	// Kabari dokternya (no-op kalau FCM mati / dokter ga punya token)
	utils.SendNotification(doctor.FCMToken, "New Appointment Request",
		fmt.Sprintf("%s booked %s on %s", appointment.Patient.Name, input.TimeSlot, day.Format("2006-01-02")),
		map[string]string{"appointment_id": fmt.Sprintf("%d", appointment.ID)})

	utils.APIResponse(c, http.StatusCreated, true, "Appointment booked successfully", gin.H{
		"appointment": appointment,
	})
}

// GetPatientAppointments: pasien melihat janji temunya sendiri
func GetPatientAppointments(c *gin.Context) {
	userID, _ := c.Get("userID")

	var appointments []models.Appointment
	config.DB.
		Preload("Doctor").
		Where("patient_id = ?", userID).
		Order("date desc").
		Find(&appointments)

	utils.APIResponse(c, http.StatusOK, true, "Appointments fetched", gin.H{
		"appointments": appointments,
	})
}

// GetDoctorAppointments: dokter melihat janji temu yang masuk
func GetDoctorAppointments(c *gin.Context) {
	userID, _ := c.Get("userID")

	var appointments []models.Appointment
	config.DB.
		Preload("Patient").
		Where("doctor_id = ?", userID).
		Order("date desc").
		Find(&appointments)

	utils.APIResponse(c, http.StatusOK, true, "Appointments fetched", gin.H{
		"appointments": appointments,
	})
}

// UpdateAppointmentStatus: dokter mengubah status janji temu miliknya.
// 404 kalau appointment ga ada sama sekali, 403 kalau ada tapi punya
// dokter lain. Jangan dibalik, frontend bedain dua kasus ini.
func UpdateAppointmentStatus(c *gin.Context) {
	doctorID, _ := c.Get("userID")
	appointmentID := c.Param("id")

	var input models.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Status is required", nil)
		return
	}

	if !models.IsValidStatus(input.Status) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid status", nil)
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", utils.StringToUint64(appointmentID)).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	if appointment.DoctorID != doctorID.(uint64) {
		utils.APIResponse(c, http.StatusForbidden, false, "Not authorized to update this appointment", nil)
		return
	}

	appointment.Status = input.Status

	// Jaga invariant "maksimal satu janji aktif per (dokter, hari, slot)":
	// Completed melepas kuncinya (slot bisa dibooking lagi),
	// Pending/Confirmed pegang kunci.
	if input.Status == models.StatusCompleted {
		appointment.ActiveKey = nil
	} else {
		key := appointment.BuildActiveKey()
		appointment.ActiveKey = &key
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Slot keburu diambil booking aktif lain setelah yang ini Completed
			utils.APIResponse(c, http.StatusConflict, false,
				"This time slot is already taken by another active appointment", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error updating appointment", nil)
		return
	}

	config.DB.Preload("Doctor").Preload("Patient").First(&appointment, appointment.ID)

	// Kabari pasiennya
	if appointment.Patient != nil {
		utils.SendNotification(appointment.Patient.FCMToken, "Appointment Update",
			fmt.Sprintf("Your appointment on %s %s is now %s",
				appointment.Date.Format("2006-01-02"), appointment.TimeSlot, appointment.Status),
			map[string]string{"appointment_id": fmt.Sprintf("%d", appointment.ID)})
	}

	utils.APIResponse(c, http.StatusOK, true, "Appointment status updated", gin.H{
		"appointment": appointment,
	})
}
