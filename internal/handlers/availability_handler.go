package handlers

import (
	"net/http"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// getOrCreateAvailability: ambil buku ketersediaan dokter,
// kalau belum ada bikin yang kosong. Semua endpoint availability lewat sini.
func getOrCreateAvailability(doctorID uint64) (models.DoctorAvailability, error) {
	var avail models.DoctorAvailability
	err := config.DB.Where("doctor_id = ?", doctorID).First(&avail).Error
	if err == nil {
		return avail, nil
	}

	avail = models.DoctorAvailability{DoctorID: doctorID}
	if err := avail.SetRecurringList([]string{}); err != nil {
		return avail, err
	}
	if err := config.DB.Create(&avail).Error; err != nil {
		return avail, err
	}
	return avail, nil
}

// loadFullAvailability: reload lengkap dengan child rows buat response
func loadFullAvailability(id uint64) models.DoctorAvailability {
	var avail models.DoctorAvailability
	config.DB.
		Preload("UnavailableDates").
		Preload("UnavailableSlots").
		First(&avail, id)
	return avail
}

// GetAvailability (GET /availability) - dokter melihat ledger miliknya sendiri
func GetAvailability(c *gin.Context) {
	doctorID, _ := c.Get("userID")

	avail, err := getOrCreateAvailability(doctorID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching availability", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Availability fetched", gin.H{
		"availability": loadFullAvailability(avail.ID),
	})
}

// AddUnavailableDate (POST /availability/unavailable-date)
func AddUnavailableDate(c *gin.Context) {
	doctorID, _ := c.Get("userID")

	var input models.UnavailableDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Date is required", nil)
		return
	}

	parsed, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}
	day := utils.NormalizeDay(parsed)

	avail, err := getOrCreateAvailability(doctorID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching availability", nil)
		return
	}

	// Tanggal yang sama ga boleh dobel
	var count int64
	config.DB.Model(&models.UnavailableDate{}).
		Where("availability_id = ? AND date = ?", avail.ID, day).
		Count(&count)
	if count > 0 {
		utils.APIResponse(c, http.StatusConflict, false, "This date is already marked as unavailable", nil)
		return
	}

	entry := models.UnavailableDate{AvailabilityID: avail.ID, Date: day}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error adding unavailable date", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Date marked as unavailable", gin.H{
		"availability": loadFullAvailability(avail.ID),
	})
}

// RemoveUnavailableDate (DELETE /availability/unavailable-date).
// Idempotent: hapus tanggal yang memang ga ada bukan error.
func RemoveUnavailableDate(c *gin.Context) {
	doctorID, _ := c.Get("userID")

	var input models.UnavailableDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Date is required", nil)
		return
	}

	parsed, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}
	day := utils.NormalizeDay(parsed)

	avail, err := getOrCreateAvailability(doctorID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching availability", nil)
		return
	}

	config.DB.
		Where("availability_id = ? AND date = ?", avail.ID, day).
		Delete(&models.UnavailableDate{})

	utils.APIResponse(c, http.StatusOK, true, "Date removed from unavailable dates", gin.H{
		"availability": loadFullAvailability(avail.ID),
	})
}

// AddUnavailableSlot (POST /availability/unavailable-slot)
func AddUnavailableSlot(c *gin.Context) {
	doctorID, _ := c.Get("userID")

	var input models.UnavailableSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Date and time slot are required", nil)
		return
	}

	if !models.IsValidTimeSlot(input.TimeSlot) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid time slot", nil)
		return
	}

	parsed, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}
	day := utils.NormalizeDay(parsed)

	avail, err := getOrCreateAvailability(doctorID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching availability", nil)
		return
	}

	// Pasangan (tanggal, slot) yang sama ga boleh dobel
	var count int64
	config.DB.Model(&models.UnavailableSlot{}).
		Where("availability_id = ? AND date = ? AND time_slot = ?", avail.ID, day, input.TimeSlot).
		Count(&count)
	if count > 0 {
		utils.APIResponse(c, http.StatusConflict, false, "This time slot is already marked as unavailable", nil)
		return
	}

	entry := models.UnavailableSlot{AvailabilityID: avail.ID, Date: day, TimeSlot: input.TimeSlot}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error adding unavailable time slot", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Time slot marked as unavailable", gin.H{
		"availability": loadFullAvailability(avail.ID),
	})
}

// RemoveUnavailableSlot (DELETE /availability/unavailable-slot). Idempotent.
func RemoveUnavailableSlot(c *gin.Context) {
	doctorID, _ := c.Get("userID")

	var input models.UnavailableSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Date and time slot are required", nil)
		return
	}

	parsed, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid date format", nil)
		return
	}
	day := utils.NormalizeDay(parsed)

	avail, err := getOrCreateAvailability(doctorID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching availability", nil)
		return
	}

	config.DB.
		Where("availability_id = ? AND date = ? AND time_slot = ?", avail.ID, day, input.TimeSlot).
		Delete(&models.UnavailableSlot{})

	utils.APIResponse(c, http.StatusOK, true, "Time slot removed from unavailable slots", gin.H{
		"availability": loadFullAvailability(avail.ID),
	})
}

// AddRecurringSlot (POST /availability/recurring-slot):
// slot ini libur di SEMUA tanggal, misal dokter ga pernah praktek jam 1 siang.
func AddRecurringSlot(c *gin.Context) {
	doctorID, _ := c.Get("userID")

	var input models.RecurringSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Time slot is required", nil)
		return
	}

	if !models.IsValidTimeSlot(input.TimeSlot) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid time slot", nil)
		return
	}

	avail, err := getOrCreateAvailability(doctorID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching availability", nil)
		return
	}

	slots := avail.RecurringList()
	for _, s := range slots {
		if s == input.TimeSlot {
			utils.APIResponse(c, http.StatusConflict, false, "This time slot is already marked as unavailable", nil)
			return
		}
	}

	slots = append(slots, input.TimeSlot)
	if err := avail.SetRecurringList(slots); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error adding recurring slot", nil)
		return
	}
	if err := config.DB.Model(&avail).Update("recurring_slots", avail.RecurringSlots).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error adding recurring slot", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Recurring slot marked as unavailable", gin.H{
		"availability": loadFullAvailability(avail.ID),
	})
}

// RemoveRecurringSlot (DELETE /availability/recurring-slot). Idempotent.
func RemoveRecurringSlot(c *gin.Context) {
	doctorID, _ := c.Get("userID")

	var input models.RecurringSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Time slot is required", nil)
		return
	}

	avail, err := getOrCreateAvailability(doctorID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error fetching availability", nil)
		return
	}

	kept := []string{}
	for _, s := range avail.RecurringList() {
		if s != input.TimeSlot {
			kept = append(kept, s)
		}
	}

	if err := avail.SetRecurringList(kept); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error removing recurring slot", nil)
		return
	}
	if err := config.DB.Model(&avail).Update("recurring_slots", avail.RecurringSlots).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error removing recurring slot", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Recurring slot removed", gin.H{
		"availability": loadFullAvailability(avail.ID),
	})
}
