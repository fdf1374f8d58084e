package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// UploadRecord (POST /records/upload, multipart):
// pasien upload dokumen miliknya sendiri, dokter upload atas nama pasien
// (wajib sebut email pasiennya).
func UploadRecord(c *gin.Context) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")
	role := userRole.(string)

	// Role lain (admin) ga boleh pegang dokumen medis
	if role != models.RolePatient && role != models.RoleDoctor {
		utils.APIResponse(c, http.StatusForbidden, false, "Only patients and doctors can upload records", nil)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "No file uploaded", nil)
		return
	}

	category := strings.TrimSpace(c.PostForm("category"))
	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	prescription := strings.TrimSpace(c.PostForm("prescription"))
	diagnosis := strings.TrimSpace(c.PostForm("diagnosis"))
	patientEmail := strings.TrimSpace(c.PostForm("patientEmail"))

	if !models.IsValidCategory(category) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Valid category is required (prescription or report)", nil)
		return
	}
	if title == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "Title is required", nil)
		return
	}

	// Tentukan dokumen ini milik pasien siapa
	patientID := userID.(uint64)
	record := models.PatientRecord{
		Category:    category,
		Title:       title,
		Description: description,
		CreatedBy:   models.RolePatient,
	}

	if role == models.RoleDoctor {
		if patientEmail == "" {
			utils.APIResponse(c, http.StatusBadRequest, false, "Patient email is required when uploading as a doctor", nil)
			return
		}

		var patient models.User
		err := config.DB.
			Where("email = ? AND role = ?", strings.ToLower(patientEmail), models.RolePatient).
			First(&patient).Error
		if err != nil {
			utils.APIResponse(c, http.StatusNotFound, false, "Patient not found with the provided email", nil)
			return
		}

		patientID = patient.ID
		doctorID := userID.(uint64)
		record.DoctorID = &doctorID
		record.LastUpdatedBy = &doctorID
		record.Prescription = prescription
		record.Diagnosis = diagnosis
		record.CreatedBy = models.RoleDoctor
	}
	record.PatientID = patientID

	// Simpan file fisik dengan nama opaque (uuid), nama asli disimpan di DB
	dir := uploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error uploading record", nil)
		return
	}
	storedPath := filepath.Join(dir, uuid.New().String()+filepath.Ext(file.Filename))

	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error uploading record", nil)
		return
	}

	fileType := file.Header.Get("Content-Type")
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	record.FileName = filepath.Base(file.Filename)
	record.FilePath = storedPath
	record.FileSize = file.Size
	record.FileType = fileType

	if err := config.DB.Create(&record).Error; err != nil {
		// File sudah keburu nulis ke disk, bersihin biar ga jadi sampah.
		// Best-effort saja, bukan transaksi.
		os.Remove(storedPath)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error uploading record", nil)
		return
	}

	config.DB.Preload("Doctor").Preload("Patient").First(&record, record.ID)

	utils.APIResponse(c, http.StatusCreated, true, "Record uploaded successfully", gin.H{
		"record": record,
	})
}

// GetMyRecords (GET /records/my-records) - pasien melihat dokumennya sendiri
func GetMyRecords(c *gin.Context) {
	userID, _ := c.Get("userID")

	var records []models.PatientRecord
	config.DB.
		Preload("Doctor").
		Where("patient_id = ?", userID).
		Order("created_at desc").
		Find(&records)

	utils.APIResponse(c, http.StatusOK, true, "Records fetched", gin.H{
		"count":   len(records),
		"records": records,
	})
}

// GetPatientRecords (GET /records/patient/:username) - dokter cari
// dokumen pasien berdasarkan email
func GetPatientRecords(c *gin.Context) {
	username := strings.ToLower(c.Param("username"))

	var patient models.User
	err := config.DB.
		Where("email = ? AND role = ?", username, models.RolePatient).
		First(&patient).Error
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	var records []models.PatientRecord
	config.DB.
		Preload("Doctor").
		Where("patient_id = ?", patient.ID).
		Order("created_at desc").
		Find(&records)

	utils.APIResponse(c, http.StatusOK, true, "Records fetched", gin.H{
		"patient": gin.H{
			"id":    patient.ID,
			"name":  patient.Name,
			"email": patient.Email,
		},
		"count":   len(records),
		"records": records,
	})
}

// UpdateRecord (PUT /records/:id/update): dokter mengisi/menimpa resep
// dan diagnosis. Dokter MANAPUN boleh, bukan cuma yang upload; record
// lalu tercatat atas nama dokter yang terakhir mengubah.
func UpdateRecord(c *gin.Context) {
	doctorID, _ := c.Get("userID")
	recordID := utils.StringToUint64(c.Param("id"))

	var input models.UpdateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", nil)
		return
	}

	var record models.PatientRecord
	if err := config.DB.First(&record, "id = ?", recordID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Record not found", nil)
		return
	}

	updates := map[string]interface{}{
		"doctor_id":       doctorID,
		"last_updated_by": doctorID,
	}
	if input.Prescription != nil {
		updates["prescription"] = strings.TrimSpace(*input.Prescription)
	}
	if input.Diagnosis != nil {
		updates["diagnosis"] = strings.TrimSpace(*input.Diagnosis)
	}

	if err := config.DB.Model(&record).Updates(updates).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error updating record", nil)
		return
	}

	config.DB.Preload("Doctor").Preload("Patient").First(&record, record.ID)

	utils.APIResponse(c, http.StatusOK, true, "Record updated successfully", gin.H{
		"record": record,
	})
}

// GetRecordFile (GET /records/:id/file): stream file dengan nama asli
// dan MIME aslinya. Pasien cuma boleh file miliknya, dokter boleh semua.
func GetRecordFile(c *gin.Context) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")
	recordID := utils.StringToUint64(c.Param("id"))

	var record models.PatientRecord
	if err := config.DB.First(&record, "id = ?", recordID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Record not found", nil)
		return
	}

	switch userRole.(string) {
	case models.RolePatient:
		if record.PatientID != userID.(uint64) {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
			return
		}
	case models.RoleDoctor:
		// Dokter boleh buka dokumen pasien manapun
	default:
		utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
		return
	}

	if _, err := os.Stat(record.FilePath); err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "File not found", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", record.FileName))
	c.Header("Content-Type", record.FileType)
	c.File(record.FilePath)
}

// DeleteRecord (DELETE /records/:id): hanya pasien pemiliknya.
// File fisik dihapus dulu (kalau masih ada), baru row di DB.
func DeleteRecord(c *gin.Context) {
	userID, _ := c.Get("userID")
	recordID := utils.StringToUint64(c.Param("id"))

	var record models.PatientRecord
	if err := config.DB.First(&record, "id = ?", recordID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Record not found", nil)
		return
	}

	if record.PatientID != userID.(uint64) {
		utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
		return
	}

	// File yang sudah keburu hilang dari disk ya diabaikan saja
	os.Remove(record.FilePath)

	if err := config.DB.Delete(&record).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Error deleting record", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Record deleted successfully", nil)
}
