package models

import "time"

// Kategori dokumen medis
const (
	CategoryPrescription = "prescription"
	CategoryReport       = "report"
)

// IsValidCategory cek kategori dikenal
func IsValidCategory(category string) bool {
	return category == CategoryPrescription || category == CategoryReport
}

// PatientRecord merepresentasikan tabel 'patient_records':
// dokumen medis (resep/hasil lab) milik pasien, bisa diupload
// pasien sendiri atau dokter atas nama pasien.
type PatientRecord struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	PatientID uint64  `gorm:"not null;index" json:"patient_id"`
	DoctorID  *uint64 `gorm:"index" json:"doctor_id"` // NULL kalau pasien upload sendiri

	Category    string `gorm:"size:20;not null" json:"category"` // prescription / report
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Info file fisik. FilePath itu path opaque di disk (nama uuid),
	// FileName nama asli dari user untuk ditampilkan balik.
	FileName string `gorm:"size:255;not null" json:"file_name"`
	FilePath string `gorm:"size:255;not null" json:"-"`
	FileSize int64  `gorm:"not null" json:"file_size"`
	FileType string `gorm:"size:100;not null" json:"file_type"`

	// Catatan dokter, boleh diisi/ditimpa dokter manapun
	Prescription string `gorm:"type:text" json:"prescription"`
	Diagnosis    string `gorm:"type:text" json:"diagnosis"`

	CreatedBy     string  `gorm:"size:20;default:'patient'" json:"created_by"` // patient / doctor
	LastUpdatedBy *uint64 `json:"last_updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// Input update catatan dokter. Pakai pointer biar bisa bedain
// "field ga dikirim" vs "dikirim string kosong" (string kosong = hapus isi).
type UpdateRecordInput struct {
	Prescription *string `json:"prescription"`
	Diagnosis    *string `json:"diagnosis"`
}
