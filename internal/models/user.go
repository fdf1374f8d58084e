package models

import (
	"time"

	"gorm.io/gorm"
)

// Role disimpan sebagai string biar gampang dibaca di DB.
// Admin TIDAK bisa register sendiri, dibuat lewat cmd/seed.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// User merepresentasikan tabel 'users' di database
type User struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"` // Disimpan lowercase
	PasswordHash string `gorm:"not null" json:"-"`                          // json:"-" artinya field ini TIDAK AKAN dikirim balik ke frontend (rahasia)
	Role         string `gorm:"size:20;not null;default:'patient'" json:"role"`

	// Khusus dokter (kosong untuk pasien/admin)
	Degree         string `gorm:"size:100" json:"degree,omitempty"`
	Specialization string `gorm:"size:100" json:"specialization,omitempty"`

	// Token FCM untuk push notif, diisi saat login dari mobile/web
	FCMToken string `gorm:"size:255" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Struct untuk menangkap Input Register dari user
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"` // Default patient, hanya patient/doctor yang boleh
	// Opsional, dipakai kalau register sebagai dokter
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
}

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`      // Opsional: kalau diisi, harus cocok dengan role di DB
	FCMToken string `json:"fcm_token"` // Opsional: token push notif device
}

// Struct inputan dokter saat update kualifikasi
type UpdateProfileInput struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
}
