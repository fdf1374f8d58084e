package models

import (
	"fmt"
	"time"
)

// Status janji temu. Alurnya Pending -> Confirmed -> Completed,
// tidak ada status batal (keputusan produk, bukan lupa).
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
)

// TimeSlots adalah daftar slot setengah jam yang bisa dibooking.
// Label string ini KONTRAK WIRE dengan frontend, jangan diubah formatnya.
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
}

// IsValidTimeSlot cek label slot ada di daftar resmi
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsValidStatus cek label status dikenal
func IsValidStatus(status string) bool {
	return status == StatusPending || status == StatusConfirmed || status == StatusCompleted
}

// Appointment merepresentasikan tabel 'appointments'
type Appointment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PatientID uint64    `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint64    `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"not null;index" json:"date"` // Sudah dinormalisasi ke tengah malam UTC
	TimeSlot  string    `gorm:"size:20;not null" json:"time_slot"`
	Status    string    `gorm:"size:20;not null;default:'Pending'" json:"status"`

	// ActiveKey = "doctorID|tanggal|slot" selama status masih Pending/Confirmed,
	// NULL kalau sudah Completed. Unique index di kolom ini yang jadi
	// penjaga terakhir: dua request booking barengan ga mungkin dua-duanya
	// lolos, salah satu pasti kena duplicate key.
	ActiveKey *string `gorm:"size:64;uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relasi (Preload) biar response langsung bawa nama/email
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// BuildActiveKey menyusun kunci unik slot aktif untuk appointment ini
func (a *Appointment) BuildActiveKey() string {
	return fmt.Sprintf("%d|%s|%s", a.DoctorID, a.Date.Format("2006-01-02"), a.TimeSlot)
}

// Input booking dari pasien. Nama field camelCase ngikutin frontend lama.
type BookAppointmentInput struct {
	DoctorID uint64 `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// Input update status dari dokter
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}
