package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// DoctorAvailability adalah "buku merah" ketersediaan dokter.
// Satu record per dokter, dibuat otomatis saat pertama kali diakses.
type DoctorAvailability struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	DoctorID uint64 `gorm:"uniqueIndex;not null" json:"doctor_id"`

	// Slot yang libur di SEMUA tanggal (misal dokter ga pernah praktek jam 1 siang).
	// Disimpan sebagai JSON array of label slot.
	RecurringSlots datatypes.JSON `gorm:"type:json" json:"recurring_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UnavailableDates []UnavailableDate `gorm:"foreignKey:AvailabilityID" json:"unavailable_dates"`
	UnavailableSlots []UnavailableSlot `gorm:"foreignKey:AvailabilityID" json:"unavailable_slots"`
}

// UnavailableDate: satu hari penuh libur
type UnavailableDate struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	AvailabilityID uint64    `gorm:"not null;index" json:"-"`
	Date           time.Time `gorm:"not null" json:"date"` // Tengah malam UTC
}

// UnavailableSlot: satu slot di satu tanggal yang libur
type UnavailableSlot struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	AvailabilityID uint64    `gorm:"not null;index" json:"-"`
	Date           time.Time `gorm:"not null" json:"date"`
	TimeSlot       string    `gorm:"size:20;not null" json:"time_slot"`
}

// RecurringList membaca kolom JSON jadi slice biasa
func (a *DoctorAvailability) RecurringList() []string {
	var slots []string
	if len(a.RecurringSlots) > 0 {
		// Kalau JSON-nya korup ya sudah, anggap kosong
		_ = json.Unmarshal(a.RecurringSlots, &slots)
	}
	return slots
}

// SetRecurringList menulis slice balik ke kolom JSON
func (a *DoctorAvailability) SetRecurringList(slots []string) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	a.RecurringSlots = datatypes.JSON(raw)
	return nil
}

// Input tambah/hapus tanggal libur
type UnavailableDateInput struct {
	Date string `json:"date" binding:"required"`
}

// Input tambah/hapus slot libur di tanggal tertentu
type UnavailableSlotInput struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// Input slot libur berulang (berlaku semua tanggal)
type RecurringSlotInput struct {
	TimeSlot string `json:"timeSlot" binding:"required"`
}
