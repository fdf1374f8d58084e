package config

import (
	"fmt"
	"log"
	"os"

	"curelink-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB adalah koneksi global yang dipakai semua handler
var DB *gorm.DB

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// ConnectDB membuka koneksi MySQL dan menjalankan migrasi
func ConnectDB() {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		getEnv("DB_USER", "root"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "curelink"),
	)

	// TranslateError penting: pelanggaran unique index (misal dua booking
	// rebutan slot yang sama) harus muncul sebagai gorm.ErrDuplicatedKey
	// biar handler bisa balas 409, bukan 500.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Gagal konek database: ", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("Gagal migrasi database: ", err)
	}

	log.Println("Database Connected & Migrated!")
}

// Migrate menjalankan AutoMigrate semua tabel.
// Dipisah dari ConnectDB biar bisa dipakai test dengan DB lain.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DoctorAvailability{},
		&models.UnavailableDate{},
		&models.UnavailableSlot{},
		&models.Appointment{},
		&models.PatientRecord{},
	)
}
