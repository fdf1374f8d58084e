package main

import (
	"log"
	"os"
	"strings"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/pkg/utils"

	"github.com/joho/godotenv"
)

// Seeder akun admin. Admin TIDAK bisa register lewat API,
// jadi dibuat sekali lewat command ini:
//
//	ADMIN_EMAIL=admin@gmail.com ADMIN_PASSWORD=... go run ./cmd/seed
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config.ConnectDB()

	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "CureLink Admin"
	}

	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL dan ADMIN_PASSWORD wajib diisi")
	}
	if !utils.IsValidEmail(email) {
		log.Fatal("ADMIN_EMAIL harus alamat Gmail yang valid")
	}
	if !utils.IsStrongPassword(password) {
		log.Fatal("ADMIN_PASSWORD kurang kuat (min 8 karakter, huruf besar+kecil, angka, simbol)")
	}

	// Kalau sudah ada, jangan dobel
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Akun admin sudah ada:", email)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Gagal hash password: ", err)
	}

	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatal("Gagal membuat akun admin: ", err)
	}

	log.Println("Akun admin berhasil dibuat:", email)
}
