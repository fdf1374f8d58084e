package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken membuat JWT string yang berisi User ID.
// Role TIDAK kita percaya dari token; middleware selalu ambil ulang dari DB
// biar kalau role user berubah, efeknya langsung kerasa.
func GenerateToken(userID uint64) (string, error) {
	// Kunci Rahasia (Sebaiknya simpan di .env dengan nama JWT_SECRET)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "curelink-secret-key" // Fallback kalau .env lupa diisi
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // Token berlaku 7 hari
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken memverifikasi apakah token valid atau tidak
func ValidateToken(encodedToken string) (*jwt.Token, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "curelink-secret-key"
	}

	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		// Validasi algoritma enkripsi (harus HMAC)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
}
