package utils

import "regexp"

// Email wajib Gmail. Aturan produk dari tim frontend, jangan dilonggarin
// tanpa sepakat bareng (register & login dua-duanya pakai ini).
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// IsValidEmail cek format alamat email
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
