package utils

import (
	"errors"
	"time"
)

// Frontend kadang kirim "2025-03-10", kadang full ISO dari date picker.
// Dua-duanya kita terima, sisanya ditolak.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDate membaca tanggal dari request body
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date format")
}

// NormalizeDay membuang jam/menit/detik, sisain tanggalnya saja (UTC).
// Semua perbandingan tanggal di aplikasi ini per-hari kalender,
// biar ga meleset gara-gara beda timezone client vs server.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay cek apakah dua waktu jatuh di hari kalender yang sama
func SameDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b))
}
