package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func bookBody(doctorID uint64, date, slot string) map[string]interface{} {
	return map[string]interface{}{
		"doctorId": doctorID,
		"date":     date,
		"timeSlot": slot,
	}
}

func TestBookAppointment_Lifecycle(t *testing.T) {
	r := setupTest(t)

	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)
	_, patient2Token := createUser(t, "Wati", "wati@gmail.com", models.RolePatient)

	// 1. Pasien booking -> Pending
	w := doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusCreated, w.Code)

	env := decode(t, w)
	appt := env.Data["appointment"].(map[string]interface{})
	assert.Equal(t, models.StatusPending, appt["status"])
	// Response bawa data dokter buat ditampilkan frontend
	assert.Equal(t, "Dr. Sari", appt["doctor"].(map[string]interface{})["name"])

	apptID := uint64(appt["id"].(float64))

	// 2. Dokter konfirmasi
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/appointments/%d", apptID), doctorToken,
		map[string]string{"status": models.StatusConfirmed})
	assert.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w)
	assert.Equal(t, models.StatusConfirmed, env.Data["appointment"].(map[string]interface{})["status"])

	// 3. Selama masih aktif, slot yang sama ga bisa dibooking orang lain
	w = doJSON(r, http.MethodPost, "/api/appointments", patient2Token,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// 4. Dokter menyelesaikan
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/appointments/%d", apptID), doctorToken,
		map[string]string{"status": models.StatusCompleted})
	assert.Equal(t, http.StatusOK, w.Code)

	// 5. Setelah Completed, slotnya lepas lagi
	w = doJSON(r, http.MethodPost, "/api/appointments", patient2Token,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookAppointment_DoubleBookingConflict(t *testing.T) {
	r := setupTest(t)

	doctor, _ := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	_, p1Token := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)
	_, p2Token := createUser(t, "Wati", "wati@gmail.com", models.RolePatient)

	w := doJSON(r, http.MethodPost, "/api/appointments", p1Token,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/appointments", p2Token,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Booking pertama ga boleh berubah, dan ga ada row nyelonong masuk
	var count int64
	config.DB.Model(&models.Appointment{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var appt models.Appointment
	config.DB.First(&appt)
	assert.Equal(t, models.StatusPending, appt.Status)

	// Slot lain di hari yang sama tetap bisa
	w = doJSON(r, http.MethodPost, "/api/appointments", p2Token,
		bookBody(doctor.ID, "2025-03-10", "09:30 AM"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookAppointment_UnavailableDate(t *testing.T) {
	r := setupTest(t)

	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)

	w := doJSON(r, http.MethodPost, "/api/availability/unavailable-date", doctorToken,
		map[string]string{"date": "2025-03-10"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Hari libur menolak SEMUA slot, apapun labelnya
	for _, slot := range []string{"09:00 AM", "02:00 PM", "05:30 PM"} {
		w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
			bookBody(doctor.ID, "2025-03-10", slot))
		assert.Equal(t, http.StatusConflict, w.Code, "slot=%s", slot)
	}

	// Hari lain aman
	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "2025-03-11", "09:00 AM"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookAppointment_UnavailableSlot(t *testing.T) {
	r := setupTest(t)

	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)

	w := doJSON(r, http.MethodPost, "/api/availability/unavailable-slot", doctorToken,
		map[string]string{"date": "2025-03-10", "timeSlot": "09:00 AM"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Slot yang diliburkan kena tolak
	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Slot lain di hari yang sama tetap jalan
	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "2025-03-10", "09:30 AM"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookAppointment_RecurringSlot(t *testing.T) {
	r := setupTest(t)

	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)

	w := doJSON(r, http.MethodPost, "/api/availability/recurring-slot", doctorToken,
		map[string]string{"timeSlot": "02:00 PM"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Berlaku di tanggal manapun
	for _, date := range []string{"2025-03-10", "2025-06-01"} {
		w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
			bookBody(doctor.ID, date, "02:00 PM"))
		assert.Equal(t, http.StatusConflict, w.Code, "date=%s", date)
	}

	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "2025-03-10", "02:30 PM"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookAppointment_Validation(t *testing.T) {
	r := setupTest(t)

	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)

	// Field kurang
	w := doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		map[string]interface{}{"doctorId": doctor.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Label slot ngawur
	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "2025-03-10", "13:00"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tanggal ngawur
	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "10/03/2025", "09:00 AM"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Dokter ga ada
	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(99999, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Dokter ga boleh booking
	w = doJSON(r, http.MethodPost, "/api/appointments", doctorToken,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Tanpa token
	w = doJSON(r, http.MethodPost, "/api/appointments", "",
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateAppointmentStatus_Authorization(t *testing.T) {
	r := setupTest(t)

	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	_, otherDoctorToken := createUser(t, "Dr. Joko", "joko@gmail.com", models.RoleDoctor)
	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)

	w := doJSON(r, http.MethodPost, "/api/appointments", patientToken,
		bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	apptID := uint64(env.Data["appointment"].(map[string]interface{})["id"].(float64))

	// Appointment ga ada -> 404
	w = doJSON(r, http.MethodPut, "/api/appointments/99999", doctorToken,
		map[string]string{"status": models.StatusConfirmed})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Ada tapi punya dokter lain -> 403
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/appointments/%d", apptID), otherDoctorToken,
		map[string]string{"status": models.StatusConfirmed})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Status ngawur -> 400
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/appointments/%d", apptID), doctorToken,
		map[string]string{"status": "Cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Pasien ga boleh update status
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/appointments/%d", apptID), patientToken,
		map[string]string{"status": models.StatusConfirmed})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetAppointments_Scoped(t *testing.T) {
	r := setupTest(t)

	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)
	doctor2, _ := createUser(t, "Dr. Joko", "joko@gmail.com", models.RoleDoctor)
	_, p1Token := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)
	_, p2Token := createUser(t, "Wati", "wati@gmail.com", models.RolePatient)

	doJSON(r, http.MethodPost, "/api/appointments", p1Token, bookBody(doctor.ID, "2025-03-10", "09:00 AM"))
	doJSON(r, http.MethodPost, "/api/appointments", p1Token, bookBody(doctor2.ID, "2025-03-11", "09:00 AM"))
	doJSON(r, http.MethodPost, "/api/appointments", p2Token, bookBody(doctor.ID, "2025-03-10", "09:30 AM"))

	// Pasien cuma lihat punyanya sendiri
	w := doJSON(r, http.MethodGet, "/api/appointments/patient", p1Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Len(t, env.Data["appointments"], 2)

	// Dokter cuma lihat yang masuk ke dia
	w = doJSON(r, http.MethodGet, "/api/appointments/doctor", doctorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w)
	assert.Len(t, env.Data["appointments"], 2)
}
