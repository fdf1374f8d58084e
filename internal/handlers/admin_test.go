package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"curelink-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func appointmentID(t *testing.T, w *httptest.ResponseRecorder) uint64 {
	t.Helper()
	env := decode(t, w)
	appt, ok := env.Data["appointment"].(map[string]interface{})
	if !ok {
		t.Fatalf("response tanpa appointment: %s", w.Body.String())
	}
	return uint64(appt["id"].(float64))
}

func TestAdminEndpoints_AdminOnly(t *testing.T) {
	r := setupTest(t)

	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)
	_, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)

	for _, path := range []string{
		"/api/admin/users",
		"/api/admin/patients",
		"/api/admin/doctors",
		"/api/admin/appointments",
		"/api/admin/stats",
	} {
		w := doJSON(r, http.MethodGet, path, patientToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)

		w = doJSON(r, http.MethodGet, path, doctorToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)

		w = doJSON(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminUsers_GroupedByRole(t *testing.T) {
	r := setupTest(t)

	_, adminToken := createUser(t, "Admin", "admin@gmail.com", models.RoleAdmin)
	createUser(t, "Budi", "budi@gmail.com", models.RolePatient)
	createUser(t, "Wati", "wati@gmail.com", models.RolePatient)
	createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)

	w := doJSON(r, http.MethodGet, "/api/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, float64(4), env.Data["total"])
	assert.Equal(t, float64(2), env.Data["patients"].(map[string]interface{})["count"])
	assert.Equal(t, float64(1), env.Data["doctors"].(map[string]interface{})["count"])
	assert.Equal(t, float64(1), env.Data["admins"].(map[string]interface{})["count"])

	w = doJSON(r, http.MethodGet, "/api/admin/patients", adminToken, nil)
	env = decode(t, w)
	assert.Equal(t, float64(2), env.Data["count"])

	w = doJSON(r, http.MethodGet, "/api/admin/doctors", adminToken, nil)
	env = decode(t, w)
	assert.Equal(t, float64(1), env.Data["count"])

	// Password hash ga boleh bocor di JSON
	assert.NotContains(t, w.Body.String(), "password")
}

func TestDashboardStats(t *testing.T) {
	r := setupTest(t)

	_, adminToken := createUser(t, "Admin", "admin@gmail.com", models.RoleAdmin)
	_, patientToken := createUser(t, "Budi", "budi@gmail.com", models.RolePatient)
	doctor, doctorToken := createUser(t, "Dr. Sari", "sari@gmail.com", models.RoleDoctor)

	// Dua janji: satu dibiarkan Pending, satu di-Confirm dokter
	w := doJSON(r, http.MethodPost, "/api/appointments", patientToken, map[string]interface{}{
		"doctorId": doctor.ID, "date": "2025-03-10", "timeSlot": "09:00 AM",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/appointments", patientToken, map[string]interface{}{
		"doctorId": doctor.ID, "date": "2025-03-10", "timeSlot": "10:00 AM",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	confirmID := appointmentID(t, w)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/appointments/%d", confirmID), doctorToken,
		map[string]string{"status": models.StatusConfirmed})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)

	stats := env.Data["stats"].(map[string]interface{})
	users := stats["users"].(map[string]interface{})
	assert.Equal(t, float64(3), users["total"])
	assert.Equal(t, float64(1), users["patients"])
	assert.Equal(t, float64(1), users["doctors"])
	assert.Equal(t, float64(1), users["admins"])

	appts := stats["appointments"].(map[string]interface{})
	assert.Equal(t, float64(2), appts["total"])
	assert.Equal(t, float64(1), appts["pending"])
	assert.Equal(t, float64(1), appts["confirmed"])
	assert.Equal(t, float64(0), appts["completed"])

	// Admin lihat daftar janji seluruh sistem
	w = doJSON(r, http.MethodGet, "/api/admin/appointments", adminToken, nil)
	env = decode(t, w)
	assert.Equal(t, float64(2), env.Data["count"])
}
