package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curelink-backend/internal/config"
	"curelink-backend/internal/models"
	"curelink-backend/internal/routes"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "Sup3r$ecret"

// setupTest menyiapkan DB sqlite in-memory (satu DB per test, pakai
// shared cache biar semua koneksi pool lihat data yang sama) dan router
// lengkap dengan middleware aslinya.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("gagal buka sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("gagal migrasi: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// createUser bikin akun langsung ke DB plus token login-nya
func createUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("gagal hash password: %v", err)
	}

	user := models.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("gagal create user: %v", err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("gagal generate token: %v", err)
	}
	return user, token
}

func doJSON(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type apiEnvelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()

	var env apiEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response bukan JSON envelope: %v (body=%s)", err, w.Body.String())
	}
	return env
}
