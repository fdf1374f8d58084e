package routes

import (
	"curelink-backend/internal/handlers"
	"curelink-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		// 1. PUBLIC ROUTES
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// 2. PROTECTED ROUTES (Harus Login / Punya Token).
		// Role dicek sekali di sini lewat middleware, bukan diulang-ulang
		// di dalam handler.
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", handlers.GetCurrentUser)

			// MODULE USER
			protected.GET("/users/doctors", handlers.GetAllDoctors)
			protected.PUT("/users/profile", middleware.DoctorOnly(), handlers.UpdateProfile)

			// MODULE APPOINTMENT
			appointments := protected.Group("/appointments")
			{
				appointments.POST("", middleware.PatientOnly(), handlers.BookAppointment)
				appointments.GET("/patient", middleware.PatientOnly(), handlers.GetPatientAppointments)
				appointments.GET("/doctor", middleware.DoctorOnly(), handlers.GetDoctorAppointments)
				appointments.PUT("/:id", middleware.DoctorOnly(), handlers.UpdateAppointmentStatus)
			}

			// MODULE AVAILABILITY (Khusus Dokter, masing-masing ledger sendiri)
			availability := protected.Group("/availability")
			availability.Use(middleware.DoctorOnly())
			{
				availability.GET("", handlers.GetAvailability)
				availability.POST("/unavailable-date", handlers.AddUnavailableDate)
				availability.DELETE("/unavailable-date", handlers.RemoveUnavailableDate)
				availability.POST("/unavailable-slot", handlers.AddUnavailableSlot)
				availability.DELETE("/unavailable-slot", handlers.RemoveUnavailableSlot)
				availability.POST("/recurring-slot", handlers.AddRecurringSlot)
				availability.DELETE("/recurring-slot", handlers.RemoveRecurringSlot)
			}

			// MODULE PATIENT RECORD
			records := protected.Group("/records")
			{
				records.POST("/upload", handlers.UploadRecord) // Pasien & dokter, dicek di handler
				records.GET("/my-records", middleware.PatientOnly(), handlers.GetMyRecords)
				records.GET("/patient/:username", middleware.DoctorOnly(), handlers.GetPatientRecords)
				records.PUT("/:id/update", middleware.DoctorOnly(), handlers.UpdateRecord)
				records.GET("/:id/file", handlers.GetRecordFile) // Pasien pemilik / dokter, dicek di handler
				records.DELETE("/:id", middleware.PatientOnly(), handlers.DeleteRecord)
			}

			// MODULE ADMIN
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/users", handlers.AdminGetAllUsers)
				admin.GET("/patients", handlers.AdminGetPatients)
				admin.GET("/doctors", handlers.AdminGetDoctors)
				admin.GET("/appointments", handlers.AdminGetAppointments)
				admin.GET("/stats", handlers.GetDashboardStats)
			}
		}
	}
}
