package http

import (
	"net/http"

	"medifriend/internal/delivery/http/handler"
	"medifriend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                    *mux.Router
	authHandler               *handler.AuthHandler
	doctorHandler             *handler.DoctorHandler
	patientAppointmentHandler *handler.PatientAppointmentHandler
	doctorAppointmentHandler  *handler.DoctorAppointmentHandler
	prescriptionHandler       *handler.PrescriptionHandler
	uploadHandler             *handler.UploadHandler
	notificationHandler       *handler.NotificationHandler
	assistantHandler          *handler.AssistantHandler
	authMiddleware            *middleware.AuthMiddleware
	corsMiddleware            *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientAppointmentHandler *handler.PatientAppointmentHandler,
	doctorAppointmentHandler *handler.DoctorAppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	uploadHandler *handler.UploadHandler,
	notificationHandler *handler.NotificationHandler,
	assistantHandler *handler.AssistantHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                    mux.NewRouter(),
		authHandler:               authHandler,
		doctorHandler:             doctorHandler,
		patientAppointmentHandler: patientAppointmentHandler,
		doctorAppointmentHandler:  doctorAppointmentHandler,
		prescriptionHandler:       prescriptionHandler,
		uploadHandler:             uploadHandler,
		notificationHandler:       notificationHandler,
		assistantHandler:          assistantHandler,
		authMiddleware:            authMiddleware,
		corsMiddleware:            corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Assistant routes (public, no account required)
	api.HandleFunc("/prescription-reader/explain", r.assistantHandler.ExplainPrescription).Methods(http.MethodPost)
	chat := api.PathPrefix("/chat").Subrouter()
	chat.HandleFunc("/messages", r.assistantHandler.SendChatMessage).Methods(http.MethodPost)
	chat.HandleFunc("/reset", r.assistantHandler.ResetChat).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Profile (any authenticated user)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.authHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Doctor directory (any authenticated user)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Notifications (any authenticated user)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/count", r.notificationHandler.GetUnreadCount).Methods(http.MethodGet)
	notifications.HandleFunc("/open", r.notificationHandler.OpenPanel).Methods(http.MethodPost)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	patient.HandleFunc("/appointments", r.patientAppointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.patientAppointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.patientAppointmentHandler.GetAppointment).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.patientAppointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	patient.HandleFunc("/prescriptions", r.prescriptionHandler.GetPatientPrescriptions).Methods(http.MethodGet)
	patient.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)

	patient.HandleFunc("/uploads", r.uploadHandler.AnalyzeUpload).Methods(http.MethodPost)
	patient.HandleFunc("/uploads", r.uploadHandler.GetMyUploads).Methods(http.MethodGet)
	patient.HandleFunc("/uploads/{id}", r.uploadHandler.DeleteUpload).Methods(http.MethodDelete)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/dashboard", r.doctorAppointmentHandler.GetDashboard).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments", r.doctorAppointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}", r.doctorAppointmentHandler.GetAppointment).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/accept", r.doctorAppointmentHandler.AcceptAppointment).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/reject", r.doctorAppointmentHandler.RejectAppointment).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/complete", r.doctorAppointmentHandler.CompleteAppointment).Methods(http.MethodPatch)
	doctor.HandleFunc("/patients", r.doctorAppointmentHandler.GetMyPatients).Methods(http.MethodGet)

	doctor.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	doctor.HandleFunc("/prescriptions", r.prescriptionHandler.GetDoctorPrescriptions).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
