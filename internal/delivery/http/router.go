package http

import (
	"net/http"

	"medichain-backend/internal/delivery/http/handler"
	"medichain-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/challenge", r.authHandler.Challenge).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor directory (public)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Own-profile routes (protected, role-gated)
	doctorProfile := api.PathPrefix("/profile/doctor").Subrouter()
	doctorProfile.Use(r.authMiddleware.Authenticate)
	doctorProfile.Use(middleware.RequireDoctor)
	doctorProfile.HandleFunc("", r.doctorHandler.GetMyProfile).Methods(http.MethodGet)
	doctorProfile.HandleFunc("", r.doctorHandler.UpdateMyProfile).Methods(http.MethodPut)

	patientProfile := api.PathPrefix("/profile/patient").Subrouter()
	patientProfile.Use(r.authMiddleware.Authenticate)
	patientProfile.Use(middleware.RequirePatient)
	patientProfile.HandleFunc("", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patientProfile.HandleFunc("", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)

	appointmentCreate := api.PathPrefix("/appointments").Subrouter()
	appointmentCreate.Use(r.authMiddleware.Authenticate)
	appointmentCreate.Use(middleware.RequirePatient)
	appointmentCreate.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointmentCreate.HandleFunc("/{id}/payment", r.appointmentHandler.SettlePayment).Methods(http.MethodPost)

	appointmentTriage := api.PathPrefix("/appointments").Subrouter()
	appointmentTriage.Use(r.authMiddleware.Authenticate)
	appointmentTriage.Use(middleware.RequireDoctor)
	appointmentTriage.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
