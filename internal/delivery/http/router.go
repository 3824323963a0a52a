package http

import (
	"net/http"

	"github.com/anonymous-574/MediQ/internal/delivery/http/handler"
	"github.com/anonymous-574/MediQ/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	slotHandler        *handler.SlotHandler
	appointmentHandler *handler.AppointmentHandler
	queueHandler       *handler.QueueHandler
	triageHandler      *handler.TriageHandler
	hospitalHandler    *handler.HospitalHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	slotHandler *handler.SlotHandler,
	appointmentHandler *handler.AppointmentHandler,
	queueHandler *handler.QueueHandler,
	triageHandler *handler.TriageHandler,
	hospitalHandler *handler.HospitalHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		slotHandler:        slotHandler,
		appointmentHandler: appointmentHandler,
		queueHandler:       queueHandler,
		triageHandler:      triageHandler,
		hospitalHandler:    hospitalHandler,
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
	auth.HandleFunc("/register/nurse", r.authHandler.RegisterNurse).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public directory and availability reads
	api.HandleFunc("/slots", r.slotHandler.ListAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/hospitals", r.hospitalHandler.ListHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{code}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{code}/doctors", r.hospitalHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{code}/wait-time", r.queueHandler.PredictWait).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{code}/wait-trend", r.queueHandler.Trend).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/slots", r.slotHandler.CreateSlots).Methods(http.MethodPost)
	doctor.HandleFunc("/slots/{slotCode}", r.slotHandler.DeleteSlot).Methods(http.MethodDelete)
	doctor.HandleFunc("/slots/{slotCode}/release", r.slotHandler.ReleaseSlot).Methods(http.MethodPut)
	doctor.HandleFunc("/appointments", r.appointmentHandler.ListForDoctor).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{code}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.ListForPatient).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{code}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)
	patient.HandleFunc("/symptom-reports", r.triageHandler.Analyze).Methods(http.MethodPost)
	patient.HandleFunc("/symptom-reports", r.triageHandler.History).Methods(http.MethodGet)
	patient.HandleFunc("/queue-reports", r.queueHandler.SubmitReport).Methods(http.MethodPost)

	// Queue report listing is readable by any staff role. Registered
	// directly so it does not collide with the nurse-only subrouter prefix.
	api.Handle("/nurse/queue-reports",
		r.authMiddleware.Authenticate(middleware.RequireStaff(http.HandlerFunc(r.queueHandler.ListReports)))).
		Methods(http.MethodGet)

	// Nurse routes (protected - nurse only)
	nurse := api.PathPrefix("/nurse").Subrouter()
	nurse.Use(r.authMiddleware.Authenticate)
	nurse.Use(middleware.RequireNurse)
	nurse.HandleFunc("/queue-reports", r.queueHandler.SubmitReport).Methods(http.MethodPost)
	nurse.HandleFunc("/queue-reports/{code}/validate", r.queueHandler.ValidateReport).Methods(http.MethodPut)

	// Congestion gauge (admin or doctor). Registered directly so it does not
	// collide with the admin-only subrouter prefix.
	api.Handle("/admin/hospitals/{code}/congestion",
		r.authMiddleware.Authenticate(middleware.RequireAdminOrDoctor(http.HandlerFunc(r.hospitalHandler.UpdateCongestion)))).
		Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/hospitals", r.hospitalHandler.CreateHospital).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{code}/approve", r.authHandler.ApprovePatient).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
