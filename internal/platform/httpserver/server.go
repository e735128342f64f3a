package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	paymentledger "parcelhub/contexts/finance-core/payment-ledger"
	riderdirectory "parcelhub/contexts/fleet-operations/rider-directory"
	authgate "parcelhub/contexts/identity-access/auth-gate"
	userdirectory "parcelhub/contexts/identity-access/user-directory"
	parcelregistry "parcelhub/contexts/parcel-logistics/parcel-registry"
	trackinglog "parcelhub/contexts/parcel-logistics/tracking-log"
	"parcelhub/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "parcelhub/internal/platform/httpserver/docs"
)

// Modules is the set of bounded contexts served over HTTP.
type Modules struct {
	Auth     authgate.Module
	Users    userdirectory.Module
	Parcels  parcelregistry.Module
	Tracking trackinglog.Module
	Payments paymentledger.Module
	Riders   riderdirectory.Module
}

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	httpSrv  *http.Server
	auth     authgate.Module
	users    userdirectory.Module
	parcels  parcelregistry.Module
	tracking trackinglog.Module
	payments paymentledger.Module
	riders   riderdirectory.Module
}

func New(modules Modules, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}
	metrics.Register(nil)

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		auth:     modules.Auth,
		users:    modules.Users,
		parcels:  modules.Parcels,
		tracking: modules.Tracking,
		payments: modules.Payments,
		riders:   modules.Riders,
	}
	s.registerRoutes()
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the routed mux for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start blocks until the listener fails or Shutdown is called. A graceful
// shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down",
		"event", "http_server_shutdown",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.handle("GET /healthz", s.handleHealthz)
	s.handle("GET /{$}", s.handleRoot)

	s.handle("GET /parcels", s.handleListParcels)
	s.handle("GET /my-parcels", s.handleListMyParcels)
	s.handle("GET /parcels/{parcel_id}", s.handleGetParcel)
	s.handle("POST /parcels", s.handleCreateParcel)
	s.handle("DELETE /parcels/{parcel_id}", s.handleDeleteParcel)

	s.handle("GET /parcels/{parcel_id}/tracking", s.handleListTrackingByParcel)
	s.handle("GET /tracking/{tracking_code}", s.handleListTrackingByCode)
	s.handle("POST /tracking", s.handleAppendTracking)

	s.handle("GET /payments", s.handleListPayments)
	s.handle("POST /payments", s.handleRecordPayment)
	s.handle("POST /create-payment-intent", s.handleCreatePaymentIntent)

	s.handle("GET /riders", s.handleListRiders)
	s.handle("POST /riders", s.handleSubmitRiderApplication)
	s.handle("PATCH /riders/{rider_id}/status", s.handleUpdateRiderStatus)

	s.handle("POST /users", s.handleUpsertUser)
	s.handle("GET /users/{email}", s.handleGetUser)
	s.handle("GET /users/{email}/role", s.handleGetUserRole)
	s.handle("PATCH /users/{email}/role", s.handleUpdateUserRole)
}

// handle registers fn under pattern and records request count and latency
// labelled by the pattern.
func (s *Server) handle(pattern string, fn http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		fn(recorder, r)

		metrics.HTTPRequestDuration.WithLabelValues(pattern, r.Method).Observe(time.Since(started).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(pattern, r.Method, strconv.Itoa(recorder.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Parcel Server is running"))
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
