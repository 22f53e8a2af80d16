package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/auth"
	"fintrack/internal/core"
	"fintrack/internal/services"
)

// UserStore is the account persistence surface the auth handlers need.
// Implemented by storage.Repository.
type UserStore interface {
	CreateUser(ctx context.Context, u core.User) error
	GetUserByEmail(ctx context.Context, email string) (core.User, error)
	GetUserByID(ctx context.Context, id string) (core.User, error)
}

type Server struct {
	http.Server

	records *services.RecordService
	users   UserStore
	tokens  *auth.Tokens

	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. Every /api route except auth, contact and the probes
// sits behind the session guard.
func NewServer(addr string, records *services.RecordService, users UserStore, tokens *auth.Tokens, corsOrigins []string) *Server {
	mux := http.NewServeMux()

	s := &Server{
		records:     records,
		users:       users,
		tokens:      tokens,
		rateLimiter: newRateLimiter(),
	}

	guard := auth.Guard(tokens)
	protected := func(h http.HandlerFunc) http.Handler {
		return guard(h)
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("GET /api/auth/me", protected(s.handleMe))

	mux.Handle("POST /api/incomes", protected(s.handleCreateIncome))
	mux.Handle("GET /api/incomes", protected(s.handleListIncomes))
	mux.Handle("DELETE /api/incomes/{id}", protected(s.handleDeleteIncome))

	mux.Handle("POST /api/expenses", protected(s.handleCreateExpense))
	mux.Handle("GET /api/expenses", protected(s.handleListExpenses))
	mux.Handle("DELETE /api/expenses/{id}", protected(s.handleDeleteExpense))

	mux.Handle("POST /api/budgets", protected(s.handleCreateBudget))
	mux.Handle("GET /api/budgets", protected(s.handleListBudgets))
	mux.Handle("GET /api/budgets/status", protected(s.handleBudgetStatus))
	mux.Handle("PUT /api/budgets/{id}", protected(s.handleUpdateBudget))
	mux.Handle("DELETE /api/budgets/{id}", protected(s.handleDeleteBudget))

	mux.Handle("POST /api/savings-goals", protected(s.handleCreateGoal))
	mux.Handle("GET /api/savings-goals", protected(s.handleListGoals))
	mux.Handle("PUT /api/savings-goals/{id}", protected(s.handleUpdateGoal))
	mux.Handle("DELETE /api/savings-goals/{id}", protected(s.handleDeleteGoal))

	mux.Handle("GET /api/dashboard/stats", protected(s.handleDashboardStats))

	mux.HandleFunc("POST /api/contact", s.handleContact)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.withRequestLog(corsMiddleware(corsOrigins)(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Shutdown stops the server and its cleanup goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withRequestLog adds security headers, rate limiting and request
// logging around every route.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		// Write requests hit the limiter; reads are unthrottled.
		if r.Method != http.MethodGet && r.Method != http.MethodOptions && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				"request_id", requestID, "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	})
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
