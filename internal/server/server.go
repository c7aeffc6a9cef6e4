package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/entries"
	"max.ks1230/home-ledger/internal/model/reports"
	"max.ks1230/home-ledger/internal/model/session"
)

type httpConfig interface {
	Addr() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type appConfig interface {
	Today() ledger.Date
	PaidToOptions() []string
}

type entryService interface {
	AddIncome(ctx context.Context, form entries.IncomeForm) (ledger.Income, error)
	AddExpense(ctx context.Context, form entries.ExpenseForm) (ledger.Expense, error)
	UpdateAmount(ctx context.Context, kind ledger.Kind, id int64, amount string) error
	Delete(ctx context.Context, kind ledger.Kind, id int64, confirmed bool) error
}

type reportService interface {
	Daily(ctx context.Context, date ledger.Date) (*reports.DailyReport, error)
	Monthly(ctx context.Context, month ledger.Month) (*reports.MonthlyReport, error)
	Range(ctx context.Context, from, to ledger.Date) (*reports.RangeReport, error)
	Period(ctx context.Context, period string, today ledger.Date) (*reports.RangeReport, error)
}

type homeAllocator interface {
	GiveToHome(ctx context.Context, to ledger.Recipient, amount decimal.NullDecimal) (allocator.Disbursement, error)
	UndoLast(ctx context.Context) (allocator.Disbursement, error)
}

type sessionGate interface {
	SignIn(ctx context.Context, email, password string) (session.Session, error)
	SignOut(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string) (session.Session, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services behind the HTTP API.
type Deps struct {
	App       appConfig
	Entries   entryService
	Reports   reportService
	Allocator homeAllocator
	Sessions  sessionGate
	Store     pinger
}

type Server struct {
	http.Server
	deps            Deps
	shutdownTimeout time.Duration
}

func New(cfg httpConfig, deps Deps) *Server {
	s := &Server{
		deps:            deps,
		shutdownTimeout: cfg.ShutdownTimeout(),
	}
	s.Server = http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)
	r.Get("/session", s.handleSession)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireSession)

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/options", s.handleOptions)

		r.Post("/incomes", s.handleAddIncome)
		r.Post("/expenses", s.handleAddExpense)
		r.Patch("/{kind}/{id}", s.handleUpdateAmount)
		r.Delete("/{kind}/{id}", s.handleDelete)

		r.Post("/home/give", s.handleGiveHome)
		r.Post("/home/undo", s.handleUndoHome)

		r.Get("/reports/daily", s.handleDailyReport)
		r.Get("/reports/monthly", s.handleMonthlyReport)
		r.Get("/reports/range", s.handleRangeReport)
		r.Get("/reports/period/{period}", s.handlePeriodReport)
	})

	return r
}

// Run serves until ctx is done, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", s.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http shutdown")
	}
	return nil
}
