package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/entries"
	"max.ks1230/home-ledger/internal/model/reports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type giveRequest struct {
	Recipient string              `json:"recipient"`
	Amount    decimal.NullDecimal `json:"amount"`
}

type optionsResponse struct {
	PaidTo     []string           `json:"paid_to"`
	Recipients []ledger.Recipient `json:"recipients"`
	Periods    []string           `json:"periods"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Store.Ping(r.Context()); err != nil {
		logger.Warn("store not ready", zap.Error(err))
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	sess, err := s.deps.Sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Sessions.SignOut(r.Context(), token(r)); err != nil {
		writeError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.deps.Sessions.Authorize(r.Context(), token(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	date, err := s.dateParam(r, "date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	report, err := s.deps.Reports.Daily(r.Context(), date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse{
		PaidTo:     s.deps.App.PaidToOptions(),
		Recipients: ledger.Recipients,
		Periods:    reports.ReportPeriods(),
	})
}

func (s *Server) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	var form entries.IncomeForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := s.deps.Entries.AddIncome(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var form entries.ExpenseForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := s.deps.Entries.AddExpense(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateAmount(w http.ResponseWriter, r *http.Request) {
	kind, id, err := recordParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req amountRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err = s.deps.Entries.UpdateAmount(r.Context(), kind, id, req.Amount); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "kind": kind, "amount": req.Amount})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	kind, id, err := recordParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if err = s.deps.Entries.Delete(r.Context(), kind, id, confirmed); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "kind": kind, "deleted": true})
}

func (s *Server) handleGiveHome(w http.ResponseWriter, r *http.Request) {
	var req giveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	to, err := ledger.ParseRecipient(req.Recipient)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if sess, ok := sessionFrom(r.Context()); ok {
		logger.Info("give to home requested", zap.String("by", sess.Email), zap.String("to", string(to)))
	}
	res, err := s.deps.Allocator.GiveToHome(r.Context(), to, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleUndoHome(w http.ResponseWriter, r *http.Request) {
	res, err := s.deps.Allocator.UndoLast(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	s.handleDashboard(w, r)
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	month := s.deps.App.Today().Month()
	if raw := r.URL.Query().Get("month"); raw != "" {
		var err error
		if month, err = ledger.ParseMonth(raw); err != nil {
			writeError(w, r, err)
			return
		}
	}
	report, err := s.deps.Reports.Monthly(r.Context(), month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRangeReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := ledger.ParseDate(q.Get("from"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := ledger.ParseDate(q.Get("to"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	report, err := s.deps.Reports.Range(r.Context(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePeriodReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.deps.Reports.Period(r.Context(), chi.URLParam(r, "period"), s.deps.App.Today())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// dateParam reads a date query parameter, defaulting to today.
func (s *Server) dateParam(r *http.Request, name string) (ledger.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return s.deps.App.Today(), nil
	}
	return ledger.ParseDate(raw)
}

func recordParams(r *http.Request) (ledger.Kind, int64, error) {
	kind, err := ledger.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return "", 0, errors.Wrapf(errBadRequest, "record id %q", chi.URLParam(r, "id"))
	}
	return kind, id, nil
}
