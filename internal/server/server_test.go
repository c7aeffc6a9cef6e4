package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/entries"
	"max.ks1230/home-ledger/internal/model/reports"
	"max.ks1230/home-ledger/internal/model/session"
	"max.ks1230/home-ledger/internal/model/storage"
)

const (
	ownerEmail    = "owner@example.com"
	ownerPassword = "hunter2"
)

type appStub struct{}

func (appStub) Today() ledger.Date       { return "2024-03-05" }
func (appStub) PaidToOptions() []string { return []string{"SAI FIN", ledger.PayeeOthers} }

type authStub struct {
	hash string
}

func (a authStub) Email() string                { return ownerEmail }
func (a authStub) PasswordHash() string         { return a.hash }
func (a authStub) SessionTTL() time.Duration    { return time.Hour }
func (a authStub) SweepInterval() time.Duration { return time.Minute }

type httpStub struct{}

func (httpStub) Addr() string                   { return "127.0.0.1:0" }
func (httpStub) ReadTimeout() time.Duration     { return time.Second }
func (httpStub) WriteTimeout() time.Duration    { return time.Second }
func (httpStub) ShutdownTimeout() time.Duration { return time.Second }

func newTestServer(t *testing.T) (http.Handler, *storage.InMemStorage) {
	hash, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.MinCost)
	require.NoError(t, err)

	store := storage.NewInMemStorage()
	sessions := session.NewController(session.NewLocalProvider(authStub{hash: string(hash)}))
	t.Cleanup(sessions.Close)

	s := New(httpStub{}, Deps{
		App:       appStub{},
		Entries:   entries.NewService(store, nil),
		Reports:   reports.NewGenerator(store, nil),
		Allocator: allocator.NewService(appStub{}, store, nil, nil),
		Sessions:  sessions,
		Store:     store,
	})
	return s.Handler, store
}

func call(h http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) string {
	rec := call(h, http.MethodPost, "/login", `{"email":"Owner@Example.com","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sess session.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sess))
	require.NotEmpty(t, sess.Token)
	return sess.Token
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_OnHealth_ShouldAnswerWithoutSession(t *testing.T) {
	h, _ := newTestServer(t)

	rec := call(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = call(h, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func Test_OnApi_ShouldRequireSession(t *testing.T) {
	h, _ := newTestServer(t)

	rec := call(h, http.MethodGet, "/api/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(h, http.MethodGet, "/api/dashboard", "", "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_OnLogin_ShouldRejectBadPassword(t *testing.T) {
	h, _ := newTestServer(t)

	rec := call(h, http.MethodPost, "/login", `{"email":"owner@example.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(h, http.MethodPost, "/login", `{"email":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnLogin_ShouldSetSessionCookie(t *testing.T) {
	h, _ := newTestServer(t)

	rec := call(h, http.MethodPost, "/login", `{"email":"owner@example.com","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(cookies[0])
	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
}

func Test_OnLogout_ShouldInvalidateToken(t *testing.T) {
	h, _ := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodPost, "/logout", "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(h, http.MethodGet, "/api/options", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_OnOptions_ShouldListChoices(t *testing.T) {
	h, _ := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodGet, "/api/options", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var res optionsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, []string{"SAI FIN", ledger.PayeeOthers}, res.PaidTo)
	assert.Equal(t, ledger.Recipients, res.Recipients)
	assert.Equal(t, []string{"month", "week", "year"}, res.Periods)
}

func Test_OnAddIncome_ShouldCreateRecord(t *testing.T) {
	h, store := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodPost, "/api/incomes",
		`{"date":"2024-03-05","service":"Tailoring","amount":"300.456"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var income ledger.Income
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&income))
	assert.True(t, dec("300.46").Equal(income.Amount))

	stored, err := store.SelectIncomes(context.Background(), storage.ByID(income.ID))
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func Test_OnIncompleteForm_ShouldAnswerNoContent(t *testing.T) {
	h, store := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodPost, "/api/expenses", `{"date":"2024-03-05","paid_to":"","amount":"10"}`, token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	stored, err := store.SelectExpenses(context.Background(), storage.Query{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func Test_OnUpdateAndDelete_ShouldFollowConfirmation(t *testing.T) {
	h, _ := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodPost, "/api/expenses",
		`{"date":"2024-03-05","paid_to":"Others","custom_paid_to":"Tea stall","amount":"40"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var expense ledger.Expense
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&expense))
	assert.Equal(t, "Tea stall", expense.PaidTo)

	target := "/api/expenses/" + strconv.FormatInt(expense.ID, 10)

	rec = call(h, http.MethodPatch, target, `{"amount":"45"}`, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(h, http.MethodDelete, target, "", token)
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)

	rec = call(h, http.MethodDelete, target+"?confirm=true", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(h, http.MethodDelete, target+"?confirm=true", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_OnBadParams_ShouldAnswerBadRequest(t *testing.T) {
	h, _ := newTestServer(t)
	token := login(t, h)

	for _, target := range []string{
		"/api/notes/1",
		"/api/incomes/zero",
	} {
		rec := call(h, http.MethodPatch, target, `{"amount":"1"}`, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	for _, target := range []string{
		"/api/dashboard?date=05-03-2024",
		"/api/reports/monthly?month=2024-13",
		"/api/reports/range?from=2024-03-05&to=2024-03-01",
		"/api/reports/period/decade",
	} {
		rec := call(h, http.MethodGet, target, "", token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func Test_OnGiveHome_ShouldDisburseAndUndo(t *testing.T) {
	h, _ := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodPost, "/api/incomes", `{"date":"2024-03-05","service":"Tailoring","amount":"300"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = call(h, http.MethodPost, "/api/expenses", `{"date":"2024-03-05","paid_to":"SAI FIN","amount":"100"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(h, http.MethodPost, "/api/home/give", `{"recipient":"sister"}`, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(h, http.MethodPost, "/api/home/give", `{"recipient":"mom"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var given allocator.Disbursement
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&given))
	assert.Equal(t, ledger.Mom, given.Recipient)
	assert.True(t, dec("200").Equal(given.Given))

	rec = call(h, http.MethodGet, "/api/dashboard", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var daily reports.DailyReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&daily))
	assert.True(t, dec("200").Equal(daily.Summary.DailyGivenToHome))

	rec = call(h, http.MethodPost, "/api/home/give", `{"recipient":"dad"}`, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(h, http.MethodPost, "/api/home/undo", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(h, http.MethodPost, "/api/home/undo", "", token)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func Test_OnGiveHome_NonPositiveAmountShouldConflict(t *testing.T) {
	h, _ := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodPost, "/api/incomes", `{"date":"2024-03-05","service":"Tailoring","amount":"300"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, body := range []string{
		`{"recipient":"mom","amount":"0"}`,
		`{"recipient":"mom","amount":"-5"}`,
	} {
		rec = call(h, http.MethodPost, "/api/home/give", body, token)
		assert.Equal(t, http.StatusConflict, rec.Code, body)
	}
}

func Test_OnReports_ShouldAnswerJSON(t *testing.T) {
	h, _ := newTestServer(t)
	token := login(t, h)

	rec := call(h, http.MethodPost, "/api/incomes", `{"date":"2024-03-01","service":"Tailoring","amount":"50"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(h, http.MethodGet, "/api/reports/monthly?month=2024-03", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var monthly reports.MonthlyReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&monthly))
	assert.True(t, dec("50").Equal(monthly.Totals.Income))

	rec = call(h, http.MethodGet, "/api/reports/range?from=2024-03-01&to=2024-03-05", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var ranged reports.RangeReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ranged))
	assert.Len(t, ranged.Days, 5)

	rec = call(h, http.MethodGet, "/api/reports/period/week", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
