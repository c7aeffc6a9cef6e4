package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/customerr"
	"max.ks1230/home-ledger/internal/model/entries"
	"max.ks1230/home-ledger/internal/model/reports"
	"max.ks1230/home-ledger/internal/model/session"
	"max.ks1230/home-ledger/internal/model/storage"
)

var errBadRequest = errors.New("bad request")

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("write response", zap.Error(err))
	}
}

func statusFor(err error) int {
	var storeErr *customerr.StoreError
	switch {
	case errors.Is(err, entries.ErrIncomplete):
		return http.StatusNoContent
	case errors.Is(err, entries.ErrNotConfirmed):
		return http.StatusPreconditionRequired
	case errors.Is(err, entries.ErrBelowGiven),
		errors.Is(err, allocator.ErrNoBalance),
		errors.Is(err, allocator.ErrNothingToUndo),
		errors.Is(err, ledger.ErrUnknownRecipient):
		return http.StatusConflict
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrUnauthorized),
		errors.Is(err, session.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errBadRequest),
		errors.Is(err, ledger.ErrUnknownKind),
		errors.Is(err, ledger.ErrBadDate),
		errors.Is(err, ledger.ErrBadMonth),
		errors.Is(err, reports.ErrBadRange),
		errors.Is(err, reports.ErrUnknownPeriod),
		errors.Is(err, storage.ErrUnsupportedOrder):
		return http.StatusBadRequest
	case errors.As(err, &storeErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeError answers with the status err maps to. An incomplete form gets an
// empty 204. Store failures carry the store's own message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	switch status {
	case http.StatusNoContent:
		w.WriteHeader(status)
		return
	case http.StatusBadGateway:
		var storeErr *customerr.StoreError
		errors.As(err, &storeErr)
		logger.Error("store failure", zap.String("op", storeErr.Op), zap.Error(err))
		writeJSON(w, status, errorBody{Error: storeErr.Error()})
		return
	case http.StatusInternalServerError:
		logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, status, errorBody{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(errBadRequest, err.Error())
	}
	return nil
}
