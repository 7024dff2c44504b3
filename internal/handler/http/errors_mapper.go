package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidProductID:    http.StatusBadRequest,
	ErrInvalidProductIDParam:       http.StatusBadRequest,

	store.ErrInvalidProduct:   http.StatusBadRequest,
	store.ErrProductNotFound:  http.StatusNotFound,
	store.ErrProductNotSaved:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusNotFound:            app.MsgProductNotFound,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a fixed message;
// internal details stay in the log.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	if errors.Is(err, service.ErrInvalidProductID) || errors.Is(err, ErrInvalidProductIDParam) {
		http.Error(w, app.MsgInvalidProductID, status)
		return status
	}

	http.Error(w, statusMessages[status], status)
	return status
}
