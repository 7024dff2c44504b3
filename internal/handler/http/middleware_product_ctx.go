package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// productCtx parses the {id} path parameter and stores it under
// utils.ProductIDCtxKey. Non-positive or non-numeric ids are rejected with
// 400 before any handler runs.
func (h *Handler) productCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			logger.FromRequest(r).Warn().Str("func", "*Handler.productCtx").Str("id", raw).Err(ErrInvalidProductIDParam).Send()
			http.Error(w, app.MsgInvalidProductID, http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ProductIDCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
