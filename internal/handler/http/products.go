package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.ListProducts(r.Context())
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.listProducts").Int("status", status).Msg("error listing products")
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Str("func", "*Handler.createProduct").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.ProductService.CreateProduct(r.Context(), product)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.createProduct").Int("status", status).Msg("error creating product")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, found := utils.GetProductIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateProduct").Msg("no product ID was given")
		http.Error(w, app.MsgInvalidProductID, http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Str("func", "*Handler.updateProduct").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProductService.UpdateProduct(ctx, id, product)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.updateProduct").Int64("id", id).Int("status", status).Msg("error updating product")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, found := utils.GetProductIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteProduct").Msg("no product ID was given")
		http.Error(w, app.MsgInvalidProductID, http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.DeleteProduct(ctx, id); err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.deleteProduct").Int64("id", id).Int("status", status).Msg("error deleting product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
