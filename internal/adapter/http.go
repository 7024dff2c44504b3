package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const productsPath = "/api/products"

type httpProductAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPProductAdapter constructs an HTTP/REST implementation of
// [ProductAdapter]. The base address, request timeout and body logging
// policy all come from adapterCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty.
func NewHTTPProductAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ProductAdapter, error) {
	if adapterCfg.HTTPAddress == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	client := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if adapterCfg.LogBodies {
		client.
			OnBeforeRequest(logRequest(logger)).
			OnAfterResponse(logResponse(logger))
	}

	return &httpProductAdapter{client: client, logger: logger}, nil
}

// log prefers the request-scoped logger and falls back to the adapter's own.
func (h *httpProductAdapter) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, h.logger)
}

// List implements [ProductAdapter]. It GETs /api/products.
func (h *httpProductAdapter) List(ctx context.Context) (models.Response[[]models.Product], error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(productsPath)
	if err != nil {
		return models.Response[[]models.Product]{}, fmt.Errorf("list products request: %w", err)
	}

	return decodeResponse[[]models.Product](h.log(ctx), resp, "httpProductAdapter.List")
}

// Create implements [ProductAdapter]. It POSTs the product to /api/products.
func (h *httpProductAdapter) Create(ctx context.Context, product models.Product) (models.Response[models.Product], error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(product).
		Post(productsPath)
	if err != nil {
		return models.Response[models.Product]{}, fmt.Errorf("create product request: %w", err)
	}

	return decodeResponse[models.Product](h.log(ctx), resp, "httpProductAdapter.Create")
}

// Update implements [ProductAdapter]. It PUTs the product to
// /api/products/{id}.
func (h *httpProductAdapter) Update(ctx context.Context, id int64, product models.Product) (models.Response[models.Product], error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(product).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Put(productsPath + "/{id}")
	if err != nil {
		return models.Response[models.Product]{}, fmt.Errorf("update product request: %w", err)
	}

	return decodeResponse[models.Product](h.log(ctx), resp, "httpProductAdapter.Update")
}

// Delete implements [ProductAdapter]. It sends DELETE /api/products/{id}.
// The body is never read.
func (h *httpProductAdapter) Delete(ctx context.Context, id int64) (models.Response[models.Unit], error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(productsPath + "/{id}")
	if err != nil {
		return models.Response[models.Unit]{}, fmt.Errorf("delete product request: %w", err)
	}

	if statusErr := mapHTTPError(resp); statusErr != nil {
		h.log(ctx).Warn().Err(statusErr).
			Str("func", "httpProductAdapter.Delete").
			Int64("id", id).
			Msg("server rejected delete")
	}

	return models.Response[models.Unit]{StatusCode: resp.StatusCode()}, nil
}

// decodeResponse turns a resty response into a [models.Response]. A 2xx
// response with an empty or null body yields a nil Body. Error statuses are
// logged and returned without a body.
func decodeResponse[B any](log *logger.Logger, resp *resty.Response, funcName string) (models.Response[B], error) {
	out := models.Response[B]{StatusCode: resp.StatusCode()}

	if statusErr := mapHTTPError(resp); statusErr != nil {
		log.Warn().Err(statusErr).
			Str("func", funcName).
			Int("status", resp.StatusCode()).
			Msg("server responded with error status")
		return out, nil
	}

	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return out, nil
	}

	body := new(B)
	if err := json.Unmarshal(raw, body); err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to decode response body")
		return out, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	out.Body = body

	return out, nil
}

func logRequest(log *logger.Logger) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		event := log.Debug().
			Str("method", req.Method).
			Str("url", req.URL)
		if req.Body != nil {
			if payload, err := json.Marshal(req.Body); err == nil {
				event = event.RawJSON("body", payload)
			}
		}
		event.Msg("--> request")
		return nil
	}
}

func logResponse(log *logger.Logger) resty.ResponseMiddleware {
	return func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("elapsed", resp.Time()).
			Str("body", string(resp.Body())).
			Msg("<-- response")
		return nil
	}
}
