package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

type Services struct {
	ProductService ProductService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	products := NewProductValidationService().Wrap(NewProductService(storages.ProductRepository, logger))

	return &Services{
		ProductService: products,
		AppInfoService: appInfo,
	}, nil
}
