package service

import (
	"github.com/flexprice/marketdiscount/internal/config"
	"github.com/flexprice/marketdiscount/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
}

// NewServiceParams creates a new ServiceParams
func NewServiceParams(logger *logger.Logger, config *config.Configuration) ServiceParams {
	return ServiceParams{
		Logger: logger,
		Config: config,
	}
}
