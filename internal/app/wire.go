//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/honeycarbs/jobspy-proxy/internal/config"
	"github.com/honeycarbs/jobspy-proxy/internal/domain/job"
	"github.com/honeycarbs/jobspy-proxy/internal/httpapi"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

// InitializeServer creates the HTTP server with all dependencies wired up
func InitializeServer(cfg config.Config, logger *logging.Logger) (*httpapi.Server, error) {
	wire.Build(ServerSet)
	return nil, nil
}

// InitializeService creates the scrape service alone, for one-shot CLI use
func InitializeService(cfg config.Config, logger *logging.Logger) (job.Service, error) {
	wire.Build(ServiceSet)
	return nil, nil
}
