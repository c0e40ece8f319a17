package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobspy-proxy/internal/config"
	"github.com/honeycarbs/jobspy-proxy/internal/domain/job"
	"github.com/honeycarbs/jobspy-proxy/internal/httpapi"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

const (
	implementationName    = "jobspy-proxy"
	implementationVersion = "0.1.0"
)

// NewServer builds the MCP server with every tool registered
func NewServer(svc job.Service, logger *logging.Logger) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    implementationName,
		Version: implementationVersion,
	}

	server := sdkmcp.NewServer(impl, nil)
	registerTools(server, svc, logger)

	return server
}

// NewHandler returns the streamable HTTP transport, or nil when MCP is disabled
func NewHandler(cfg config.Config, svc job.Service, logger *logging.Logger) httpapi.MCPHandler {
	if !cfg.Server.MCPEnabled {
		logger.Info("MCP transport disabled")
		return nil
	}

	server := NewServer(svc, logger)

	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}
