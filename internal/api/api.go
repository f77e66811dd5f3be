// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/shipdesk/shipdesk/internal/config"
	"github.com/shipdesk/shipdesk/internal/infrastructure"
	"github.com/shipdesk/shipdesk/pkg/middleware"
	"github.com/shipdesk/shipdesk/pkg/module"
	"github.com/shipdesk/shipdesk/pkg/openapi"
)

// NewModule creates the API module with all domain handlers and middleware.
// The intake poller is registered with the lifecycle coordinator here so it
// starts and stops with the rest of the service.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	if err := domain.Intake.Start(runtime.Lifecycle); err != nil {
		return nil, fmt.Errorf("intake start failed: %w", err)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain)

	specBytes, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		return nil, fmt.Errorf("openapi spec failed: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Infrastructure.Logger))

	return m, nil
}
