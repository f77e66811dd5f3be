package api

import (
	"github.com/shipdesk/shipdesk/internal/config"
	"github.com/shipdesk/shipdesk/internal/infrastructure"
	"github.com/shipdesk/shipdesk/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Workflow   *config.WorkflowConfig
	MailConfig *config.MailConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Mail:      infra.Mail,
		},
		Pagination: cfg.API.Pagination,
		Workflow:   &cfg.Workflow,
		MailConfig: &cfg.Mail,
	}
}
