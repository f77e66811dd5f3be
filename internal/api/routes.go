package api

import (
	"net/http"

	"github.com/shipdesk/shipdesk/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Orders.Handler().Routes(),
		domain.Approval.Handler().Routes(),
		domain.Templates.Handler().Routes(),
		domain.Intake.Handler().Routes(),
	)
}
