package api

import (
	"github.com/shipdesk/shipdesk/internal/approval"
	"github.com/shipdesk/shipdesk/internal/intake"
	"github.com/shipdesk/shipdesk/internal/orders"
	"github.com/shipdesk/shipdesk/internal/reconcile"
	"github.com/shipdesk/shipdesk/internal/templates"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Orders    orders.System
	Templates templates.System
	Reconcile reconcile.System
	Approval  approval.System
	Intake    intake.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	ordersSystem := orders.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	templatesSystem := templates.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	reconcileSystem := reconcile.New(
		ordersSystem,
		templatesSystem,
		runtime.Infrastructure.Mail,
		runtime.Storage,
		runtime.Logger,
	)

	approvalSystem := approval.New(
		ordersSystem,
		templatesSystem,
		runtime.Infrastructure.Mail,
		runtime.Workflow,
		runtime.Logger,
	)

	intakeSystem := intake.New(
		runtime.Infrastructure.Mail,
		ordersSystem,
		templatesSystem,
		reconcileSystem,
		runtime.MailConfig,
		runtime.Logger,
	)

	return &Domain{
		Orders:    ordersSystem,
		Templates: templatesSystem,
		Reconcile: reconcileSystem,
		Approval:  approvalSystem,
		Intake:    intakeSystem,
	}
}
