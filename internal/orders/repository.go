package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/pkg/pagination"
	"github.com/shipdesk/shipdesk/pkg/query"
	"github.com/shipdesk/shipdesk/pkg/repository"
	"github.com/shipdesk/shipdesk/pkg/storage"
)

const orderColumns = `id, customer_email, raw_text, reply_text, order_ref,
		product_name, price, quantity, query_type, complete, vendor_email,
		vendor_status, payment_amount, manager_decision, stage, created_at,
		updated_at`

type repo struct {
	db         *sql.DB
	store      storage.System
	logger     *slog.Logger
	pagination pagination.Config
	validate   *validator.Validate
}

// New creates an order repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		store:      store,
		logger:     logger.With("system", "orders"),
		pagination: pagination,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Order], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "CustomerEmail", "RawText", "ProductName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Order, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	o, err := repository.QueryOne(ctx, r.db, q, args, scanOrder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &o, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Order, error) {
	if err := r.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	q := fmt.Sprintf(`
		INSERT INTO orders(
			customer_email, raw_text, reply_text, order_ref,
			product_name, price, quantity, query_type, complete
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, orderColumns)

	args := []any{
		cmd.CustomerEmail, cmd.RawText, cmd.ReplyText, cmd.OrderRef,
		cmd.ProductName, cmd.Price, cmd.Quantity, cmd.QueryType, cmd.Complete,
	}

	o, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Order, error) {
		return repository.QueryOne(ctx, tx, q, args, scanOrder)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("order created",
		"id", o.ID,
		"customer", o.CustomerEmail,
		"query_type", o.QueryType,
		"complete", o.Complete,
	)
	return &o, nil
}

func (r *repo) ReconciliationTarget(ctx context.Context, vendorEmail string) (*Order, bool, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("VendorEmail", &vendorEmail).
		WhereNull("VendorStatus", true).
		BuildFirst()

	o, err := repository.QueryOne(ctx, r.db, q, args, scanOrder)
	if err == nil {
		return &o, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("match vendor %s: %w", vendorEmail, err)
	}

	q, args = query.
		NewBuilder(projection, defaultSort).
		WhereNull("VendorStatus", true).
		BuildFirst()

	o, err = repository.QueryOne(ctx, r.db, q, args, scanOrder)
	if err != nil {
		return nil, false, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Warn("reconciliation fallback match",
		"order", o.ID,
		"vendor", vendorEmail,
		"routed_vendor", o.VendorEmail,
	)
	return &o, true, nil
}

func (r *repo) MarkAwaitingVendor(ctx context.Context, id uuid.UUID, vendorEmail string) (*Order, error) {
	if vendorEmail == "" {
		return nil, fmt.Errorf("%w: vendor email required", ErrInvalidRecord)
	}

	q := fmt.Sprintf(`
		UPDATE orders
		SET vendor_email = $1, stage = $2, updated_at = now()
		WHERE id = $3 AND stage = $4
		RETURNING %s`, orderColumns)

	args := []any{vendorEmail, StageAwaitingVendor, id, StageCreated}

	o, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Order, error) {
		return repository.QueryOne(ctx, tx, q, args, scanOrder)
	})

	if err != nil {
		return nil, r.guardFailure(ctx, id, err)
	}

	r.logger.Info("order dispatched to vendor", "id", o.ID, "vendor", vendorEmail)
	return &o, nil
}

func (r *repo) AttachVendorReply(ctx context.Context, id uuid.UUID, cmd VendorReplyCommand) (*Order, error) {
	if len(cmd.Certificates) > 2 {
		cmd.Certificates = cmd.Certificates[:2]
	}

	q := fmt.Sprintf(`
		UPDATE orders
		SET vendor_status = $1,
			payment_amount = $2,
			vendor_email = COALESCE(NULLIF($3, ''), vendor_email),
			stage = $4,
			updated_at = now()
		WHERE id = $5 AND vendor_status IS NULL
		RETURNING %s`, orderColumns)

	args := []any{
		cmd.VendorStatus, cmd.PaymentAmount, cmd.VendorEmail,
		StageVendorResponded, id,
	}

	o, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Order, error) {
		updated, err := repository.QueryOne(ctx, tx, q, args, scanOrder)
		if err != nil {
			return Order{}, err
		}

		for i, cert := range cmd.Certificates {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO certificates(order_id, position, filename, storage_key, page_count)
				VALUES ($1, $2, $3, $4, $5)`,
				updated.ID, i+1, cert.Filename, cert.StorageKey, cert.PageCount,
			)
			if err != nil {
				return Order{}, fmt.Errorf("insert certificate %d: %w", i+1, err)
			}
		}

		return updated, nil
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, findErr := r.Find(ctx, id); findErr == nil {
				return nil, ErrAlreadyReconciled
			}
			return nil, ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("vendor reply attached",
		"id", o.ID,
		"status", cmd.VendorStatus,
		"payment", cmd.PaymentAmount,
		"certificates", len(cmd.Certificates),
	)
	return &o, nil
}

func (r *repo) Decide(ctx context.Context, id uuid.UUID, decision Decision) (*Order, error) {
	if _, err := ParseDecision(string(decision)); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE orders
		SET manager_decision = $1, stage = $2, updated_at = now()
		WHERE id = $3 AND vendor_status IS NOT NULL AND manager_decision IS NULL
		RETURNING %s`, orderColumns)

	args := []any{decision, decision.StageFor(), id}

	o, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Order, error) {
		return repository.QueryOne(ctx, tx, q, args, scanOrder)
	})

	if err != nil {
		return nil, r.guardFailure(ctx, id, err)
	}

	r.logger.Info("manager decision recorded", "id", o.ID, "decision", decision)
	return &o, nil
}

// guardFailure distinguishes a conditional UPDATE that matched no rows:
// a record in the wrong stage is a transition conflict, a missing record
// is not found.
func (r *repo) guardFailure(ctx context.Context, id uuid.UUID, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		if _, findErr := r.Find(ctx, id); findErr == nil {
			return ErrInvalidTransition
		}
		return ErrNotFound
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

func (r *repo) Certificates(ctx context.Context, orderID uuid.UUID) ([]Certificate, error) {
	q, args := query.
		NewBuilder(certificateProjection, certificateSort).
		WhereEquals("OrderID", &orderID).
		Build()

	certs, err := repository.QueryMany(ctx, r.db, q, args, scanCertificate)
	if err != nil {
		return nil, fmt.Errorf("query certificates: %w", err)
	}
	return certs, nil
}

func (r *repo) Certificate(ctx context.Context, orderID uuid.UUID, position int) (*Certificate, error) {
	q, args := query.
		NewBuilder(certificateProjection).
		WhereEquals("OrderID", &orderID).
		WhereEquals("Position", &position).
		BuildFirst()

	cert, err := repository.QueryOne(ctx, r.db, q, args, scanCertificate)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &cert, nil
}

func (r *repo) DownloadCertificate(ctx context.Context, orderID uuid.UUID, position int) (*Certificate, *storage.DownloadResult, error) {
	cert, err := r.Certificate(ctx, orderID, position)
	if err != nil {
		return nil, nil, err
	}

	result, err := r.store.Download(ctx, cert.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("download certificate %s: %w", cert.StorageKey, err)
	}

	return cert, result, nil
}
