package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shipdesk/shipdesk/pkg/repository"
)

var (
	errNotFound  = errors.New("record not found")
	errDuplicate = errors.New("record already exists")
)

func TestMapError(t *testing.T) {
	driverErr := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil passes through", err: nil, want: nil},
		{name: "no rows", err: sql.ErrNoRows, want: errNotFound},
		{
			name: "wrapped no rows",
			err:  fmt.Errorf("find order: %w", sql.ErrNoRows),
			want: errNotFound,
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: errDuplicate,
		},
		{
			name: "other postgres error",
			err:  &pgconn.PgError{Code: "23503"},
			want: &pgconn.PgError{Code: "23503"},
		},
		{name: "unrelated error", err: driverErr, want: driverErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)

			switch want := tt.want.(type) {
			case nil:
				if got != nil {
					t.Errorf("MapError = %v, want nil", got)
				}
			case *pgconn.PgError:
				var pgErr *pgconn.PgError
				if !errors.As(got, &pgErr) || pgErr.Code != want.Code {
					t.Errorf("MapError = %v, want code %s", got, want.Code)
				}
			default:
				if !errors.Is(got, tt.want) {
					t.Errorf("MapError = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
