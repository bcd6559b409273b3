package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableSQLState(t *testing.T) {
	tests := []struct {
		code      string
		retryable bool
	}{
		{"40001", true}, // serialization_failure
		{"40P01", true}, // deadlock_detected
		{"08006", true}, // connection_failure
		{"08P01", true}, // protocol_violation
		{"53300", true}, // too_many_connections
		{"57P03", true}, // cannot_connect_now

		{"23505", false}, // unique_violation
		{"23503", false}, // foreign_key_violation
		{"42703", false}, // undefined_column
		{"42601", false}, // syntax_error
		{"22001", false}, // string_data_right_truncation
		{"P0002", false}, // no_data_found
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableSQLState(tt.code))
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"context canceled", context.Canceled, false},
		{"no rows", sql.ErrNoRows, false},
		{"deadlock via pgconn", &pgconn.PgError{Code: "40P01"}, true},
		{"unique violation via pgconn", &pgconn.PgError{Code: "23505"}, false},
		{"wrapped deadlock", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40001"}), true},
		{"connection refused message", errors.New("dial tcp: connection refused"), true},
		{"too many clients message", errors.New("FATAL: sorry, too many clients already"), true},
		{"arbitrary error", errors.New("something else"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}
