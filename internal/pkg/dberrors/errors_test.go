package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "newsletter_subscribers_email_key"}
	if !IsUniqueViolation(unique) {
		t.Fatal("expected unique violation to be detected")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", unique)) {
		t.Fatal("expected wrapped unique violation to be detected")
	}

	other := &pgconn.PgError{Code: "23503"}
	if IsUniqueViolation(other) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain errors are not unique violations")
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil is not a unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "community_members_email_key",
	})

	if !IsDuplicateConstraintError(err, "community_members_email_key") {
		t.Fatal("expected constraint match")
	}
	if IsDuplicateConstraintError(err, "newsletter_subscribers_email_key") {
		t.Fatal("constraint names must match exactly")
	}
}
