// Package repos holds the thin data-mapper layer over bun. Every query that
// mutates a team, member, or note filters by the owning user's id as well as
// the resource id, so a mismatch can never touch a row.
package repos

import (
	"errors"

	"github.com/median-man/team-tracker/models"
	"github.com/uptrace/bun/driver/pgdriver"
)

// duplicateError translates a Postgres unique violation into the domain
// error naming the conflicting field. Returns nil for any other error.
func duplicateError(err error) *models.DuplicateError {
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) {
		return nil
	}
	if pgErr.Field('C') != "23505" {
		return nil
	}

	switch pgErr.Field('n') {
	case "users_username_key":
		return &models.DuplicateError{Field: "username"}
	case "users_email_key":
		return &models.DuplicateError{Field: "email"}
	}
	return nil
}
