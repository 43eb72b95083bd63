// Package repository is the persistence gateway and the per-entity
// repositories built on it. Repositories never talk to *sql.DB directly;
// everything goes through Gateway so that connection scoping and error
// classification live in one place.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/gym-management/internal/apperr"
)

// notFoundOr maps sql.ErrNoRows to a not_found AppError for the entity and
// returns any other error unchanged.
func notFoundOr(err error, entity string, id ...uint64) error {
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	details := ""
	switch len(id) {
	case 1:
		details = fmt.Sprintf("id=%d", id[0])
	case 2:
		details = fmt.Sprintf("id=(%d,%d)", id[0], id[1])
	}
	return apperr.NewNotFoundError(entity+" not found", details)
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
