package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors returned by store operations. Handlers translate these to
// HTTP statuses at the request boundary.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means an insert violated a unique constraint (duplicate
	// code, telegram handle or link tuple).
	ErrConflict = errors.New("already exists")
	// ErrInvalidReference means a link request named an entity that does
	// not currently exist. Links are never inserted with a missing key.
	ErrInvalidReference = errors.New("unknown reference")
)

// Store owns all database access. Each method is a single transaction;
// nothing holds a session across calls.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// GORM's error translation covers recent driver versions; the string check
// covers sqlite drivers that predate it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// dedupe collapses repeated ids while preserving first-seen order.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
