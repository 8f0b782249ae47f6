// Package repository implements the query layer on top of GORM. It
// defines sentinel errors so handlers can distinguish failure modes
// instead of collapsing everything into a single catch-all: ErrNotFound
// maps to a 404 page, ErrConflict to a 409 (e.g. deleting a venue that
// still has shows, or creating a show against a missing artist).
package repository

import "errors"

// ErrNotFound is returned when a lookup by id has no matching row.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an operation cannot proceed because of
// dependent or missing related records.
var ErrConflict = errors.New("conflict")
