package reconcile

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Kind identifies one category of synchronized records (e.g. "device", "site").
type Kind string

// Record is implemented by both remote property records and local persisted
// records. The external id is the sole correlation key between the two; the
// modification timestamp gates updates (equal timestamps mean "unchanged").
type Record interface {
	// ExternalID returns the stable remote identifier, unique within a kind.
	ExternalID() int64

	// Modified returns the remote last-updated timestamp.
	Modified() time.Time
}

// Adapter supplies the kind-specific operations the engine is generic over.
// Implementations live next to their models; the diff algorithm never needs
// to know the concrete types.
type Adapter interface {
	// Kind returns the entity kind this adapter reconciles.
	Kind() Kind

	// Fetch retrieves the complete remote collection for this kind, following
	// pagination. The result drives a full pass including stale pruning.
	Fetch(ctx context.Context) ([]Record, error)

	// LoadExisting returns all local records of this kind keyed by external id.
	// Values must be pointers to the gorm model so the engine can persist them.
	LoadExisting(tx *gorm.DB) (map[int64]Record, error)

	// NewLocal instantiates an unsaved local record from a remote one.
	// Scalar fields are populated separately via CopyFields.
	NewLocal(rec Record) Record

	// CopyFields copies the remote record's scalar fields onto the local one,
	// including its last-updated timestamp.
	CopyFields(local, rec Record)

	// LinkRelations resolves the remote record's foreign keys against the
	// local collections of the target kinds and sets the corresponding
	// reference columns on local. A key that does not resolve is not an
	// error; it stays unset and heals on a later pass.
	LinkRelations(tx *gorm.DB, local, rec Record) error
}

// ResolveRef resolves one remote foreign key against the local collection of
// the target model T and returns the reference column value to store:
//
//   - fk == 0 (no relation upstream) clears the reference,
//   - a local record with that id exists: reference it,
//   - no local record yet: keep prev untouched so a later pass can resolve it.
//
// The lookup is read-only with respect to T's collection.
func ResolveRef[T any](tx *gorm.DB, fk int64, prev *int64) (*int64, error) {
	if fk == 0 {
		return nil, nil
	}

	var target T
	err := tx.Select("id").First(&target, fk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return prev, nil
	}
	if err != nil {
		return prev, err
	}

	return &fk, nil
}
