package reconcile

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Outcome summarizes what a single reconciliation pass did.
type Outcome struct {
	// Kind is the entity kind this pass reconciled.
	Kind Kind `json:"kind"`

	// Created counts local records created on first sight of their id.
	Created int `json:"created"`

	// Updated counts local records whose timestamp differed and were rewritten.
	Updated int `json:"updated"`

	// Deleted counts stale local records pruned from the store.
	Deleted int `json:"deleted"`

	// Unchanged counts records skipped because their timestamp matched.
	Unchanged int `json:"unchanged"`
}

// Engine applies the generic create/update/delete diff for one entity kind.
// It is safe for concurrent use across kinds; the Orchestrator guarantees two
// passes for the same kind never interleave.
type Engine struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewEngine creates a reconciliation engine over the given database handle.
func NewEngine(db *gorm.DB, logger *zap.Logger) *Engine {
	return &Engine{db: db, logger: logger}
}

// Reconcile diffs the given remote records against the local collection of
// the adapter's kind and applies the result in one transaction.
//
// When prune is true the records are treated as a complete remote snapshot
// and local records absent from it are deleted. Callers reconciling a partial
// list (e.g. the response of a single-record write) must pass prune=false so
// the rest of the collection survives.
func (e *Engine) Reconcile(ctx context.Context, adapter Adapter, records []Record, prune bool) (*Outcome, error) {
	kind := adapter.Kind()
	out := &Outcome{Kind: kind}

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := adapter.LoadExisting(tx)
		if err != nil {
			return &SaveError{Kind: kind, Err: err}
		}

		for _, rec := range records {
			id := rec.ExternalID()

			local, seen := existing[id]
			if seen {
				// Mark as seen: whatever remains in the map afterwards is stale.
				delete(existing, id)
			} else {
				local = adapter.NewLocal(rec)
			}

			if seen && local.Modified().Equal(rec.Modified()) {
				out.Unchanged++
				continue
			}

			adapter.CopyFields(local, rec)

			if err := adapter.LinkRelations(tx, local, rec); err != nil {
				return &RelationError{Kind: kind, ID: id, Err: err}
			}

			// References are written as id columns by LinkRelations; gorm must
			// not cascade into association structs here.
			if seen {
				err = tx.Omit(clause.Associations).Save(local).Error
			} else {
				err = tx.Omit(clause.Associations).Create(local).Error
			}
			if err != nil {
				return &SaveError{Kind: kind, Err: err}
			}

			if seen {
				out.Updated++
			} else {
				out.Created++
			}
		}

		if prune {
			for _, stale := range existing {
				if err := tx.Delete(stale).Error; err != nil {
					return &SaveError{Kind: kind, Err: err}
				}
				out.Deleted++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Reconciliation pass applied",
		zap.String("kind", string(kind)),
		zap.Int("created", out.Created),
		zap.Int("updated", out.Updated),
		zap.Int("deleted", out.Deleted),
		zap.Int("unchanged", out.Unchanged))

	return out, nil
}
