package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// Saga describes a two-step write that must appear atomic even though the
// store has no transactions: a primary write followed by a required
// secondary write, with a compensating action that undoes the primary if
// the secondary fails. Callers close the steps over their repositories;
// the coordinator stays decoupled from entity kinds.
type Saga struct {
	// Op names the overall operation for logs and error reports.
	Op string
	// Collection locates the primary record for orphan reporting.
	Collection string
	// Primary performs the first write and returns the id of the record
	// it created.
	Primary func(ctx context.Context) (string, error)
	// Secondary performs the dependent write. It must use state computed
	// before Primary ran (e.g. a shared timestamp) so both writes agree.
	Secondary func(ctx context.Context, primaryID string) error
	// Compensate undoes the primary write.
	Compensate func(ctx context.Context, primaryID string) error
}

// Coordinator runs sagas to a terminal outcome. Once the primary write
// has started, the sequence is not cancellable: it ends in success, a
// clean rollback, or a fatal orphan report.
type Coordinator struct {
	log *slog.Logger
}

// NewCoordinator creates a saga coordinator.
func NewCoordinator(logger *slog.Logger) *Coordinator {
	return &Coordinator{log: logger.With("adapter", "saga")}
}

// Run executes the saga and returns the primary record's id on success.
//
// Outcomes:
//   - primary fails: its error is returned, nothing was persisted;
//   - secondary fails, compensation succeeds: the secondary error is
//     returned and the caller observes no partial state;
//   - secondary fails, compensation fails: a domain.ConsistencyFatalError
//     is returned carrying the collection and id of the orphaned record.
func (c *Coordinator) Run(ctx context.Context, s Saga) (string, error) {
	primaryID, err := s.Primary(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: primary write: %w", s.Op, err)
	}

	if err := s.Secondary(ctx, primaryID); err != nil {
		c.log.ErrorContext(ctx, "secondary write failed, rolling back",
			slog.String("op", s.Op),
			slog.String("collection", collectionLabel(s.Collection)),
			slog.String("item_id", primaryID),
			slog.String("error", err.Error()),
		)

		if rbErr := s.Compensate(ctx, primaryID); rbErr != nil {
			fatal := &domain.ConsistencyFatalError{
				Operation:     s.Op,
				Collection:    s.Collection,
				ItemID:        primaryID,
				Cause:         err,
				RollbackCause: rbErr,
			}
			c.log.ErrorContext(ctx, "rollback failed, orphaned record requires manual cleanup",
				slog.String("op", s.Op),
				slog.String("collection", collectionLabel(s.Collection)),
				slog.String("item_id", primaryID),
				slog.String("secondary_error", err.Error()),
				slog.String("rollback_error", rbErr.Error()),
			)
			return "", fatal
		}

		c.log.InfoContext(ctx, "rollback complete",
			slog.String("op", s.Op),
			slog.String("item_id", primaryID),
		)
		return "", fmt.Errorf("%s: secondary write: %w", s.Op, err)
	}

	return primaryID, nil
}
