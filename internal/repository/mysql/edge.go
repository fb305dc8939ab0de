package mysql

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// toggleStep runs inside one transaction: delete the edge if present, else insert it.
type toggleStep func(tx *gorm.DB) (domain.ToggleState, error)

// toggleEdge runs step in its own transaction and re-runs it when it loses a race
// against a concurrent toggle of the same edge. The unique index on the edge
// table guarantees that at most one edge exists whatever the interleaving.
func toggleEdge(ctx context.Context, db *gorm.DB, fields logrus.Fields, step toggleStep) (domain.ToggleState, error) {
	var lastErr error
	for attempt := 1; attempt <= domain.MaxToggleAttempts; attempt++ {
		var state domain.ToggleState
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			s, err := step(tx)
			if err != nil {
				return err
			}
			state = s
			return nil
		})
		if err == nil {
			return state, nil
		}
		if !isRetryable(err) {
			return "", err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		lastErr = err
		reason := "lock contention"
		if isDuplicateKey(err) {
			reason = "edge inserted concurrently"
		}
		logrus.WithFields(fields).WithField("attempt", attempt).Warnf("toggle lost a race (%s): %v", reason, err)
	}

	logrus.WithFields(fields).Errorf("toggle gave up after %d attempts: %v", domain.MaxToggleAttempts, lastErr)
	return "", fmt.Errorf("%w: concurrent toggles did not settle, try again", domain.ErrConflict)
}
