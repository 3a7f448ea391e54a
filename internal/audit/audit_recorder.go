package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder is the write-side used by other services. Audit failures are
// logged, never propagated: a missing trail entry must not fail the action
// it describes.
type Recorder interface {
	Record(ctx context.Context, userID, action, resource, resourceID string, details any)
}

type recorder struct {
	repo   Repository
	logger *zap.Logger
}

func NewRecorder(repo Repository, logger ...*zap.Logger) Recorder {
	l := zap.L().Named("audit.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.recorder")
	}
	return &recorder{repo: repo, logger: l}
}

func (r *recorder) Record(ctx context.Context, userID, action, resource, resourceID string, details any) {
	entry := &AuditLog{
		ID:         uuid.New(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		CreatedAt:  time.Now().UTC(),
	}

	if uid, err := uuid.Parse(userID); err == nil {
		entry.UserID = &uid
	}

	if details != nil {
		if payload, err := json.Marshal(details); err == nil {
			entry.Details = payload
		}
	}

	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.Error("audit record failed",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.Error(err),
		)
	}
}
