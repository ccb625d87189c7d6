package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const snapshotKeyPrefix = "gymlog-backup||"

var ErrBackupNotFound = errors.New("backup not found")

type Repo struct {
	redisClient *redis.Client
}

func NewRepo(redisClient *redis.Client) *Repo {
	return &Repo{
		redisClient: redisClient,
	}
}

func snapshotKey(userID string) string {
	return snapshotKeyPrefix + userID
}

// Save stores the snapshot under the user's key. SET is an atomic
// per-key replace, so a first backup and a re-backup take the same
// path and concurrent saves resolve to whichever write lands last.
func (r *Repo) Save(ctx context.Context, snapshot Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.backup.save")
	span.SetAttributes(attribute.String("user.id", snapshot.UserID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := r.redisClient.Set(ctx, snapshotKey(snapshot.UserID), snapshotJson, 0).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.backup.get")
	span.SetAttributes(attribute.String("user.id", userID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := r.redisClient.Get(ctx, snapshotKey(userID))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBackupNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(cmd.Val()), &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
