package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campaign-srv/internal/campaign/repository"
	"campaign-srv/pkg/log"
	pkgRedis "campaign-srv/pkg/redis"
)

const (
	lockKeyFormat    = "campaign:suggest:lock:%s:%s"
	sessionKeyFormat = "campaign:suggest:session:%s:%s"
)

type implRepository struct {
	client pkgRedis.IRedis
	l      log.Logger
}

// New - Factory function
func New(client pkgRedis.IRedis, l log.Logger) repository.SessionRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

// AcquireSuggestionLock takes the per-step-output in-flight lock.
func (r *implRepository) AcquireSuggestionLock(ctx context.Context, campaignID, stepID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(lockKeyFormat, campaignID, stepID)
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), ttl)
	if err != nil {
		return false, fmt.Errorf("AcquireSuggestionLock: %w", err)
	}
	return ok, nil
}

// ReleaseSuggestionLock frees the in-flight lock.
func (r *implRepository) ReleaseSuggestionLock(ctx context.Context, campaignID, stepID string) error {
	key := fmt.Sprintf(lockKeyFormat, campaignID, stepID)
	if err := r.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("ReleaseSuggestionLock: %w", err)
	}
	return nil
}

// SaveSession stores the pending candidate with a TTL so abandoned
// sessions expire on their own.
func (r *implRepository) SaveSession(ctx context.Context, sess repository.SuggestionSession, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("SaveSession marshal: %w", err)
	}

	key := fmt.Sprintf(sessionKeyFormat, sess.CampaignID, sess.StepID)
	if err := r.client.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("SaveSession: %w", err)
	}
	return nil
}

// GetSession fetches the pending session for a step output.
func (r *implRepository) GetSession(ctx context.Context, campaignID, stepID string) (repository.SuggestionSession, error) {
	key := fmt.Sprintf(sessionKeyFormat, campaignID, stepID)

	raw, err := r.client.Get(ctx, key)
	if err != nil {
		if pkgRedis.IsNil(err) {
			return repository.SuggestionSession{}, repository.ErrNotFound
		}
		return repository.SuggestionSession{}, fmt.Errorf("GetSession: %w", err)
	}

	var sess repository.SuggestionSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return repository.SuggestionSession{}, fmt.Errorf("GetSession unmarshal: %w", err)
	}
	return sess, nil
}

// DeleteSession drops the pending session.
func (r *implRepository) DeleteSession(ctx context.Context, campaignID, stepID string) error {
	key := fmt.Sprintf(sessionKeyFormat, campaignID, stepID)
	if err := r.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("DeleteSession: %w", err)
	}
	return nil
}
