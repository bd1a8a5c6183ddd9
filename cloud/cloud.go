// Package cloud reconciles the local practice log with its remote mirror.
// Sync failures are never fatal: the local log stays authoritative and the
// next user-triggered sync retries implicitly.
package cloud

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/ledger"
	"github.com/caffeinepub/naamjap-voice/remote"
)

// Syncer drives the one-at-a-time merge with the remote store. Callers
// must not run a sync concurrently with another ledger mutation.
type Syncer struct {
	api remote.API
}

func NewSyncer(api remote.API) *Syncer {
	return &Syncer{api: api}
}

// SyncOnLogin pulls the remote session set, merges it into the ledger,
// uploads the sessions the remote was missing, and pushes the rebuilt
// daily totals back. A remote that has no data yet is an empty set, not an
// error. It returns how many sessions were adopted from the remote and how
// many were uploaded to it.
func (s *Syncer) SyncOnLogin(
	ctx context.Context,
	led *ledger.Ledger,
) (pulled, pushed int, err error) {
	sessions, err := s.api.GetSessionSummaries(ctx)
	if err != nil {
		if !errors.Is(err, remote.ErrNotFound) {
			return 0, 0, err
		}

		sessions = nil
	}

	local := led.Sessions()

	pulled = led.Merge(sessions)

	pushed = s.PushMissing(ctx, local, sessions)

	if err := s.api.SyncDailyTotals(ctx, led.DailyTotals()); err != nil {
		slog.Warn("failed to push daily totals", slog.Any("error", err))
	}

	return pulled, pushed, nil
}

// MirrorSession uploads a freshly saved session on a best-effort basis.
// Failures are logged and swallowed so an in-progress practice session is
// never aborted by the network.
func (s *Syncer) MirrorSession(ctx context.Context, sess models.Session) {
	if err := s.api.AddSession(ctx, sess); err != nil {
		slog.Warn(
			"failed to mirror session",
			slog.String("phrase", sess.Phrase),
			slog.Any("error", err),
		)
	}
}

// PushMissing uploads local sessions the remote does not have yet,
// comparing by identity key.
func (s *Syncer) PushMissing(
	ctx context.Context,
	local, remoteSessions []models.Session,
) int {
	seen := make(map[string]struct{}, len(remoteSessions))

	for i := range remoteSessions {
		seen[remoteSessions[i].Key()] = struct{}{}
	}

	var pushed int

	for i := range local {
		sess := local[i]

		if _, ok := seen[sess.Key()]; ok {
			continue
		}

		if err := s.api.AddSession(ctx, sess); err != nil {
			slog.Warn(
				"failed to upload session",
				slog.String("phrase", sess.Phrase),
				slog.Any("error", err),
			)

			continue
		}

		pushed++
	}

	return pushed
}
