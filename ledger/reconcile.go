package ledger

import (
	"sort"

	"github.com/caffeinepub/naamjap-voice/internal/models"
)

// Merge combines two independently grown session logs without losing or
// duplicating entries. Every session in the union with a distinct identity
// key appears exactly once in the result, which is sorted ascending by
// start time regardless of input order. Merging is idempotent and
// commutative in content.
func Merge(local, remote []models.Session) []models.Session {
	seen := make(map[string]struct{}, len(local))

	for i := range local {
		seen[local[i].Key()] = struct{}{}
	}

	merged := make([]models.Session, len(local), len(local)+len(remote))
	copy(merged, local)

	for i := range remote {
		sess := remote[i]

		if _, ok := seen[sess.Key()]; ok {
			continue
		}

		seen[sess.Key()] = struct{}{}

		merged = append(merged, sess)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartTime.Before(merged[j].StartTime)
	})

	return merged
}

// RebuildTotals derives the daily totals from a session log, grouping by
// calendar day and phrase. It is the authoritative definition that the
// ledger's incremental bookkeeping must agree with.
func RebuildTotals(sessions []models.Session) []models.DailyTotal {
	return New(sessions).DailyTotals()
}
