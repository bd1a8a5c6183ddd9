package models_test

import (
	"testing"
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/models"
)

func TestSessionKey(t *testing.T) {
	start := time.Date(2024, 5, 1, 6, 30, 0, 0, time.UTC)

	base := models.Session{
		StartTime: start,
		Phrase:    "Radhe Radhe",
		Count:     108,
	}

	same := base
	same.Duration = 30 * time.Minute

	// duration is not part of the identity
	if base.Key() != same.Key() {
		t.Fatal("keys differ for the same identity")
	}

	variants := []models.Session{
		{StartTime: start.Add(time.Nanosecond), Phrase: "Radhe Radhe", Count: 108},
		{StartTime: start, Phrase: "Hare Krishna", Count: 108},
		{StartTime: start, Phrase: "Radhe Radhe", Count: 54},
	}

	for i, v := range variants {
		if v.Key() == base.Key() {
			t.Errorf("variant %d shares the base key %q", i, base.Key())
		}
	}
}

func TestSessionDay(t *testing.T) {
	sess := models.Session{
		StartTime: time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC),
	}

	if got := sess.Day(); got != "2024-05-01" {
		t.Fatalf("Day = %q, want 2024-05-01", got)
	}
}
