package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/remote"
)

func TestAddSessionPayload(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotAuth   string
		gotBody   map[string]any
	)

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotAuth = r.Header.Get("Authorization")

			body, err := io.ReadAll(r.Body)
			if err != nil {
				t.Errorf("reading body: %v", err)
			}

			if err := json.Unmarshal(body, &gotBody); err != nil {
				t.Errorf("decoding body: %v", err)
			}

			w.WriteHeader(http.StatusCreated)
		}),
	)
	defer srv.Close()

	start := time.Date(2024, 5, 1, 6, 30, 0, 0, time.UTC)

	client := remote.NewClient(srv.URL, "secret-token")

	err := client.AddSession(context.Background(), models.Session{
		StartTime: start,
		Phrase:    "Radhe Radhe",
		Count:     108,
		Duration:  30 * time.Minute,
	})
	if err != nil {
		t.Fatalf("AddSession: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/sessions" {
		t.Errorf("got %s %s, want POST /sessions", gotMethod, gotPath)
	}

	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}

	want := map[string]any{
		"phrase":         "Radhe Radhe",
		"timestampNanos": float64(start.UnixNano()),
		"count":          float64(108),
		"durationMillis": float64((30 * time.Minute).Milliseconds()),
	}

	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Fatalf("unexpected wire payload (-want +got):\n%s", diff)
	}
}

func TestGetSessionSummaries(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/sessions" {
				t.Errorf("got %s %s, want GET /sessions", r.Method, r.URL.Path)
			}

			_, _ = w.Write([]byte(`[
				{"phrase":"Radhe Radhe","timestampNanos":1714545000000000000,"count":108,"durationMillis":1800000},
				{"phrase":"Om Namah Shivaya","timestampNanos":1714631400000000000,"count":27}
			]`))
		}),
	)
	defer srv.Close()

	client := remote.NewClient(srv.URL, "")

	got, err := client.GetSessionSummaries(context.Background())
	if err != nil {
		t.Fatalf("GetSessionSummaries: %v", err)
	}

	want := []models.Session{
		{
			StartTime: time.Unix(0, 1714545000000000000),
			Phrase:    "Radhe Radhe",
			Count:     108,
			Duration:  30 * time.Minute,
		},
		{
			StartTime: time.Unix(0, 1714631400000000000),
			Phrase:    "Om Namah Shivaya",
			Count:     27,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected sessions (-want +got):\n%s", diff)
	}
}

func TestNotFoundIsSentinel(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}),
	)
	defer srv.Close()

	client := remote.NewClient(srv.URL, "")

	_, err := client.GetSessionSummaries(context.Background())
	if !errors.Is(err, remote.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestServerErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}),
	)
	defer srv.Close()

	client := remote.NewClient(srv.URL, "")

	err := client.SyncDailyTotals(context.Background(), []models.DailyTotal{
		{Date: "2024-05-01", Phrase: "Radhe Radhe", Count: 108},
	})
	if err == nil {
		t.Fatal("want error on 500, got nil")
	}

	if errors.Is(err, remote.ErrNotFound) {
		t.Fatal("500 must not map to ErrNotFound")
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Header["Authorization"]; ok {
				t.Error("Authorization header sent without a token")
			}

			_, _ = w.Write([]byte(`[]`))
		}),
	)
	defer srv.Close()

	client := remote.NewClient(srv.URL, "")

	if _, err := client.GetSessionSummaries(context.Background()); err != nil {
		t.Fatalf("GetSessionSummaries: %v", err)
	}
}
