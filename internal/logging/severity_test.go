package logging_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"folio/internal/logging"
)

func TestSeverityTrackerRecordsMax(t *testing.T) {
	tracker := logging.NewSeverityTracker()
	if _, seen := tracker.Max(); seen {
		t.Fatal("fresh tracker claims to have seen records")
	}

	logPath := filepath.Join(t.TempDir(), "run.log")
	logger, err := logging.New(logging.Options{
		Format:           "console",
		Level:            "info",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
		Tap:              tracker,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("fine")
	if tracker.SawWarnings() {
		t.Fatal("info record counted as warning")
	}
	logger.Warn("conflict")
	if !tracker.SawWarnings() || tracker.SawErrors() {
		t.Fatalf("after warn: warnings=%v errors=%v", tracker.SawWarnings(), tracker.SawErrors())
	}
	logger.Error("broken")
	if !tracker.SawErrors() {
		t.Fatal("error record not tracked")
	}
	max, seen := tracker.Max()
	if !seen || max != slog.LevelError {
		t.Fatalf("Max() = %v, %v", max, seen)
	}

	logger.Info("later info must not lower the max")
	if max, _ := tracker.Max(); max != slog.LevelError {
		t.Fatalf("max regressed to %v", max)
	}
}

func TestSeverityTrackerSeesSuppressedRecords(t *testing.T) {
	tracker := logging.NewSeverityTracker()
	logPath := filepath.Join(t.TempDir(), "run.log")
	logger, err := logging.New(logging.Options{
		Format:           "console",
		Level:            "error",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
		Tap:              tracker,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("hidden from console, still counted")
	if !tracker.SawWarnings() {
		t.Fatal("suppressed warn record not tracked")
	}
}

func TestFanoutFiltersNilHandlers(t *testing.T) {
	if h := logging.Fanout(nil, nil); h == nil {
		t.Fatal("Fanout returned nil")
	} else if _, ok := h.(logging.NoopHandler); !ok {
		t.Fatalf("Fanout of nils = %T, want NoopHandler", h)
	}

	tracker := logging.NewSeverityTracker()
	if h := logging.Fanout(nil, tracker); h != tracker {
		t.Fatalf("Fanout with one live handler = %T, want the handler itself", h)
	}
}

func TestFanoutDeliversToAll(t *testing.T) {
	a := logging.NewSeverityTracker()
	b := logging.NewSeverityTracker()
	logger := slog.New(logging.Fanout(a, b))
	logger.Error("shared")
	if !a.SawErrors() || !b.SawErrors() {
		t.Fatalf("delivery incomplete: a=%v b=%v", a.SawErrors(), b.SawErrors())
	}
}
