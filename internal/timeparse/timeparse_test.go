package timeparse

import (
	"testing"
	"time"
)

func TestParseHourSameDay(t *testing.T) {
	now := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	got, ok := parseHour("9", now, 6)
	if !ok {
		t.Fatal("expected hour 9 to parse")
	}
	want := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseHourShiftedBackWhenTooFarInFuture(t *testing.T) {
	now := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	got, ok := parseHour("23", now, 6)
	if !ok {
		t.Fatal("expected hour 23 to parse")
	}
	// 23:00 today is 13h ahead of 10:00, beyond the 6h max-future window,
	// so it resolves to yesterday's 23:00.
	want := time.Date(2026, 7, 29, 23, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected shifted back to %v, got %v", want, got)
	}
}

func TestParseHourWithinFutureWindow(t *testing.T) {
	now := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	got, ok := parseHour("14", now, 6)
	if !ok {
		t.Fatal("expected hour 14 to parse")
	}
	want := time.Date(2026, 7, 30, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseMinuteOffsetPlusPrefix(t *testing.T) {
	now := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	got, ok := parseMinuteOffset("+15", now)
	if !ok {
		t.Fatal("expected +15 to parse")
	}
	if want := now.Add(15 * time.Minute).Unix(); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestParseMinuteOffsetInPrefix(t *testing.T) {
	now := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	got, ok := parseMinuteOffset("in 30", now)
	if !ok {
		t.Fatal("expected 'in 30' to parse")
	}
	if want := now.Add(30 * time.Minute).Unix(); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestParseTrackingStampPrefersHour(t *testing.T) {
	now := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	got, ok := ParseTrackingStamp("9", now)
	if !ok {
		t.Fatal("expected plain integer to parse as an hour")
	}
	if want := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC).Unix(); got != want {
		t.Fatalf("expected hour 9 of today (%d), got %d", want, got)
	}
}

func TestParseTrackingStampRejectsGarbage(t *testing.T) {
	now := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	if _, ok := ParseTrackingStamp("", now); ok {
		t.Fatal("expected empty input to fail to parse")
	}
}
