package dashboard

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestParseRangeDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	r, err := ParseRange("", "", now, time.UTC)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if got := r.From.Format(DateLayout); got != "2024-02-01" {
		t.Fatalf("expected from 2024-02-01, got %s", got)
	}
	if got := r.To.Format(DateLayout); got != "2024-02-29" {
		t.Fatalf("expected to 2024-02-29, got %s", got)
	}
}

func TestParseRangeRejectsBadInput(t *testing.T) {
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)

	if _, err := ParseRange("2024-13-01", "", now, time.UTC); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ParseRange("", "yesterday", now, time.UTC); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ParseRange("2024-02-20", "2024-02-10", now, time.UTC); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRangeWindowIncludesWholeLastDay(t *testing.T) {
	r, err := ParseRange("2024-02-01", "2024-02-01", time.Now(), time.UTC)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	w := rangeWindow(r, time.UTC)
	if !w.start.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %s", w.start)
	}
	if !w.end.Equal(time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %s", w.end)
	}
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	t.Setenv("TIMEZONE", "")
	t.Setenv("TOP_DOCTORS_LIMIT", "3")
	t.Setenv("CHART_DAYS_BEFORE", "")
	t.Setenv("CHART_DAYS_AFTER", "")

	path := t.TempDir() + "/dashboard.hcl"
	if err := writeFile(path, "timezone = \"America/Sao_Paulo\"\ntop_doctors_limit = 5\nchart_days_before = 7\n"); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Location.String() != "America/Sao_Paulo" {
		t.Fatalf("expected file timezone, got %s", s.Location)
	}
	if s.TopDoctorsLimit != 3 {
		t.Fatalf("expected env limit 3, got %d", s.TopDoctorsLimit)
	}
	if s.ChartDaysBefore != 7 || s.ChartDaysAfter != 10 {
		t.Fatalf("unexpected chart days: %d/%d", s.ChartDaysBefore, s.ChartDaysAfter)
	}
}

func TestLoadSettingsRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus")
	if _, err := LoadSettings(""); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestLoadSettingsRejectsLocalTimezone(t *testing.T) {
	for _, tz := range []string{"Local", "local"} {
		t.Setenv("TIMEZONE", tz)
		if _, err := LoadSettings(""); err == nil {
			t.Fatalf("expected %q to be rejected", tz)
		}
	}
}

func TestLoadSettingsBounds(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("CHART_DAYS_BEFORE", "")
	t.Setenv("CHART_DAYS_AFTER", "")

	for _, limit := range []string{"11", "0", "-1"} {
		t.Setenv("TOP_DOCTORS_LIMIT", limit)
		if _, err := LoadSettings(""); err == nil {
			t.Fatalf("expected TOP_DOCTORS_LIMIT=%s to be rejected", limit)
		}
	}

	t.Setenv("TOP_DOCTORS_LIMIT", "")
	t.Setenv("CHART_DAYS_BEFORE", "0")
	if _, err := LoadSettings(""); err == nil {
		t.Fatal("expected CHART_DAYS_BEFORE=0 to be rejected")
	}

	t.Setenv("CHART_DAYS_BEFORE", "")
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.TopDoctorsLimit != MaxTopDoctors || s.ChartDaysBefore != 10 || s.ChartDaysAfter != 10 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
