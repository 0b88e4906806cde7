package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/clinicboard/clinicboard/libs/config"
)

const (
	// MaxTopDoctors caps the doctor ranking; TopDoctorsLimit can only lower it.
	MaxTopDoctors = 10
	maxChartDays  = 90
)

type Settings struct {
	Location        *time.Location
	TopDoctorsLimit int
	ChartDaysBefore int
	ChartDaysAfter  int
}

func DefaultSettings() Settings {
	return Settings{
		Location:        time.UTC,
		TopDoctorsLimit: MaxTopDoctors,
		ChartDaysBefore: 10,
		ChartDaysAfter:  10,
	}
}

type fileSettings struct {
	Timezone        string `hcl:"timezone,optional"`
	TopDoctorsLimit int    `hcl:"top_doctors_limit,optional"`
	ChartDaysBefore int    `hcl:"chart_days_before,optional"`
	ChartDaysAfter  int    `hcl:"chart_days_after,optional"`
}

// LoadSettings layers the optional HCL file at path under the TIMEZONE,
// TOP_DOCTORS_LIMIT, CHART_DAYS_BEFORE and CHART_DAYS_AFTER variables.
// Zero in the file means unset. The timezone must be an IANA name, the doctor limit
// within 1..MaxTopDoctors and each chart side within 1..90 days.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	tz := "UTC"

	if strings.TrimSpace(path) != "" {
		var f fileSettings
		if _, err := config.LoadFile(path, &f); err != nil {
			return Settings{}, err
		}
		if f.Timezone != "" {
			tz = f.Timezone
		}
		if f.TopDoctorsLimit > 0 {
			s.TopDoctorsLimit = f.TopDoctorsLimit
		}
		if f.ChartDaysBefore > 0 {
			s.ChartDaysBefore = f.ChartDaysBefore
		}
		if f.ChartDaysAfter > 0 {
			s.ChartDaysAfter = f.ChartDaysAfter
		}
	}

	tz = strings.TrimSpace(config.String("TIMEZONE", tz))
	loc, err := loadLocation(tz)
	if err != nil {
		return Settings{}, err
	}
	s.Location = loc
	s.TopDoctorsLimit = config.Int("TOP_DOCTORS_LIMIT", s.TopDoctorsLimit)
	s.ChartDaysBefore = config.Int("CHART_DAYS_BEFORE", s.ChartDaysBefore)
	s.ChartDaysAfter = config.Int("CHART_DAYS_AFTER", s.ChartDaysAfter)

	if s.TopDoctorsLimit < 1 || s.TopDoctorsLimit > MaxTopDoctors {
		return Settings{}, fmt.Errorf("top doctors limit %d outside 1..%d", s.TopDoctorsLimit, MaxTopDoctors)
	}
	for name, v := range map[string]int{"chart days before": s.ChartDaysBefore, "chart days after": s.ChartDaysAfter} {
		if v < 1 || v > maxChartDays {
			return Settings{}, fmt.Errorf("%s %d outside 1..%d", name, v, maxChartDays)
		}
	}
	return s, nil
}

// loadLocation accepts IANA names only. The name is sent to Postgres for day grouping,
// and "Local" means nothing there.
func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "Local") {
		return nil, fmt.Errorf("timezone %q is not an IANA zone name", name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Location == nil {
		s.Location = d.Location
	}
	if s.TopDoctorsLimit <= 0 || s.TopDoctorsLimit > MaxTopDoctors {
		s.TopDoctorsLimit = d.TopDoctorsLimit
	}
	if s.ChartDaysBefore <= 0 {
		s.ChartDaysBefore = d.ChartDaysBefore
	}
	if s.ChartDaysAfter <= 0 {
		s.ChartDaysAfter = d.ChartDaysAfter
	}
	return s
}
