package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("from must not be after to")
)

// ParseRange reads the YYYY-MM-DD query values. An empty bound falls back to the
// first or last day of the month containing now.
func ParseRange(from, to string, now time.Time, loc *time.Location) (model.DateRange, error) {
	def := MonthRange(now, loc)
	r := def

	if v := strings.TrimSpace(from); v != "" {
		t, err := time.ParseInLocation(DateLayout, v, loc)
		if err != nil {
			return model.DateRange{}, fmt.Errorf("%w: from %q", ErrInvalidDate, v)
		}
		r.From = t
	}
	if v := strings.TrimSpace(to); v != "" {
		t, err := time.ParseInLocation(DateLayout, v, loc)
		if err != nil {
			return model.DateRange{}, fmt.Errorf("%w: to %q", ErrInvalidDate, v)
		}
		r.To = t
	}
	if r.From.After(r.To) {
		return model.DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// MonthRange spans the first to the last calendar day of the month containing now.
func MonthRange(now time.Time, loc *time.Location) model.DateRange {
	y, m, _ := now.In(loc).Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return model.DateRange{From: first, To: first.AddDate(0, 1, -1)}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// window is a half-open instant interval [start, end).
type window struct {
	start time.Time
	end   time.Time
}

// rangeWindow turns the inclusive calendar range into [from 00:00, to+1 00:00).
func rangeWindow(r model.DateRange, loc *time.Location) window {
	from := startOfDay(r.From, loc)
	to := startOfDay(r.To, loc)
	return window{start: from, end: to.AddDate(0, 0, 1)}
}
