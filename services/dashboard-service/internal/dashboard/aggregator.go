package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var ErrMissingClinic = errors.New("clinic id is required")

// Store runs the clinic scoped aggregate reads. Every window is half-open [from, to).
type Store interface {
	SumRevenue(ctx context.Context, clinicID string, from, to time.Time) (int64, error)
	CountAppointments(ctx context.Context, clinicID string, from, to time.Time) (int64, error)
	CountPatients(ctx context.Context, clinicID string) (int64, error)
	CountDoctors(ctx context.Context, clinicID string) (int64, error)
	TopDoctors(ctx context.Context, clinicID string, from, to time.Time, limit int) ([]model.DoctorRanking, error)
	TopSpecialties(ctx context.Context, clinicID string, from, to time.Time) ([]model.SpecialtyRanking, error)
	AppointmentsBetween(ctx context.Context, clinicID string, from, to time.Time) ([]model.Appointment, error)
	DailyAppointments(ctx context.Context, clinicID string, from, to time.Time, loc *time.Location) ([]model.DailyAppointments, error)
}

type Params struct {
	ClinicID string
	Range    model.DateRange
}

type Aggregator struct {
	store    Store
	now      func() time.Time
	settings Settings
}

func NewAggregator(store Store, now func() time.Time, settings Settings) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{store: store, now: now, settings: settings.withDefaults()}
}

func (a *Aggregator) Location() *time.Location {
	return a.settings.Location
}

// Now reads the injected clock.
func (a *Aggregator) Now() time.Time {
	return a.now()
}

// GetDashboard issues the eight reads concurrently and returns the report only when all succeed.
func (a *Aggregator) GetDashboard(ctx context.Context, p Params) (*model.Report, error) {
	clinicID := strings.TrimSpace(p.ClinicID)
	if clinicID == "" {
		return nil, ErrMissingClinic
	}
	if p.Range.From.After(p.Range.To) {
		return nil, ErrInvalidRange
	}

	ctx, span := otel.Tracer("dashboard").Start(ctx, "dashboard.GetDashboard")
	defer span.End()
	span.SetAttributes(attribute.String("clinic.id", clinicID))

	loc := a.settings.Location
	now := a.now()
	selected := rangeWindow(p.Range, loc)
	today := startOfDay(now, loc)
	todayWindow := window{start: today, end: today.AddDate(0, 0, 1)}
	chart := window{
		start: today.AddDate(0, 0, -a.settings.ChartDaysBefore),
		end:   today.AddDate(0, 0, a.settings.ChartDaysAfter+1),
	}

	var report model.Report
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := a.store.SumRevenue(gctx, clinicID, selected.start, selected.end)
		if err != nil {
			return fmt.Errorf("total revenue: %w", err)
		}
		report.TotalRevenue.Total = v
		return nil
	})
	g.Go(func() error {
		v, err := a.store.CountAppointments(gctx, clinicID, selected.start, selected.end)
		if err != nil {
			return fmt.Errorf("total appointments: %w", err)
		}
		report.TotalAppointments.Total = v
		return nil
	})
	g.Go(func() error {
		v, err := a.store.CountPatients(gctx, clinicID)
		if err != nil {
			return fmt.Errorf("total patients: %w", err)
		}
		report.TotalPatients.Total = v
		return nil
	})
	g.Go(func() error {
		v, err := a.store.CountDoctors(gctx, clinicID)
		if err != nil {
			return fmt.Errorf("total doctors: %w", err)
		}
		report.TotalDoctors.Total = v
		return nil
	})
	g.Go(func() error {
		v, err := a.store.TopDoctors(gctx, clinicID, selected.start, selected.end, a.settings.TopDoctorsLimit)
		if err != nil {
			return fmt.Errorf("top doctors: %w", err)
		}
		report.TopDoctors = v
		return nil
	})
	g.Go(func() error {
		v, err := a.store.TopSpecialties(gctx, clinicID, selected.start, selected.end)
		if err != nil {
			return fmt.Errorf("top specialties: %w", err)
		}
		report.TopSpecialties = v
		return nil
	})
	g.Go(func() error {
		v, err := a.store.AppointmentsBetween(gctx, clinicID, todayWindow.start, todayWindow.end)
		if err != nil {
			return fmt.Errorf("today appointments: %w", err)
		}
		report.TodayAppointments = v
		return nil
	})
	g.Go(func() error {
		v, err := a.store.DailyAppointments(gctx, clinicID, chart.start, chart.end, loc)
		if err != nil {
			return fmt.Errorf("daily appointments: %w", err)
		}
		report.DailyAppointmentsData = fillDays(v, chart, loc)
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if report.TopDoctors == nil {
		report.TopDoctors = []model.DoctorRanking{}
	}
	if report.TopSpecialties == nil {
		report.TopSpecialties = []model.SpecialtyRanking{}
	}
	if report.TodayAppointments == nil {
		report.TodayAppointments = []model.Appointment{}
	}
	return &report, nil
}

// fillDays returns one entry per calendar day of w, taking counts from rows and zero elsewhere.
func fillDays(rows []model.DailyAppointments, w window, loc *time.Location) []model.DailyAppointments {
	byDate := make(map[string]model.DailyAppointments, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r
	}

	out := []model.DailyAppointments{}
	for d := w.start; d.Before(w.end); d = d.AddDate(0, 0, 1) {
		key := d.In(loc).Format(DateLayout)
		if r, ok := byDate[key]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, model.DailyAppointments{Date: key})
	}
	return out
}
