package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
	"github.com/google/go-cmp/cmp"
)

type fixtureStore struct {
	doctors      []model.Doctor
	patients     []model.Patient
	appointments []model.Appointment
	failOn       string
}

var errStoreDown = errors.New("store down")

func (f *fixtureStore) fail(name string) error {
	if f.failOn == name {
		return errStoreDown
	}
	return nil
}

func (f *fixtureStore) between(clinicID string, from, to time.Time) []model.Appointment {
	var out []model.Appointment
	for _, a := range f.appointments {
		if a.ClinicID == clinicID && !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, a)
		}
	}
	return out
}

func (f *fixtureStore) doctor(id string) (model.Doctor, bool) {
	for _, d := range f.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return model.Doctor{}, false
}

func (f *fixtureStore) SumRevenue(_ context.Context, clinicID string, from, to time.Time) (int64, error) {
	if err := f.fail("revenue"); err != nil {
		return 0, err
	}
	var total int64
	for _, a := range f.between(clinicID, from, to) {
		total += a.AppointmentPriceInCents
	}
	return total, nil
}

func (f *fixtureStore) CountAppointments(_ context.Context, clinicID string, from, to time.Time) (int64, error) {
	if err := f.fail("appointments"); err != nil {
		return 0, err
	}
	return int64(len(f.between(clinicID, from, to))), nil
}

func (f *fixtureStore) CountPatients(_ context.Context, clinicID string) (int64, error) {
	var n int64
	for _, p := range f.patients {
		if p.ClinicID == clinicID {
			n++
		}
	}
	return n, nil
}

func (f *fixtureStore) CountDoctors(_ context.Context, clinicID string) (int64, error) {
	var n int64
	for _, d := range f.doctors {
		if d.ClinicID == clinicID {
			n++
		}
	}
	return n, nil
}

func (f *fixtureStore) TopDoctors(_ context.Context, clinicID string, from, to time.Time, limit int) ([]model.DoctorRanking, error) {
	counts := map[string]int64{}
	for _, a := range f.between(clinicID, from, to) {
		counts[a.DoctorID]++
	}
	var out []model.DoctorRanking
	for _, d := range f.doctors {
		if d.ClinicID != clinicID {
			continue
		}
		out = append(out, model.DoctorRanking{ID: d.ID, Name: d.Name, AvatarImageURL: d.AvatarImageURL, Specialty: d.Specialty, Appointments: counts[d.ID]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Appointments != out[j].Appointments {
			return out[i].Appointments > out[j].Appointments
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fixtureStore) TopSpecialties(_ context.Context, clinicID string, from, to time.Time) ([]model.SpecialtyRanking, error) {
	counts := map[string]int64{}
	for _, a := range f.between(clinicID, from, to) {
		if d, ok := f.doctor(a.DoctorID); ok {
			counts[d.Specialty]++
		}
	}
	var out []model.SpecialtyRanking
	for s, n := range counts {
		out = append(out, model.SpecialtyRanking{Specialty: s, Appointments: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Appointments != out[j].Appointments {
			return out[i].Appointments > out[j].Appointments
		}
		return out[i].Specialty < out[j].Specialty
	})
	return out, nil
}

func (f *fixtureStore) AppointmentsBetween(_ context.Context, clinicID string, from, to time.Time) ([]model.Appointment, error) {
	if err := f.fail("today"); err != nil {
		return nil, err
	}
	out := f.between(clinicID, from, to)
	for i := range out {
		out[i].Doctor, _ = f.doctor(out[i].DoctorID)
		for _, p := range f.patients {
			if p.ID == out[i].PatientID {
				out[i].Patient = p
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fixtureStore) DailyAppointments(_ context.Context, clinicID string, from, to time.Time, loc *time.Location) ([]model.DailyAppointments, error) {
	byDay := map[string]*model.DailyAppointments{}
	var keys []string
	for _, a := range f.between(clinicID, from, to) {
		key := a.Date.In(loc).Format(DateLayout)
		row, ok := byDay[key]
		if !ok {
			row = &model.DailyAppointments{Date: key}
			byDay[key] = row
			keys = append(keys, key)
		}
		row.Appointments++
		row.Revenue += a.AppointmentPriceInCents
	}
	sort.Strings(keys)
	var out []model.DailyAppointments
	for _, k := range keys {
		out = append(out, *byDay[k])
	}
	return out, nil
}

var testNow = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func day(d int, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func marchRange() model.DateRange {
	return model.DateRange{From: day(1, 0), To: day(31, 0)}
}

func newFixture() *fixtureStore {
	return &fixtureStore{
		doctors: []model.Doctor{
			{ID: "doc-a", ClinicID: "clinic-1", Name: "Ana", Specialty: "Cardiology", AppointmentPriceInCents: 1000},
			{ID: "doc-b", ClinicID: "clinic-1", Name: "Bruno", Specialty: "Dermatology", AppointmentPriceInCents: 2000},
			{ID: "doc-x", ClinicID: "clinic-2", Name: "Xavier", Specialty: "Cardiology", AppointmentPriceInCents: 9999},
		},
		patients: []model.Patient{
			{ID: "pat-1", ClinicID: "clinic-1", Name: "Paula", Sex: "female"},
			{ID: "pat-2", ClinicID: "clinic-1", Name: "Pedro", Sex: "male"},
			{ID: "pat-x", ClinicID: "clinic-2", Name: "Other", Sex: "male"},
		},
	}
}

func appt(id, clinicID, doctorID, patientID string, at time.Time, price int64) model.Appointment {
	return model.Appointment{ID: id, ClinicID: clinicID, DoctorID: doctorID, PatientID: patientID, Date: at, AppointmentPriceInCents: price}
}

func TestGetDashboardSumsRevenueInRange(t *testing.T) {
	store := newFixture()
	store.appointments = []model.Appointment{
		appt("a1", "clinic-1", "doc-a", "pat-1", day(2, 9), 1000),
		appt("a2", "clinic-1", "doc-b", "pat-2", day(10, 9), 2000),
		appt("a3", "clinic-1", "doc-a", "pat-2", day(31, 23), 1500),
		appt("a4", "clinic-1", "doc-a", "pat-1", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), 7000),
		appt("x1", "clinic-2", "doc-x", "pat-x", day(10, 9), 9999),
	}

	agg := NewAggregator(store, fixedClock, DefaultSettings())
	report, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-1", Range: marchRange()})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if report.TotalRevenue.Total != 4500 {
		t.Fatalf("expected revenue 4500, got %d", report.TotalRevenue.Total)
	}
	if report.TotalAppointments.Total != 3 {
		t.Fatalf("expected 3 appointments, got %d", report.TotalAppointments.Total)
	}
	if report.TotalPatients.Total != 2 || report.TotalDoctors.Total != 2 {
		t.Fatalf("expected 2 patients and 2 doctors, got %d and %d", report.TotalPatients.Total, report.TotalDoctors.Total)
	}
}

func TestGetDashboardRanksDoctorsIncludingIdle(t *testing.T) {
	store := newFixture()
	for i := 0; i < 5; i++ {
		store.appointments = append(store.appointments, appt("a"+string(rune('0'+i)), "clinic-1", "doc-a", "pat-1", day(3+i, 10), 1000))
	}

	agg := NewAggregator(store, fixedClock, DefaultSettings())
	report, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-1", Range: marchRange()})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	want := []model.DoctorRanking{
		{ID: "doc-a", Name: "Ana", Specialty: "Cardiology", Appointments: 5},
		{ID: "doc-b", Name: "Bruno", Specialty: "Dermatology", Appointments: 0},
	}
	if diff := cmp.Diff(want, report.TopDoctors); diff != "" {
		t.Fatalf("top doctors mismatch (-want +got):\n%s", diff)
	}
	wantSpecialties := []model.SpecialtyRanking{{Specialty: "Cardiology", Appointments: 5}}
	if diff := cmp.Diff(wantSpecialties, report.TopSpecialties); diff != "" {
		t.Fatalf("top specialties mismatch (-want +got):\n%s", diff)
	}
}

func TestGetDashboardCapsTopDoctors(t *testing.T) {
	store := newFixture()
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("doc-%02d", i)
		store.doctors = append(store.doctors, model.Doctor{ID: id, ClinicID: "clinic-1", Name: fmt.Sprintf("Doctor %02d", i), Specialty: "General"})
		store.appointments = append(store.appointments, appt("busy-"+id, "clinic-1", id, "pat-1", day(2, 9), 1000))
	}

	settings := DefaultSettings()
	settings.TopDoctorsLimit = 50
	agg := NewAggregator(store, fixedClock, settings)
	report, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-1", Range: marchRange()})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if len(report.TopDoctors) != MaxTopDoctors {
		t.Fatalf("expected %d doctors, got %d", MaxTopDoctors, len(report.TopDoctors))
	}
	for _, d := range report.TopDoctors {
		if d.Appointments != 1 {
			t.Fatalf("idle doctor %s ranked above busy ones", d.ID)
		}
	}
}

func TestGetDashboardTodayIgnoresSelectedRange(t *testing.T) {
	store := newFixture()
	store.appointments = []model.Appointment{
		appt("late", "clinic-1", "doc-b", "pat-2", day(15, 17), 2000),
		appt("early", "clinic-1", "doc-a", "pat-1", day(15, 8), 1000),
		appt("tomorrow", "clinic-1", "doc-a", "pat-1", day(16, 0), 1000),
		appt("other", "clinic-2", "doc-x", "pat-x", day(15, 9), 9999),
	}

	agg := NewAggregator(store, fixedClock, DefaultSettings())
	report, err := agg.GetDashboard(context.Background(), Params{
		ClinicID: "clinic-1",
		Range:    model.DateRange{From: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if report.TotalAppointments.Total != 0 {
		t.Fatalf("expected no appointments in the selected range, got %d", report.TotalAppointments.Total)
	}
	if len(report.TodayAppointments) != 2 {
		t.Fatalf("expected 2 appointments today, got %d", len(report.TodayAppointments))
	}
	if report.TodayAppointments[0].ID != "early" || report.TodayAppointments[1].ID != "late" {
		t.Fatalf("unexpected order: %s, %s", report.TodayAppointments[0].ID, report.TodayAppointments[1].ID)
	}
	if report.TodayAppointments[0].Patient.Name != "Paula" || report.TodayAppointments[0].Doctor.Name != "Ana" {
		t.Fatalf("expected patient and doctor to be attached, got %+v", report.TodayAppointments[0])
	}
}

func TestGetDashboardDailyChartIsZeroFilled(t *testing.T) {
	store := newFixture()
	store.appointments = []model.Appointment{
		appt("before-window", "clinic-1", "doc-a", "pat-1", day(4, 23), 1000),
		appt("first", "clinic-1", "doc-a", "pat-1", day(5, 0), 1000),
		appt("today-1", "clinic-1", "doc-a", "pat-1", day(15, 9), 1000),
		appt("today-2", "clinic-1", "doc-b", "pat-2", day(15, 11), 2000),
		appt("last", "clinic-1", "doc-b", "pat-2", day(25, 23), 2000),
		appt("after-window", "clinic-1", "doc-b", "pat-2", day(26, 0), 2000),
	}

	agg := NewAggregator(store, fixedClock, DefaultSettings())
	report, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-1", Range: marchRange()})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	chart := report.DailyAppointmentsData
	if len(chart) != 21 {
		t.Fatalf("expected 21 chart entries, got %d", len(chart))
	}
	if chart[0].Date != "2026-03-05" || chart[20].Date != "2026-03-25" {
		t.Fatalf("unexpected chart bounds: %s .. %s", chart[0].Date, chart[20].Date)
	}
	if diff := cmp.Diff(model.DailyAppointments{Date: "2026-03-05", Appointments: 1, Revenue: 1000}, chart[0]); diff != "" {
		t.Fatalf("first day mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(model.DailyAppointments{Date: "2026-03-15", Appointments: 2, Revenue: 3000}, chart[10]); diff != "" {
		t.Fatalf("today mismatch (-want +got):\n%s", diff)
	}
	if chart[1].Appointments != 0 || chart[1].Revenue != 0 {
		t.Fatalf("expected empty day to be zero, got %+v", chart[1])
	}
	if chart[20].Appointments != 1 {
		t.Fatalf("expected last day to have 1 appointment, got %+v", chart[20])
	}
}

func TestGetDashboardEmptyClinic(t *testing.T) {
	agg := NewAggregator(&fixtureStore{}, fixedClock, DefaultSettings())
	report, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-empty", Range: marchRange()})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if report.TotalRevenue.Total != 0 || report.TotalAppointments.Total != 0 {
		t.Fatalf("expected zero totals, got %+v", report)
	}
	if report.TopDoctors == nil || report.TopSpecialties == nil || report.TodayAppointments == nil {
		t.Fatal("expected empty lists, got nil")
	}
	if len(report.DailyAppointmentsData) != 21 {
		t.Fatalf("expected 21 chart entries, got %d", len(report.DailyAppointmentsData))
	}
}

func TestGetDashboardFailsWhenAnyReadFails(t *testing.T) {
	for _, failOn := range []string{"revenue", "appointments", "today"} {
		store := newFixture()
		store.failOn = failOn
		agg := NewAggregator(store, fixedClock, DefaultSettings())
		report, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-1", Range: marchRange()})
		if !errors.Is(err, errStoreDown) {
			t.Fatalf("%s: expected store error, got %v", failOn, err)
		}
		if report != nil {
			t.Fatalf("%s: expected no partial report", failOn)
		}
	}
}

func TestGetDashboardValidatesParams(t *testing.T) {
	agg := NewAggregator(newFixture(), fixedClock, DefaultSettings())

	if _, err := agg.GetDashboard(context.Background(), Params{Range: marchRange()}); !errors.Is(err, ErrMissingClinic) {
		t.Fatalf("expected ErrMissingClinic, got %v", err)
	}
	inverted := model.DateRange{From: day(20, 0), To: day(10, 0)}
	if _, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-1", Range: inverted}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGetDashboardUsesConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	store := newFixture()
	// 01:00 UTC on the 16th is still the 15th at UTC-3.
	store.appointments = []model.Appointment{
		appt("night", "clinic-1", "doc-a", "pat-1", time.Date(2026, time.March, 16, 1, 0, 0, 0, time.UTC), 1000),
	}

	settings := DefaultSettings()
	settings.Location = loc
	agg := NewAggregator(store, fixedClock, settings)
	report, err := agg.GetDashboard(context.Background(), Params{ClinicID: "clinic-1", Range: MonthRange(testNow, loc)})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if len(report.TodayAppointments) != 1 {
		t.Fatalf("expected the late appointment to count as today, got %d", len(report.TodayAppointments))
	}
	if report.DailyAppointmentsData[10].Date != "2026-03-15" || report.DailyAppointmentsData[10].Appointments != 1 {
		t.Fatalf("unexpected chart entry for today: %+v", report.DailyAppointmentsData[10])
	}
}
