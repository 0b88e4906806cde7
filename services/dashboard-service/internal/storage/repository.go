package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicboard/clinicboard/libs/db"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("dashboard-service/storage")

// ErrZoneNotNamed is returned for time.Local, which Postgres cannot resolve.
var ErrZoneNotNamed = errors.New("time zone has no IANA name")

// Repository reads the clinic application's tables. Every query is scoped by clinic_id.
type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) *Repository {
	return &Repository{db: q}
}

func startSpan(ctx context.Context, name, clinicID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("clinic.id", clinicID),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *Repository) SumRevenue(ctx context.Context, clinicID string, from, to time.Time) (total int64, err error) {
	ctx, span := startSpan(ctx, "storage.SumRevenue", clinicID)
	defer func() { endSpan(span, err) }()

	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(appointment_price_in_cents), 0)::bigint
		FROM appointments
		WHERE clinic_id = $1 AND date >= $2 AND date < $3
	`, clinicID, from, to).Scan(&total)
	return total, err
}

func (r *Repository) CountAppointments(ctx context.Context, clinicID string, from, to time.Time) (total int64, err error) {
	ctx, span := startSpan(ctx, "storage.CountAppointments", clinicID)
	defer func() { endSpan(span, err) }()

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM appointments
		WHERE clinic_id = $1 AND date >= $2 AND date < $3
	`, clinicID, from, to).Scan(&total)
	return total, err
}

func (r *Repository) CountPatients(ctx context.Context, clinicID string) (total int64, err error) {
	ctx, span := startSpan(ctx, "storage.CountPatients", clinicID)
	defer func() { endSpan(span, err) }()

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients WHERE clinic_id = $1`, clinicID).Scan(&total)
	return total, err
}

func (r *Repository) CountDoctors(ctx context.Context, clinicID string) (total int64, err error) {
	ctx, span := startSpan(ctx, "storage.CountDoctors", clinicID)
	defer func() { endSpan(span, err) }()

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM doctors WHERE clinic_id = $1`, clinicID).Scan(&total)
	return total, err
}

// TopDoctors keeps doctors without appointments in the window (count 0).
func (r *Repository) TopDoctors(ctx context.Context, clinicID string, from, to time.Time, limit int) (out []model.DoctorRanking, err error) {
	ctx, span := startSpan(ctx, "storage.TopDoctors", clinicID)
	defer func() { endSpan(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT d.id::text, d.name, COALESCE(d.avatar_image_url, ''), d.specialty, COUNT(a.id) AS appointments
		FROM doctors d
		LEFT JOIN appointments a
			ON a.doctor_id = d.id
			AND a.clinic_id = d.clinic_id
			AND a.date >= $2 AND a.date < $3
		WHERE d.clinic_id = $1
		GROUP BY d.id
		ORDER BY appointments DESC, d.name ASC
		LIMIT $4
	`, clinicID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d model.DoctorRanking
		if err = rows.Scan(&d.ID, &d.Name, &d.AvatarImageURL, &d.Specialty, &d.Appointments); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	err = rows.Err()
	return out, err
}

func (r *Repository) TopSpecialties(ctx context.Context, clinicID string, from, to time.Time) (out []model.SpecialtyRanking, err error) {
	ctx, span := startSpan(ctx, "storage.TopSpecialties", clinicID)
	defer func() { endSpan(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT d.specialty, COUNT(a.id) AS appointments
		FROM appointments a
		INNER JOIN doctors d ON d.id = a.doctor_id AND d.clinic_id = a.clinic_id
		WHERE a.clinic_id = $1 AND a.date >= $2 AND a.date < $3
		GROUP BY d.specialty
		ORDER BY appointments DESC, d.specialty ASC
	`, clinicID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.SpecialtyRanking
		if err = rows.Scan(&s.Specialty, &s.Appointments); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	err = rows.Err()
	return out, err
}

// AppointmentsBetween returns appointments with their patient and doctor, ordered by date.
func (r *Repository) AppointmentsBetween(ctx context.Context, clinicID string, from, to time.Time) (out []model.Appointment, err error) {
	ctx, span := startSpan(ctx, "storage.AppointmentsBetween", clinicID)
	defer func() { endSpan(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT a.id::text, a.date, a.appointment_price_in_cents, a.clinic_id::text, a.patient_id::text, a.doctor_id::text,
			p.name, COALESCE(p.email, ''), COALESCE(p.phone_number, ''), p.sex,
			d.name, COALESCE(d.avatar_image_url, ''), d.specialty, d.appointment_price_in_cents
		FROM appointments a
		INNER JOIN patients p ON p.id = a.patient_id
		INNER JOIN doctors d ON d.id = a.doctor_id
		WHERE a.clinic_id = $1 AND a.date >= $2 AND a.date < $3
		ORDER BY a.date ASC
	`, clinicID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Appointment, error) {
		var a model.Appointment
		err := row.Scan(
			&a.ID, &a.Date, &a.AppointmentPriceInCents, &a.ClinicID, &a.PatientID, &a.DoctorID,
			&a.Patient.Name, &a.Patient.Email, &a.Patient.PhoneNumber, &a.Patient.Sex,
			&a.Doctor.Name, &a.Doctor.AvatarImageURL, &a.Doctor.Specialty, &a.Doctor.AppointmentPriceInCents,
		)
		a.Patient.ID, a.Patient.ClinicID = a.PatientID, a.ClinicID
		a.Doctor.ID, a.Doctor.ClinicID = a.DoctorID, a.ClinicID
		return a, err
	})
	return out, err
}

// DailyAppointments groups by calendar day in loc; days without appointments are absent.
func (r *Repository) DailyAppointments(ctx context.Context, clinicID string, from, to time.Time, loc *time.Location) (out []model.DailyAppointments, err error) {
	ctx, span := startSpan(ctx, "storage.DailyAppointments", clinicID)
	defer func() { endSpan(span, err) }()

	zone := loc.String()
	if zone == "Local" {
		return nil, fmt.Errorf("daily appointments: %w", ErrZoneNotNamed)
	}

	rows, err := r.db.Query(ctx, `
		SELECT to_char(a.date AT TIME ZONE $4, 'YYYY-MM-DD') AS day,
			COUNT(a.id) AS appointments,
			COALESCE(SUM(a.appointment_price_in_cents), 0)::bigint AS revenue
		FROM appointments a
		WHERE a.clinic_id = $1 AND a.date >= $2 AND a.date < $3
		GROUP BY day
		ORDER BY day ASC
	`, clinicID, from, to, zone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d model.DailyAppointments
		if err = rows.Scan(&d.Date, &d.Appointments, &d.Revenue); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	err = rows.Err()
	return out, err
}
