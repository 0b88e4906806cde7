package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	clinicName  string
	userEmail   string
	daysAround  int
	perDay      int
	sessionTTL  time.Duration
	withoutLink bool
}

type seedResult struct {
	UserID       string
	ClinicID     string
	SessionToken string
	Doctors      int
	Patients     int
	Appointments int
}

type demoDoctor struct {
	name      string
	specialty string
	price     int64
}

var demoDoctors = []demoDoctor{
	{"Dra. Ana Souza", "Cardiology", 25000},
	{"Dr. Bruno Lima", "Dermatology", 18000},
	{"Dra. Carla Mendes", "Pediatrics", 15000},
}

var demoPatients = []struct {
	name string
	sex  string
}{
	{"Paula Ribeiro", "female"},
	{"Pedro Alves", "male"},
	{"Marina Costa", "female"},
	{"Lucas Ferreira", "male"},
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	opts := seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo clinic with appointments around today",
		Long: `Create a user, a clinic, doctors, patients and appointments spread over the
days around today, then print a session token for the user.

Examples:
  clinicctl seed
  clinicctl seed --clinic-name "Clinica Vida" --per-day 4
  clinicctl seed --no-clinic   # user without a clinic, for the clinic form redirect`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := root.url()
			if err != nil {
				return err
			}
			conn, closeFn, err := root.openDB(cmd.Context(), url)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer closeFn()

			res, err := seedDemo(cmd.Context(), conn, time.Now(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user:          %s\n", res.UserID)
			if res.ClinicID != "" {
				fmt.Fprintf(out, "clinic:        %s\n", res.ClinicID)
			}
			fmt.Fprintf(out, "doctors:       %d\n", res.Doctors)
			fmt.Fprintf(out, "patients:      %d\n", res.Patients)
			fmt.Fprintf(out, "appointments:  %d\n", res.Appointments)
			fmt.Fprintf(out, "session token: %s\n", res.SessionToken)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.clinicName, "clinic-name", "Clinica Demo", "Name of the seeded clinic")
	cmd.Flags().StringVar(&opts.userEmail, "email", "", "Email of the seeded user (random when empty)")
	cmd.Flags().IntVar(&opts.daysAround, "days", 10, "Seed appointments from today-days to today+days")
	cmd.Flags().IntVar(&opts.perDay, "per-day", 2, "Appointments per day")
	cmd.Flags().DurationVar(&opts.sessionTTL, "session-ttl", 7*24*time.Hour, "Lifetime of the printed session")
	cmd.Flags().BoolVar(&opts.withoutLink, "no-clinic", false, "Create only the user and session")
	return cmd
}

func seedDemo(ctx context.Context, b beginner, now time.Time, opts seedOptions) (seedResult, error) {
	if opts.daysAround < 0 || opts.perDay < 0 {
		return seedResult{}, fmt.Errorf("--days and --per-day must not be negative")
	}
	if opts.sessionTTL <= 0 {
		opts.sessionTTL = 24 * time.Hour
	}

	tx, err := b.Begin(ctx)
	if err != nil {
		return seedResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res := seedResult{
		UserID:       uuid.NewString(),
		SessionToken: strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
	email := opts.userEmail
	if email == "" {
		email = "demo+" + res.UserID[:8] + "@clinicboard.local"
	}

	if _, err := tx.Exec(ctx, `INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`, res.UserID, "Demo User", email); err != nil {
		return seedResult{}, fmt.Errorf("insert user: %w", err)
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO sessions (id, token, user_id, expires_at) VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), res.SessionToken, res.UserID, now.Add(opts.sessionTTL)); err != nil {
		return seedResult{}, fmt.Errorf("insert session: %w", err)
	}

	if !opts.withoutLink {
		if err := seedClinic(ctx, tx, now, opts, &res); err != nil {
			return seedResult{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return seedResult{}, err
	}
	return res, nil
}

func seedClinic(ctx context.Context, tx pgx.Tx, now time.Time, opts seedOptions, res *seedResult) error {
	res.ClinicID = uuid.NewString()
	if _, err := tx.Exec(ctx, `INSERT INTO clinics (id, name) VALUES ($1, $2)`, res.ClinicID, opts.clinicName); err != nil {
		return fmt.Errorf("insert clinic: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO users_to_clinics (user_id, clinic_id) VALUES ($1, $2)`, res.UserID, res.ClinicID); err != nil {
		return fmt.Errorf("link user to clinic: %w", err)
	}

	doctorIDs := make([]string, len(demoDoctors))
	for i, d := range demoDoctors {
		doctorIDs[i] = uuid.NewString()
		if _, err := tx.Exec(ctx, `
			INSERT INTO doctors (id, clinic_id, name, specialty, appointment_price_in_cents)
			VALUES ($1, $2, $3, $4, $5)
		`, doctorIDs[i], res.ClinicID, d.name, d.specialty, d.price); err != nil {
			return fmt.Errorf("insert doctor: %w", err)
		}
	}
	res.Doctors = len(doctorIDs)

	patientIDs := make([]string, len(demoPatients))
	for i, p := range demoPatients {
		patientIDs[i] = uuid.NewString()
		email := strings.ToLower(strings.ReplaceAll(p.name, " ", ".")) + "@example.com"
		if _, err := tx.Exec(ctx, `
			INSERT INTO patients (id, clinic_id, name, email, phone_number, sex)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, patientIDs[i], res.ClinicID, p.name, email, fmt.Sprintf("+55119%08d", i+1), p.sex); err != nil {
			return fmt.Errorf("insert patient: %w", err)
		}
	}
	res.Patients = len(patientIDs)

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	n := 0
	for day := -opts.daysAround; day <= opts.daysAround; day++ {
		for slot := 0; slot < opts.perDay; slot++ {
			doctor := n % len(doctorIDs)
			at := today.AddDate(0, 0, day).Add(time.Duration(9+slot) * time.Hour)
			if _, err := tx.Exec(ctx, `
				INSERT INTO appointments (id, clinic_id, patient_id, doctor_id, date, appointment_price_in_cents)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, uuid.NewString(), res.ClinicID, patientIDs[n%len(patientIDs)], doctorIDs[doctor], at, demoDoctors[doctor].price); err != nil {
				return fmt.Errorf("insert appointment: %w", err)
			}
			n++
		}
	}
	res.Appointments = n
	return nil
}
