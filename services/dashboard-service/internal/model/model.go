package model

import "time"

type Clinic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Clinic *Clinic `json:"clinic,omitempty"`
}

type Session struct {
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type Doctor struct {
	ID                      string `json:"id"`
	ClinicID                string `json:"clinicId"`
	Name                    string `json:"name"`
	AvatarImageURL          string `json:"avatarImageUrl"`
	Specialty               string `json:"specialty"`
	AppointmentPriceInCents int64  `json:"appointmentPriceInCents"`
}

type Patient struct {
	ID          string `json:"id"`
	ClinicID    string `json:"clinicId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Sex         string `json:"sex"`
}

type Appointment struct {
	ID                      string    `json:"id"`
	Date                    time.Time `json:"date"`
	AppointmentPriceInCents int64     `json:"appointmentPriceInCents"`
	ClinicID                string    `json:"clinicId"`
	PatientID               string    `json:"patientId"`
	DoctorID                string    `json:"doctorId"`
	Patient                 Patient   `json:"patient"`
	Doctor                  Doctor    `json:"doctor"`
}

// DateRange holds calendar days; both bounds are midnight in the dashboard location and inclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}

type Total struct {
	Total int64 `json:"total"`
}

type DoctorRanking struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AvatarImageURL string `json:"avatarImageUrl"`
	Specialty      string `json:"specialty"`
	Appointments   int64  `json:"appointments"`
}

type SpecialtyRanking struct {
	Specialty    string `json:"specialty"`
	Appointments int64  `json:"appointments"`
}

// DailyAppointments is one chart point; Date is formatted as YYYY-MM-DD.
type DailyAppointments struct {
	Date         string `json:"date"`
	Appointments int64  `json:"appointments"`
	Revenue      int64  `json:"revenue"`
}

type Report struct {
	TotalRevenue          Total               `json:"totalRevenue"`
	TotalAppointments     Total               `json:"totalAppointments"`
	TotalPatients         Total               `json:"totalPatients"`
	TotalDoctors          Total               `json:"totalDoctors"`
	TopDoctors            []DoctorRanking     `json:"topDoctors"`
	TopSpecialties        []SpecialtyRanking  `json:"topSpecialties"`
	TodayAppointments     []Appointment       `json:"todayAppointments"`
	DailyAppointmentsData []DailyAppointments `json:"dailyAppointmentsData"`
}
