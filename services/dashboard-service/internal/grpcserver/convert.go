package grpcserver

import (
	clinicboardv1 "github.com/clinicboard/clinicboard/protos/gen/clinicboard/v1"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func reportToProto(r *model.Report) *clinicboardv1.DashboardReport {
	out := &clinicboardv1.DashboardReport{
		TotalRevenue:          &clinicboardv1.Total{Total: r.TotalRevenue.Total},
		TotalAppointments:     &clinicboardv1.Total{Total: r.TotalAppointments.Total},
		TotalPatients:         &clinicboardv1.Total{Total: r.TotalPatients.Total},
		TotalDoctors:          &clinicboardv1.Total{Total: r.TotalDoctors.Total},
		TopDoctors:            make([]*clinicboardv1.DoctorRanking, 0, len(r.TopDoctors)),
		TopSpecialties:        make([]*clinicboardv1.SpecialtyRanking, 0, len(r.TopSpecialties)),
		TodayAppointments:     make([]*clinicboardv1.Appointment, 0, len(r.TodayAppointments)),
		DailyAppointmentsData: make([]*clinicboardv1.DailyAppointments, 0, len(r.DailyAppointmentsData)),
	}
	for _, d := range r.TopDoctors {
		out.TopDoctors = append(out.TopDoctors, &clinicboardv1.DoctorRanking{
			Id:             d.ID,
			Name:           d.Name,
			AvatarImageUrl: d.AvatarImageURL,
			Specialty:      d.Specialty,
			Appointments:   d.Appointments,
		})
	}
	for _, sp := range r.TopSpecialties {
		out.TopSpecialties = append(out.TopSpecialties, &clinicboardv1.SpecialtyRanking{
			Specialty:    sp.Specialty,
			Appointments: sp.Appointments,
		})
	}
	for _, a := range r.TodayAppointments {
		out.TodayAppointments = append(out.TodayAppointments, appointmentToProto(a))
	}
	for _, d := range r.DailyAppointmentsData {
		out.DailyAppointmentsData = append(out.DailyAppointmentsData, &clinicboardv1.DailyAppointments{
			Date:         d.Date,
			Appointments: d.Appointments,
			Revenue:      d.Revenue,
		})
	}
	return out
}

func appointmentToProto(a model.Appointment) *clinicboardv1.Appointment {
	return &clinicboardv1.Appointment{
		Id:                      a.ID,
		Date:                    timestamppb.New(a.Date),
		AppointmentPriceInCents: a.AppointmentPriceInCents,
		ClinicId:                a.ClinicID,
		PatientId:               a.PatientID,
		DoctorId:                a.DoctorID,
		Patient: &clinicboardv1.Patient{
			Id:          a.Patient.ID,
			ClinicId:    a.Patient.ClinicID,
			Name:        a.Patient.Name,
			Email:       a.Patient.Email,
			PhoneNumber: a.Patient.PhoneNumber,
			Sex:         a.Patient.Sex,
		},
		Doctor: &clinicboardv1.Doctor{
			Id:                      a.Doctor.ID,
			ClinicId:                a.Doctor.ClinicID,
			Name:                    a.Doctor.Name,
			AvatarImageUrl:          a.Doctor.AvatarImageURL,
			Specialty:               a.Doctor.Specialty,
			AppointmentPriceInCents: a.Doctor.AppointmentPriceInCents,
		},
	}
}
