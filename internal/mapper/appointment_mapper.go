package mapper

import (
	"medtriage-be/internal/entity"
	"medtriage-be/internal/model"
)

type AppointmentMapper struct{}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	return &entity.Appointment{
		Id:             a.Id,
		PatientId:      a.PatientId,
		DoctorId:       a.DoctorId,
		HospitalId:     a.HospitalId,
		ScheduledAt:    a.ScheduledAt,
		Status:         entity.AppointmentStatus(a.Status),
		Reason:         a.Reason,
		ReminderSentAt: a.ReminderSentAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	return &model.Appointment{
		Id:             a.Id,
		PatientId:      a.PatientId,
		DoctorId:       a.DoctorId,
		HospitalId:     a.HospitalId,
		ScheduledAt:    a.ScheduledAt,
		Status:         string(a.Status),
		Reason:         a.Reason,
		ReminderSentAt: a.ReminderSentAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToEntities(appointments []*model.Appointment) []*entity.Appointment {
	entities := make([]*entity.Appointment, len(appointments))
	for i, a := range appointments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
