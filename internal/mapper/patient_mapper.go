package mapper

import (
	"medtriage-be/internal/entity"
	"medtriage-be/internal/model"
)

type PatientMapper struct{}

func NewPatientMapper() *PatientMapper {
	return &PatientMapper{}
}

func (m *PatientMapper) ToEntity(p *model.Patient) *entity.Patient {
	if p == nil {
		return nil
	}
	return &entity.Patient{
		Id:             p.Id,
		UserId:         p.UserId,
		FullName:       p.FullName,
		DateOfBirth:    p.DateOfBirth,
		Gender:         p.Gender,
		Phone:          p.Phone,
		MedicalHistory: stringsFromJSON(p.MedicalHistory),
		Allergies:      stringsFromJSON(p.Allergies),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *PatientMapper) ToModel(p *entity.Patient) *model.Patient {
	if p == nil {
		return nil
	}
	return &model.Patient{
		Id:             p.Id,
		UserId:         p.UserId,
		FullName:       p.FullName,
		DateOfBirth:    p.DateOfBirth,
		Gender:         p.Gender,
		Phone:          p.Phone,
		MedicalHistory: toJSON(p.MedicalHistory),
		Allergies:      toJSON(p.Allergies),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *PatientMapper) ToEntities(patients []*model.Patient) []*entity.Patient {
	entities := make([]*entity.Patient, len(patients))
	for i, p := range patients {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PatientMapper) MedicalEventToEntity(e *model.MedicalEvent) *entity.MedicalEvent {
	if e == nil {
		return nil
	}
	return &entity.MedicalEvent{
		Id:          e.Id,
		PatientId:   e.PatientId,
		EventType:   e.EventType,
		Description: e.Description,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *PatientMapper) MedicalEventToModel(e *entity.MedicalEvent) *model.MedicalEvent {
	if e == nil {
		return nil
	}
	return &model.MedicalEvent{
		Id:          e.Id,
		PatientId:   e.PatientId,
		EventType:   e.EventType,
		Description: e.Description,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *PatientMapper) MedicalEventsToEntities(events []*model.MedicalEvent) []*entity.MedicalEvent {
	entities := make([]*entity.MedicalEvent, len(events))
	for i, e := range events {
		entities[i] = m.MedicalEventToEntity(e)
	}
	return entities
}
