package mapper

import (
	"medtriage-be/internal/entity"
	"medtriage-be/internal/model"
)

type HospitalMapper struct{}

func NewHospitalMapper() *HospitalMapper {
	return &HospitalMapper{}
}

func (m *HospitalMapper) ToEntity(h *model.Hospital) *entity.Hospital {
	if h == nil {
		return nil
	}
	return &entity.Hospital{
		Id:               h.Id,
		Name:             h.Name,
		Address:          h.Address,
		City:             h.City,
		Phone:            h.Phone,
		Specialties:      stringsFromJSON(h.Specialties),
		EmergencyCapable: h.EmergencyCapable,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}

func (m *HospitalMapper) ToModel(h *entity.Hospital) *model.Hospital {
	if h == nil {
		return nil
	}
	return &model.Hospital{
		Id:               h.Id,
		Name:             h.Name,
		Address:          h.Address,
		City:             h.City,
		Phone:            h.Phone,
		Specialties:      toJSON(h.Specialties),
		EmergencyCapable: h.EmergencyCapable,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}

func (m *HospitalMapper) ToEntities(hospitals []*model.Hospital) []*entity.Hospital {
	entities := make([]*entity.Hospital, len(hospitals))
	for i, h := range hospitals {
		entities[i] = m.ToEntity(h)
	}
	return entities
}

func (m *HospitalMapper) DoctorToEntity(d *model.Doctor) *entity.Doctor {
	if d == nil {
		return nil
	}
	return &entity.Doctor{
		Id:           d.Id,
		HospitalId:   d.HospitalId,
		FullName:     d.FullName,
		Specialty:    d.Specialty,
		Availability: stringSlicesFromJSON(d.Availability),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (m *HospitalMapper) DoctorToModel(d *entity.Doctor) *model.Doctor {
	if d == nil {
		return nil
	}
	return &model.Doctor{
		Id:           d.Id,
		HospitalId:   d.HospitalId,
		FullName:     d.FullName,
		Specialty:    d.Specialty,
		Availability: toJSON(d.Availability),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (m *HospitalMapper) DoctorsToEntities(doctors []*model.Doctor) []*entity.Doctor {
	entities := make([]*entity.Doctor, len(doctors))
	for i, d := range doctors {
		entities[i] = m.DoctorToEntity(d)
	}
	return entities
}
