// FILE: internal/service/hospital_service.go
package service

import (
	"context"
	"errors"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/specification"
	"medtriage-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IHospitalService interface {
	ListHospitals(ctx context.Context, query *dto.HospitalQuery) ([]*dto.HospitalResponse, error)
	GetHospital(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error)
	ListDoctors(ctx context.Context, hospitalId uuid.UUID, specialty string) ([]*dto.DoctorResponse, error)
}

type hospitalService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHospitalService(uowFactory unitofwork.RepositoryFactory) IHospitalService {
	return &hospitalService{uowFactory: uowFactory}
}

func (s *hospitalService) ListHospitals(ctx context.Context, query *dto.HospitalQuery) ([]*dto.HospitalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if query.City != "" {
		specs = append(specs, specification.ByCity{City: query.City})
	}
	if query.Specialty != "" {
		specs = append(specs, specification.HasSpecialty{Specialty: query.Specialty})
	}
	if query.EmergencyCapable {
		specs = append(specs, specification.EmergencyCapable{})
	}

	hospitals, err := uow.HospitalRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.HospitalResponse, len(hospitals))
	for i, h := range hospitals {
		out[i] = hospitalToResponse(h)
	}
	return out, nil
}

func (s *hospitalService) GetHospital(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	hospital, err := uow.HospitalRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, errors.New("hospital not found")
	}
	return hospitalToResponse(hospital), nil
}

func (s *hospitalService) ListDoctors(ctx context.Context, hospitalId uuid.UUID, specialty string) ([]*dto.DoctorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ByHospital{HospitalID: hospitalId}}
	if specialty != "" {
		specs = append(specs, specification.BySpecialty{Specialty: specialty})
	}

	doctors, err := uow.HospitalRepository().FindDoctors(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		out[i] = &dto.DoctorResponse{
			Id:           d.Id,
			HospitalId:   d.HospitalId,
			FullName:     d.FullName,
			Specialty:    d.Specialty,
			Availability: d.Availability,
		}
	}
	return out, nil
}

func hospitalToResponse(h *entity.Hospital) *dto.HospitalResponse {
	return &dto.HospitalResponse{
		Id:               h.Id,
		Name:             h.Name,
		Address:          h.Address,
		City:             h.City,
		Phone:            h.Phone,
		Specialties:      h.Specialties,
		EmergencyCapable: h.EmergencyCapable,
	}
}
