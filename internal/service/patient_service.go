// FILE: internal/service/patient_service.go
package service

import (
	"context"
	"errors"
	"time"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/specification"
	"medtriage-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPatientService interface {
	CreateProfile(ctx context.Context, userId uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.PatientResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	AddMedicalEvent(ctx context.Context, userId uuid.UUID, req *dto.CreateMedicalEventRequest) (*dto.MedicalEventResponse, error)
	GetMedicalEvents(ctx context.Context, userId uuid.UUID) ([]*dto.MedicalEventResponse, error)

	// FindByUser returns the raw patient entity, used internally by the
	// triage and appointment services.
	FindByUser(ctx context.Context, userId uuid.UUID) (*entity.Patient, error)
}

type patientService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPatientService(uowFactory unitofwork.RepositoryFactory) IPatientService {
	return &patientService{uowFactory: uowFactory}
}

func (s *patientService) CreateProfile(ctx context.Context, userId uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("patient profile already exists")
	}

	patient := &entity.Patient{
		Id:             uuid.New(),
		UserId:         userId,
		FullName:       req.FullName,
		Gender:         req.Gender,
		Phone:          req.Phone,
		MedicalHistory: req.MedicalHistory,
		Allergies:      req.Allergies,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, errors.New("invalid date_of_birth")
		}
		patient.DateOfBirth = &dob
	}

	if err := uow.PatientRepository().Create(ctx, patient); err != nil {
		return nil, err
	}

	return patientToResponse(patient), nil
}

func (s *patientService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := s.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}
	return patientToResponse(patient), nil
}

func (s *patientService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}

	if req.FullName != "" {
		patient.FullName = req.FullName
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	patient.UpdatedAt = time.Now()

	if err := uow.PatientRepository().Update(ctx, patient); err != nil {
		return nil, err
	}

	return patientToResponse(patient), nil
}

func (s *patientService) AddMedicalEvent(ctx context.Context, userId uuid.UUID, req *dto.CreateMedicalEventRequest) (*dto.MedicalEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}

	occurredAt, err := time.Parse("2006-01-02", req.OccurredAt)
	if err != nil {
		return nil, errors.New("invalid occurred_at")
	}

	event := &entity.MedicalEvent{
		Id:          uuid.New(),
		PatientId:   patient.Id,
		EventType:   req.EventType,
		Description: req.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now(),
	}
	if err := uow.PatientRepository().CreateMedicalEvent(ctx, event); err != nil {
		return nil, err
	}

	return medicalEventToResponse(event), nil
}

func (s *patientService) GetMedicalEvents(ctx context.Context, userId uuid.UUID) ([]*dto.MedicalEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}

	events, err := uow.PatientRepository().FindMedicalEvents(ctx, specification.ByPatient{PatientID: patient.Id})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MedicalEventResponse, len(events))
	for i, e := range events {
		out[i] = medicalEventToResponse(e)
	}
	return out, nil
}

func (s *patientService) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.Patient, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
}

func patientToResponse(p *entity.Patient) *dto.PatientResponse {
	res := &dto.PatientResponse{
		Id:             p.Id,
		FullName:       p.FullName,
		Gender:         p.Gender,
		Phone:          p.Phone,
		MedicalHistory: p.MedicalHistory,
		Allergies:      p.Allergies,
		CreatedAt:      p.CreatedAt,
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format("2006-01-02")
		res.DateOfBirth = &dob
	}
	return res
}

func medicalEventToResponse(e *entity.MedicalEvent) *dto.MedicalEventResponse {
	return &dto.MedicalEventResponse{
		Id:          e.Id,
		EventType:   e.EventType,
		Description: e.Description,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}
