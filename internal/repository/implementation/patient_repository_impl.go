package implementation

import (
	"context"
	"errors"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/mapper"
	"medtriage-be/internal/model"
	"medtriage-be/internal/repository/contract"
	"medtriage-be/internal/repository/scope"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PatientMapper
}

func NewPatientRepository(db *gorm.DB) contract.PatientRepository {
	return &PatientRepositoryImpl{
		db:     db,
		mapper: mapper.NewPatientMapper(),
	}
}

func (r *PatientRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PatientRepositoryImpl) Create(ctx context.Context, patient *entity.Patient) error {
	m := r.mapper.ToModel(patient)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*patient = *r.mapper.ToEntity(m)
	return nil
}

func (r *PatientRepositoryImpl) Update(ctx context.Context, patient *entity.Patient) error {
	m := r.mapper.ToModel(patient)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*patient = *r.mapper.ToEntity(m)
	return nil
}

func (r *PatientRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Patient{}).Error
}

func (r *PatientRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Patient, error) {
	var m model.Patient
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *PatientRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Patient, error) {
	var models []*model.Patient
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *PatientRepositoryImpl) CreateMedicalEvent(ctx context.Context, event *entity.MedicalEvent) error {
	m := r.mapper.MedicalEventToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.MedicalEventToEntity(m)
	return nil
}

func (r *PatientRepositoryImpl) FindMedicalEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.MedicalEvent, error) {
	var models []*model.MedicalEvent
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.MedicalEventsToEntities(models), nil
}
