package implementation

import (
	"context"
	"errors"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/mapper"
	"medtriage-be/internal/model"
	"medtriage-be/internal/repository/contract"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HospitalMapper
}

func NewHospitalRepository(db *gorm.DB) contract.HospitalRepository {
	return &HospitalRepositoryImpl{
		db:     db,
		mapper: mapper.NewHospitalMapper(),
	}
}

func (r *HospitalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HospitalRepositoryImpl) Create(ctx context.Context, hospital *entity.Hospital) error {
	m := r.mapper.ToModel(hospital)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*hospital = *r.mapper.ToEntity(m)
	return nil
}

func (r *HospitalRepositoryImpl) Update(ctx context.Context, hospital *entity.Hospital) error {
	m := r.mapper.ToModel(hospital)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*hospital = *r.mapper.ToEntity(m)
	return nil
}

func (r *HospitalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hospital, error) {
	var m model.Hospital
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *HospitalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hospital, error) {
	var models []*model.Hospital
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *HospitalRepositoryImpl) CreateDoctor(ctx context.Context, doctor *entity.Doctor) error {
	m := r.mapper.DoctorToModel(doctor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doctor = *r.mapper.DoctorToEntity(m)
	return nil
}

func (r *HospitalRepositoryImpl) FindDoctor(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var m model.Doctor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DoctorToEntity(&m), nil
}

func (r *HospitalRepositoryImpl) FindDoctors(ctx context.Context, specs ...specification.Specification) ([]*entity.Doctor, error) {
	var models []*model.Doctor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Order("full_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.DoctorsToEntities(models), nil
}
