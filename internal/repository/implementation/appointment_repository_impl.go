package implementation

import (
	"context"
	"errors"
	"time"

	"medtriage-be/internal/entity"
	"medtriage-be/internal/mapper"
	"medtriage-be/internal/model"
	"medtriage-be/internal/repository/contract"
	"medtriage-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AppointmentMapper
}

func NewAppointmentRepository(db *gorm.DB) contract.AppointmentRepository {
	return &AppointmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAppointmentMapper(),
	}
}

func (r *AppointmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, appointment *entity.Appointment) error {
	m := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*appointment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AppointmentRepositoryImpl) Update(ctx context.Context, appointment *entity.Appointment) error {
	m := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*appointment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AppointmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error) {
	var m model.Appointment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *AppointmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	var models []*model.Appointment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Order("scheduled_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *AppointmentRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Appointment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *AppointmentRepositoryImpl) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Appointment{}).Where("id = ?", id).Update("reminder_sent_at", at).Error
}

func (r *AppointmentRepositoryImpl) ExistsConflict(ctx context.Context, doctorId uuid.UUID, scheduledAt time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ? AND status = ?", doctorId, scheduledAt, "booked").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
