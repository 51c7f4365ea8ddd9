// FILE: internal/service/appointment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/entity"
	"medtriage-be/internal/pkg/logger"
	"medtriage-be/internal/pkg/mailer"
	"medtriage-be/internal/repository/specification"
	"medtriage-be/internal/repository/unitofwork"
	"medtriage-be/pkg/events"
	pktNats "medtriage-be/pkg/nats"

	"github.com/google/uuid"
)

type IAppointmentService interface {
	Book(ctx context.Context, userId uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID, appointmentId uuid.UUID) error
	ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.AppointmentResponse, error)
}

type appointmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAppointmentService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAppointmentService {
	return &appointmentService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *appointmentService) Book(ctx context.Context, userId uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}

	doctor, err := uow.HospitalRepository().FindDoctor(ctx, req.DoctorId)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, errors.New("doctor not found")
	}

	if req.ScheduledAt.Before(time.Now()) {
		return nil, errors.New("cannot book an appointment in the past")
	}
	if !slotAvailable(doctor, req.ScheduledAt) {
		return nil, errors.New("doctor is not available at the requested time")
	}

	conflict, err := uow.AppointmentRepository().ExistsConflict(ctx, doctor.Id, req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errors.New("the requested slot is already booked")
	}

	hospital, err := uow.HospitalRepository().FindOne(ctx, specification.ByID{ID: doctor.HospitalId})
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, errors.New("hospital not found")
	}

	appointment := &entity.Appointment{
		Id:          uuid.New(),
		PatientId:   patient.Id,
		DoctorId:    doctor.Id,
		HospitalId:  hospital.Id,
		ScheduledAt: req.ScheduledAt,
		Status:      entity.AppointmentStatusBooked,
		Reason:      req.Reason,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.AppointmentRepository().Create(ctx, appointment); err != nil {
		return nil, err
	}

	event := events.NewAppointmentBookedEvent(appointment.Id.String(), patient.Id.String(), doctor.Id.String(), appointment.ScheduledAt)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Error("APPOINTMENT", "Failed to publish booked event", map[string]interface{}{
			"appointment_id": appointment.Id.String(),
			"error":          err.Error(),
		})
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err == nil && user != nil {
		go func(email, name string) {
			sendErr := s.emailService.SendAppointmentConfirmation(
				email, name, doctor.FullName, hospital.Name,
				appointment.ScheduledAt.Format("Mon, 02 Jan 2006 15:04"),
			)
			if sendErr != nil {
				fmt.Printf("Error sending confirmation email: %v\n", sendErr)
			}
		}(user.Email, patient.FullName)
	}

	res := appointmentToResponse(appointment)
	res.DoctorName = doctor.FullName
	res.HospitalName = hospital.Name
	return res, nil
}

func (s *appointmentService) Cancel(ctx context.Context, userId uuid.UUID, appointmentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return err
	}
	if patient == nil {
		return errors.New("patient profile not found")
	}

	appointment, err := uow.AppointmentRepository().FindOne(ctx,
		specification.ByID{ID: appointmentId},
		specification.ByPatient{PatientID: patient.Id},
	)
	if err != nil {
		return err
	}
	if appointment == nil {
		return errors.New("appointment not found")
	}
	if appointment.Status != entity.AppointmentStatusBooked {
		return errors.New("only booked appointments can be cancelled")
	}

	if err := uow.AppointmentRepository().UpdateStatus(ctx, appointment.Id, string(entity.AppointmentStatusCancelled)); err != nil {
		return err
	}

	event := events.NewAppointmentCancelledEvent(appointment.Id.String(), patient.Id.String())
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Error("APPOINTMENT", "Failed to publish cancelled event", map[string]interface{}{
			"appointment_id": appointment.Id.String(),
			"error":          err.Error(),
		})
	}

	return nil
}

func (s *appointmentService) ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}

	appointments, err := uow.AppointmentRepository().FindAll(ctx, specification.ByPatient{PatientID: patient.Id})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = appointmentToResponse(a)
	}
	return out, nil
}

// slotAvailable checks the doctor's weekly availability map for the
// requested weekday and hour.
func slotAvailable(doctor *entity.Doctor, at time.Time) bool {
	if len(doctor.Availability) == 0 {
		// No published schedule means any working-hours slot is bookable.
		return true
	}
	day := strings.ToLower(at.Weekday().String())
	slots, ok := doctor.Availability[day]
	if !ok {
		return false
	}
	want := at.Format("15:04")
	for _, slot := range slots {
		if slot == want {
			return true
		}
	}
	return false
}

func appointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		Id:          a.Id,
		DoctorId:    a.DoctorId,
		HospitalId:  a.HospitalId,
		ScheduledAt: a.ScheduledAt,
		Status:      string(a.Status),
		Reason:      a.Reason,
		CreatedAt:   a.CreatedAt,
	}
}
