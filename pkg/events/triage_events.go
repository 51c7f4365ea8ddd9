package events

import "time"

const (
	TypeCaseEscalated        = "CASE_ESCALATED"
	TypeAppointmentBooked    = "APPOINTMENT_BOOKED"
	TypeAppointmentCancelled = "APPOINTMENT_CANCELLED"
)

// NewCaseEscalatedEvent is published whenever the triage pipeline hands a
// case to a clinician, either on an emergency or a low-confidence reading.
func NewCaseEscalatedEvent(patientID, interactionID, severity, reason string, isEmergency bool) Event {
	return BaseEvent{
		Type: TypeCaseEscalated,
		Data: map[string]interface{}{
			"patient_id":     patientID,
			"interaction_id": interactionID,
			"severity":       severity,
			"reason":         reason,
			"is_emergency":   isEmergency,
		},
		OccurredAt: time.Now(),
	}
}

func NewAppointmentBookedEvent(appointmentID, patientID, doctorID string, scheduledAt time.Time) Event {
	return BaseEvent{
		Type: TypeAppointmentBooked,
		Data: map[string]interface{}{
			"appointment_id": appointmentID,
			"patient_id":     patientID,
			"doctor_id":      doctorID,
			"scheduled_at":   scheduledAt.Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

func NewAppointmentCancelledEvent(appointmentID, patientID string) Event {
	return BaseEvent{
		Type: TypeAppointmentCancelled,
		Data: map[string]interface{}{
			"appointment_id": appointmentID,
			"patient_id":     patientID,
		},
		OccurredAt: time.Now(),
	}
}
