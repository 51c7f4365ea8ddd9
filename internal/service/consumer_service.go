// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the interaction persistence topic so the triage
// endpoint can return without waiting on the database write.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PersistInteractionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction message: %v", err)
		msg.Ack() // invalid payloads never become valid, drop them
		return
	}

	interaction := &entity.Interaction{
		Id:                 payload.InteractionId,
		PatientId:          payload.PatientId,
		UserInput:          payload.UserInput,
		Response:           payload.Response,
		Severity:           payload.Severity,
		Confidence:         payload.Confidence,
		RecommendedPathway: payload.RecommendedPathway,
		IsEmergency:        payload.IsEmergency,
		NeedsEscalation:    payload.NeedsEscalation,
		Status:             entity.InteractionStatus(payload.Status),
		ActionPlan:         payload.ActionPlan,
		ErrorDetail:        payload.ErrorDetail,
		CreatedAt:          payload.CreatedAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InteractionRepository().Create(ctx, interaction); err != nil {
		log.Printf("[ERROR] Failed to persist interaction %s: %v", payload.InteractionId, err)
		msg.Nack()
		return
	}

	// Escalations also land in the patient's longitudinal record.
	if payload.NeedsEscalation {
		eventType := "escalation"
		if payload.IsEmergency {
			eventType = "emergency"
		}
		event := &entity.MedicalEvent{
			Id:          uuid.New(),
			PatientId:   payload.PatientId,
			EventType:   eventType,
			Description: payload.UserInput,
			OccurredAt:  payload.CreatedAt,
			CreatedAt:   payload.CreatedAt,
		}
		if err := uow.PatientRepository().CreateMedicalEvent(ctx, event); err != nil {
			// The interaction row is already committed; log and move on.
			log.Printf("[ERROR] Failed to record medical event for %s: %v", payload.InteractionId, err)
		}
	}

	msg.Ack()
}
