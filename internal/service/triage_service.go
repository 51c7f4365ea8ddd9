// FILE: internal/service/triage_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/entity"
	"medtriage-be/internal/pkg/logger"
	"medtriage-be/internal/repository/memory"
	"medtriage-be/internal/repository/quota"
	"medtriage-be/internal/repository/specification"
	"medtriage-be/internal/repository/unitofwork"
	"medtriage-be/pkg/events"
	pktNats "medtriage-be/pkg/nats"
	"medtriage-be/pkg/triage"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

var ErrQuotaExceeded = errors.New("daily triage quota exceeded")

type ITriageService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.TriageChatRequest) (*dto.TriageChatResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.InteractionResponse, error)
	GetEscalated(ctx context.Context, limit int) ([]*dto.InteractionResponse, error)
}

type triageService struct {
	uowFactory     unitofwork.RepositoryFactory
	workflow       *triage.Workflow
	historyCache   *memory.HistoryCache
	quota          quota.Limiter
	pubSub         *gochannel.GoChannel
	persistTopic   string
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewTriageService(
	uowFactory unitofwork.RepositoryFactory,
	workflow *triage.Workflow,
	historyCache *memory.HistoryCache,
	quotaRepo quota.Limiter,
	pubSub *gochannel.GoChannel,
	persistTopic string,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ITriageService {
	return &triageService{
		uowFactory:     uowFactory,
		workflow:       workflow,
		historyCache:   historyCache,
		quota:          quotaRepo,
		pubSub:         pubSub,
		persistTopic:   persistTopic,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *triageService) Chat(ctx context.Context, userId uuid.UUID, req *dto.TriageChatRequest) (*dto.TriageChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}
	patientID := patient.Id.String()

	allowed, err := s.quota.Consume(ctx, patientID)
	if err != nil {
		// Quota accounting must not take the triage endpoint down.
		s.logger.Warn("TRIAGE", "Quota check failed, allowing request", map[string]interface{}{
			"patient_id": patientID,
			"error":      err.Error(),
		})
	} else if !allowed {
		return nil, ErrQuotaExceeded
	}

	history := s.loadHistory(ctx, uow, patient.Id)

	// Attachments are never stored; only a textual summary reaches the model.
	modelInput := req.Message + mediaSummary(req.Media)

	c := s.workflow.Run(ctx, patientID, modelInput, history)

	interactionId := uuid.New()
	responseText := responseTextFor(c)
	status := statusFor(c)

	s.historyCache.Append(patientID, triage.Exchange{
		User:      req.Message,
		Assistant: responseText,
	})

	s.publishPersist(c, interactionId, patient.Id, responseText, status)

	if c.NeedsEscalation {
		reason := ""
		if c.ActionPlan != nil {
			reason = c.ActionPlan.Reason
		}
		event := events.NewCaseEscalatedEvent(patientID, interactionId.String(), string(c.Severity), reason, c.IsEmergency)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Error("TRIAGE", "Failed to publish escalation event", map[string]interface{}{
				"interaction_id": interactionId.String(),
				"error":          err.Error(),
			})
		}
	}

	remaining, err := s.quota.Remaining(ctx, patientID)
	if err != nil {
		remaining = 0
	}

	res := &dto.TriageChatResponse{
		InteractionId:      interactionId,
		Status:             string(status),
		Response:           responseText,
		Severity:           string(c.Severity),
		Confidence:         c.Confidence,
		IsEmergency:        c.IsEmergency,
		NeedsEscalation:    c.NeedsEscalation,
		RecommendedPathway: string(c.RecommendedPathway),
		ActionPlan:         actionPlanToDTO(c.ActionPlan),
		QuotaRemaining:     remaining,
	}
	return res, nil
}

func (s *triageService) GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.InteractionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByUserId{UserID: userId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient profile not found")
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	interactions, err := uow.InteractionRepository().FindRecentByPatient(ctx, patient.Id, limit)
	if err != nil {
		return nil, err
	}

	return interactionsToResponses(interactions), nil
}

func (s *triageService) GetEscalated(ctx context.Context, limit int) ([]*dto.InteractionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	interactions, err := uow.InteractionRepository().FindAll(ctx,
		specification.EscalatedOnly{},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	return interactionsToResponses(interactions), nil
}

// loadHistory prefers the in-memory window and falls back to the newest
// persisted interactions, oldest first as the prompt builder expects.
func (s *triageService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, patientId uuid.UUID) []triage.Exchange {
	if history, ok := s.historyCache.Get(patientId.String()); ok {
		return history
	}

	interactions, err := uow.InteractionRepository().FindRecentByPatient(ctx, patientId, 5)
	if err != nil {
		s.logger.Warn("TRIAGE", "Failed to rebuild history from store", map[string]interface{}{
			"patient_id": patientId.String(),
			"error":      err.Error(),
		})
		return nil
	}

	history := make([]triage.Exchange, 0, len(interactions))
	for i := len(interactions) - 1; i >= 0; i-- {
		history = append(history, triage.Exchange{
			User:      interactions[i].UserInput,
			Assistant: interactions[i].Response,
		})
	}
	if len(history) > 0 {
		s.historyCache.Set(patientId.String(), history)
	}
	return history
}

func (s *triageService) publishPersist(c *triage.Case, interactionId, patientId uuid.UUID, responseText string, status entity.InteractionStatus) {
	payload := dto.PersistInteractionMessage{
		InteractionId:      interactionId,
		PatientId:          patientId,
		UserInput:          c.UserInput,
		Response:           responseText,
		Severity:           string(c.Severity),
		Confidence:         c.Confidence,
		RecommendedPathway: string(c.RecommendedPathway),
		IsEmergency:        c.IsEmergency,
		NeedsEscalation:    c.NeedsEscalation,
		Status:             string(status),
		ActionPlan:         actionPlanToMap(c.ActionPlan),
		ErrorDetail:        c.Error,
		CreatedAt:          time.Now(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("TRIAGE", "Failed to marshal persist payload", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"error":          err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermillUUID(), data)
	if err := s.pubSub.Publish(s.persistTopic, msg); err != nil {
		s.logger.Error("TRIAGE", "Failed to publish persist message", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"error":          err.Error(),
		})
	}
}

func watermillUUID() string {
	return uuid.NewString()
}

// mediaSummary renders attachment metadata as a suffix for model context,
// e.g. "\n\n[Patient attached 2 file(s): image/jpeg, application/pdf]".
func mediaSummary(media []dto.MediaAttachmentDTO) string {
	if len(media) == 0 {
		return ""
	}
	types := make([]string, len(media))
	for i, m := range media {
		types[i] = m.Type
	}
	return fmt.Sprintf("\n\n[Patient attached %d file(s): %s]", len(media), strings.Join(types, ", "))
}

// responseTextFor picks the patient-facing text for the case outcome.
func responseTextFor(c *triage.Case) string {
	if c.SkipToFinalize && c.TriageResult != nil && c.TriageResult.Recommendation != "" {
		return c.TriageResult.Recommendation
	}
	if c.NeedsEscalation && c.ActionPlan != nil {
		return c.ActionPlan.Reason
	}
	if c.TriageResult != nil && c.TriageResult.Recommendation != "" {
		return c.TriageResult.Recommendation
	}
	return "We could not fully assess your symptoms. Please consult a healthcare provider."
}

func statusFor(c *triage.Case) entity.InteractionStatus {
	switch {
	case c.NeedsEscalation:
		return entity.InteractionStatusEscalated
	case c.SkipToFinalize:
		return entity.InteractionStatusGathering
	default:
		return entity.InteractionStatusCompleted
	}
}

func actionPlanToDTO(plan *triage.ActionPlan) *dto.ActionPlanDTO {
	if plan == nil {
		return nil
	}
	return &dto.ActionPlanDTO{
		Action:            plan.Action,
		Steps:             plan.Steps,
		Reason:            plan.Reason,
		EstimatedTime:     plan.EstimatedTime,
		FollowUpNeeded:    plan.FollowUpNeeded,
		MedicalDisclaimer: plan.MedicalDisclaimer,
	}
}

func actionPlanToMap(plan *triage.ActionPlan) map[string]interface{} {
	if plan == nil {
		return nil
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func interactionsToResponses(interactions []*entity.Interaction) []*dto.InteractionResponse {
	out := make([]*dto.InteractionResponse, len(interactions))
	for i, it := range interactions {
		out[i] = &dto.InteractionResponse{
			Id:                 it.Id,
			UserInput:          it.UserInput,
			Response:           it.Response,
			Severity:           it.Severity,
			Confidence:         it.Confidence,
			RecommendedPathway: it.RecommendedPathway,
			IsEmergency:        it.IsEmergency,
			NeedsEscalation:    it.NeedsEscalation,
			Status:             string(it.Status),
			ActionPlan:         it.ActionPlan,
			CreatedAt:          it.CreatedAt,
		}
	}
	return out
}
