package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/entity"
	"medtriage-be/internal/repository/memory"
	"medtriage-be/internal/repository/quota"
	"medtriage-be/pkg/triage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(q quota.Limiter, model *scriptedModel) ITriageService {
	discard := log.New(io.Discard, "", 0)
	gateway := triage.NewGateway(model, triage.NewEmergencyDetector(nil), triage.DefaultPrompts(), triage.GatewayConfig{
		ConfidenceThreshold: 0.6,
		Temperature:         0.3,
		MaxTokens:           1024,
	}, discard)
	workflow := triage.NewWorkflow(gateway, discard)

	uow := &stubUow{
		patients:     &stubPatientRepo{patient: &entity.Patient{Id: uuid.New(), UserId: uuid.New()}},
		interactions: &stubInteractionRepo{},
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	return NewTriageService(
		&stubUowFactory{uow: uow},
		workflow,
		memory.NewHistoryCache(10),
		q,
		pubSub,
		"triage.interaction.persist.test",
		nil,
		nopLogger{},
	)
}

func TestChatQuota(t *testing.T) {
	followUp := `{"needs_more_info": true, "recommendation": "How long have you had the headache?"}`

	t.Run("limit reached rejects before the model runs", func(t *testing.T) {
		model := &scriptedModel{replies: []string{followUp}}
		svc := newChatService(&stubQuota{allowed: false}, model)

		_, err := svc.Chat(context.Background(), uuid.New(), &dto.TriageChatRequest{Message: "I have a headache"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrQuotaExceeded))
		assert.Equal(t, 0, model.calls)
	})

	t.Run("backend failure fails open", func(t *testing.T) {
		model := &scriptedModel{replies: []string{followUp}}
		svc := newChatService(&stubQuota{allowed: false, err: errors.New("redis: connection refused")}, model)

		res, err := svc.Chat(context.Background(), uuid.New(), &dto.TriageChatRequest{Message: "I have a headache"})

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 1, model.calls)
		assert.Equal(t, string(entity.InteractionStatusGathering), res.Status)
		assert.Equal(t, "How long have you had the headache?", res.Response)
		assert.Equal(t, 0, res.QuotaRemaining)
	})

	t.Run("within limit proceeds", func(t *testing.T) {
		model := &scriptedModel{replies: []string{followUp}}
		svc := newChatService(&stubQuota{allowed: true, remaining: 49}, model)

		res, err := svc.Chat(context.Background(), uuid.New(), &dto.TriageChatRequest{Message: "I have a headache"})

		require.NoError(t, err)
		assert.Equal(t, 49, res.QuotaRemaining)
	})
}

func TestStatusFor(t *testing.T) {
	t.Run("escalated wins", func(t *testing.T) {
		c := &triage.Case{NeedsEscalation: true, SkipToFinalize: true}
		assert.Equal(t, entity.InteractionStatusEscalated, statusFor(c))
	})

	t.Run("gathering info", func(t *testing.T) {
		c := &triage.Case{SkipToFinalize: true}
		assert.Equal(t, entity.InteractionStatusGathering, statusFor(c))
	})

	t.Run("completed", func(t *testing.T) {
		assert.Equal(t, entity.InteractionStatusCompleted, statusFor(&triage.Case{}))
	})
}

func TestResponseTextFor(t *testing.T) {
	t.Run("follow-up question while gathering info", func(t *testing.T) {
		c := &triage.Case{
			SkipToFinalize: true,
			TriageResult:   &triage.TriageResult{Recommendation: "How long have you had the pain?"},
		}
		assert.Equal(t, "How long have you had the pain?", responseTextFor(c))
	})

	t.Run("escalation reason", func(t *testing.T) {
		c := &triage.Case{
			NeedsEscalation: true,
			ActionPlan:      &triage.ActionPlan{Reason: "Emergency detected, case requires immediate clinician review"},
		}
		assert.Equal(t, "Emergency detected, case requires immediate clinician review", responseTextFor(c))
	})

	t.Run("normal recommendation", func(t *testing.T) {
		c := &triage.Case{
			TriageResult: &triage.TriageResult{Recommendation: "Rest and fluids should resolve this."},
		}
		assert.Equal(t, "Rest and fluids should resolve this.", responseTextFor(c))
	})

	t.Run("fallback when nothing usable", func(t *testing.T) {
		assert.Contains(t, responseTextFor(&triage.Case{}), "consult a healthcare provider")
	})
}

func TestActionPlanToMap(t *testing.T) {
	t.Run("nil plan", func(t *testing.T) {
		assert.Nil(t, actionPlanToMap(nil))
	})

	t.Run("round trips fields", func(t *testing.T) {
		m := actionPlanToMap(&triage.ActionPlan{
			Action: "schedule_appointment",
			Steps:  []string{"Pick a doctor", "Choose a slot"},
			Reason: "Symptoms warrant a GP visit",
		})
		assert.Equal(t, "schedule_appointment", m["action"])
		assert.Equal(t, "Symptoms warrant a GP visit", m["reason"])
		assert.Len(t, m["steps"], 2)
	})
}
