package mapper

import (
	"medtriage-be/internal/entity"
	"medtriage-be/internal/model"
)

type InteractionMapper struct{}

func NewInteractionMapper() *InteractionMapper {
	return &InteractionMapper{}
}

func (m *InteractionMapper) ToEntity(i *model.Interaction) *entity.Interaction {
	if i == nil {
		return nil
	}
	return &entity.Interaction{
		Id:                 i.Id,
		PatientId:          i.PatientId,
		UserInput:          i.UserInput,
		Response:           i.Response,
		Severity:           i.Severity,
		Confidence:         i.Confidence,
		RecommendedPathway: i.RecommendedPathway,
		IsEmergency:        i.IsEmergency,
		NeedsEscalation:    i.NeedsEscalation,
		Status:             entity.InteractionStatus(i.Status),
		ActionPlan:         mapFromJSON(i.ActionPlan),
		ErrorDetail:        i.ErrorDetail,
		CreatedAt:          i.CreatedAt,
	}
}

func (m *InteractionMapper) ToModel(i *entity.Interaction) *model.Interaction {
	if i == nil {
		return nil
	}
	return &model.Interaction{
		Id:                 i.Id,
		PatientId:          i.PatientId,
		UserInput:          i.UserInput,
		Response:           i.Response,
		Severity:           i.Severity,
		Confidence:         i.Confidence,
		RecommendedPathway: i.RecommendedPathway,
		IsEmergency:        i.IsEmergency,
		NeedsEscalation:    i.NeedsEscalation,
		Status:             string(i.Status),
		ActionPlan:         toJSON(i.ActionPlan),
		ErrorDetail:        i.ErrorDetail,
		CreatedAt:          i.CreatedAt,
	}
}

func (m *InteractionMapper) ToEntities(interactions []*model.Interaction) []*entity.Interaction {
	entities := make([]*entity.Interaction, len(interactions))
	for i, it := range interactions {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
