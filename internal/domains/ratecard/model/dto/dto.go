package dto

import (
	"lodge/internal/domains/ratecard/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRateCardRequest struct {
	RoomType     string `json:"room_type"     validate:"required,oneof=standard deluxe"`
	BathroomType string `json:"bathroom_type" validate:"required,oneof=attached shared"`
	DurationType string `json:"duration_type" validate:"required,oneof=daily monthly"`
	Cost         int64  `json:"cost"          validate:"required,min=0"`
}

func (c *CreateRateCardRequest) ToModel(user string) model.RateCard {
	return model.RateCard{
		ID:           uuid.NewString(),
		RoomType:     roomModel.RoomType(c.RoomType),
		BathroomType: roomModel.BathroomType(c.BathroomType),
		DurationType: model.DurationType(c.DurationType),
		Cost:         c.Cost,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRateCardRequest struct {
	RoomType     string `db:"room_type"     json:"room_type"     validate:"omitempty,oneof=standard deluxe"`
	BathroomType string `db:"bathroom_type" json:"bathroom_type" validate:"omitempty,oneof=attached shared"`
	DurationType string `db:"duration_type" json:"duration_type" validate:"omitempty,oneof=daily monthly"`
	Cost         *int64 `db:"cost"          json:"cost"          validate:"omitempty,min=0"`
}

type RateCardResponse struct {
	ID           string `json:"id"`
	RoomType     string `json:"room_type"`
	BathroomType string `json:"bathroom_type"`
	DurationType string `json:"duration_type"`
	Cost         int64  `json:"cost"`
	gDto.Metadata
}

func (r *RateCardResponse) FromModel(model model.RateCard) {
	r.ID = model.ID
	r.RoomType = string(model.RoomType)
	r.BathroomType = string(model.BathroomType)
	r.DurationType = string(model.DurationType)
	r.Cost = model.Cost
	r.Metadata.FromModel(model.Metadata)
}

type GetRateCardsResponse struct {
	RateCards []RateCardResponse `json:"rate_cards"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRateCardsResponse) FromModels(models []model.RateCard, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RateCards = make([]RateCardResponse, len(models))
	for i, mod := range models {
		r.RateCards[i].FromModel(mod)
	}
}
