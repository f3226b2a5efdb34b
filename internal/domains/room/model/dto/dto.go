package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber   string `json:"room_number"   validate:"required,max=20"`
	RoomType     string `json:"room_type"     validate:"required,oneof=standard deluxe"`
	BathroomType string `json:"bathroom_type" validate:"required,oneof=attached shared"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:           uuid.NewString(),
		RoomNumber:   c.RoomNumber,
		RoomType:     model.RoomType(c.RoomType),
		BathroomType: model.BathroomType(c.BathroomType),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber   string `db:"room_number"   json:"room_number"   validate:"omitempty,max=20"`
	RoomType     string `db:"room_type"     json:"room_type"     validate:"omitempty,oneof=standard deluxe"`
	BathroomType string `db:"bathroom_type" json:"bathroom_type" validate:"omitempty,oneof=attached shared"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"room_number"`
	RoomType     string `json:"room_type"`
	BathroomType string `json:"bathroom_type"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = string(model.RoomType)
	r.BathroomType = string(model.BathroomType)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
