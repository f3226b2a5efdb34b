package model

import (
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/model"
)

const (
	TableName  = "rate_cards"
	EntityName = "rate_card"

	FieldID           = "id"
	FieldRoomType     = "room_type"
	FieldBathroomType = "bathroom_type"
	FieldDurationType = "duration_type"
	FieldCost         = "cost"
	FieldCreatedAt    = "created_at"
)

type DurationType string

const (
	DurationTypeDaily   DurationType = "daily"
	DurationTypeMonthly DurationType = "monthly"
)

type RateCard struct {
	ID           string                 `db:"id"`
	RoomType     roomModel.RoomType     `db:"room_type"`
	BathroomType roomModel.BathroomType `db:"bathroom_type"`
	DurationType DurationType           `db:"duration_type"`
	Cost         int64                  `db:"cost"`
	model.Metadata
}
