package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldRoomType     = "room_type"
	FieldBathroomType = "bathroom_type"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
)

type BathroomType string

const (
	BathroomTypeAttached BathroomType = "attached"
	BathroomTypeShared   BathroomType = "shared"
)

type Room struct {
	ID           string       `db:"id"`
	RoomNumber   string       `db:"room_number"`
	RoomType     RoomType     `db:"room_type"`
	BathroomType BathroomType `db:"bathroom_type"`
	model.Metadata
}
