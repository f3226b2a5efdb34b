package model

import (
	"time"

	customerModel "lodge/internal/domains/customer/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldCustomerID   = "customer_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldDueAmount    = "due_amount"
	FieldStatus       = "status"
)

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID           string        `db:"id"`
	RoomID       string        `db:"room_id"`
	CustomerID   string        `db:"customer_id"`
	CheckInDate  time.Time     `db:"check_in_date"`
	CheckOutDate time.Time     `db:"check_out_date"`
	DueAmount    int64         `db:"due_amount"`
	Status       BookingStatus `db:"status"`

	RoomNumber   string                 `db:"room_number"   table:"rooms"     column:"room_number"`
	RoomType     roomModel.RoomType     `db:"room_type"     table:"rooms"     column:"room_type"`
	BathroomType roomModel.BathroomType `db:"bathroom_type" table:"rooms"     column:"bathroom_type"`
	CustomerName string                 `db:"customer_name" table:"customers" column:"name"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN " + roomModel.TableName + " ON " + TableName + "." + FieldRoomID + " = " + roomModel.TableName + "." + roomModel.FieldID +
		" LEFT JOIN " + customerModel.TableName + " ON " + TableName + "." + FieldCustomerID + " = " + customerModel.TableName + "." + customerModel.FieldID
}
