package dto

import (
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

const dateFormat = "2006-01-02"

type CreateBookingRequest struct {
	RoomID       string `json:"room_id"        validate:"required,uuid4"`
	CustomerID   string `json:"customer_id"    validate:"required,uuid4"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
	Status       string `json:"status"         validate:"omitempty,oneof=confirmed checked_in checked_out cancelled"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(dateFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(dateFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.BookingStatusConfirmed
	if c.Status != "" {
		status = model.BookingStatus(c.Status)
	}

	return model.Booking{
		ID:           uuid.NewString(),
		RoomID:       c.RoomID,
		CustomerID:   c.CustomerID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	RoomID       string `json:"room_id"        validate:"omitempty,uuid4"`
	CustomerID   string `json:"customer_id"    validate:"omitempty,uuid4"`
	CheckInDate  string `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty"`
	DueAmount    *int64 `json:"due_amount"     validate:"omitempty,min=0"`
	Status       string `json:"status"         validate:"omitempty,oneof=confirmed checked_in checked_out cancelled"`
}

// ToFields maps the patch onto column updates. Values are taken as given,
// the due amount included; nothing is recalculated here.
func (u *UpdateBookingRequest) ToFields(user string) (map[string]any, error) {
	fields := make(map[string]any)

	if u.RoomID != "" {
		fields[model.FieldRoomID] = u.RoomID
	}

	if u.CustomerID != "" {
		fields[model.FieldCustomerID] = u.CustomerID
	}

	if u.CheckInDate != "" {
		checkIn, err := time.Parse(dateFormat, u.CheckInDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldCheckInDate] = checkIn
	}

	if u.CheckOutDate != "" {
		checkOut, err := time.Parse(dateFormat, u.CheckOutDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldCheckOutDate] = checkOut
	}

	if u.DueAmount != nil {
		fields[model.FieldDueAmount] = *u.DueAmount
	}

	if u.Status != "" {
		fields[model.FieldStatus] = u.Status
	}

	if len(fields) == 0 {
		return fields, nil
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	return fields, nil
}

type BookingResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	CustomerID   string `json:"customer_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	DueAmount    int64  `json:"due_amount"`
	Status       string `json:"status"`
	RoomNumber   string `json:"room_number"`
	RoomType     string `json:"room_type"`
	BathroomType string `json:"bathroom_type"`
	CustomerName string `json:"customer_name"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.CustomerID = model.CustomerID
	r.CheckInDate = model.CheckInDate.Format(dateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(dateFormat)
	r.DueAmount = model.DueAmount
	r.Status = string(model.Status)
	r.RoomNumber = model.RoomNumber
	r.RoomType = string(model.RoomType)
	r.BathroomType = string(model.BathroomType)
	r.CustomerName = model.CustomerName
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
