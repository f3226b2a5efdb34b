package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMode      = "mode"
	FieldPaidAt    = "paid_at"
)

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeUPI          PaymentMode = "upi"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
)

type Payment struct {
	ID        string      `db:"id"`
	BookingID string      `db:"booking_id"`
	Amount    int64       `db:"amount"`
	Mode      PaymentMode `db:"mode"`
	PaidAt    time.Time   `db:"paid_at"`
	model.Metadata
}
