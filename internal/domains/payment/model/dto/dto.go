package dto

import (
	"time"

	"lodge/internal/domains/payment/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Amount    int64  `json:"amount"     validate:"required,min=1"`
	Mode      string `json:"mode"       validate:"required,oneof=cash card upi bank_transfer"`
	PaidAt    string `json:"paid_at"    validate:"omitempty"`
}

func (c *CreatePaymentRequest) ToModel(user string) (model.Payment, error) {
	paidAt := timezone.Now()

	if c.PaidAt != "" {
		parsed, err := time.Parse(constant.DateTimeFormat, c.PaidAt)
		if err != nil {
			return model.Payment{}, err
		}

		paidAt = parsed
	}

	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Amount:    c.Amount,
		Mode:      model.PaymentMode(c.Mode),
		PaidAt:    paidAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdatePaymentRequest struct {
	Amount *int64 `db:"amount" json:"amount" validate:"omitempty,min=1"`
	Mode   string `db:"mode"   json:"mode"   validate:"omitempty,oneof=cash card upi bank_transfer"`
}

type PaymentResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Mode      string `json:"mode"`
	PaidAt    string `json:"paid_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Mode = string(model.Mode)
	r.PaidAt = model.PaidAt.Format(constant.DateTimeFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
