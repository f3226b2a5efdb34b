package dto

import (
	"time"

	"lodge/internal/domains/expense/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateExpenseRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Amount      int64  `json:"amount"      validate:"required,min=1"`
	IncurredAt  string `json:"incurred_at" validate:"omitempty"`
}

func (c *CreateExpenseRequest) ToModel(user string) (model.Expense, error) {
	incurredAt := timezone.Now()

	if c.IncurredAt != "" {
		parsed, err := time.Parse(constant.DateTimeFormat, c.IncurredAt)
		if err != nil {
			return model.Expense{}, err
		}

		incurredAt = parsed
	}

	return model.Expense{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Amount:      c.Amount,
		IncurredAt:  incurredAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateExpenseRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Amount      *int64 `db:"amount"      json:"amount"      validate:"omitempty,min=1"`
}

type ExpenseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	IncurredAt  string `json:"incurred_at"`
	gDto.Metadata
}

func (r *ExpenseResponse) FromModel(model model.Expense) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Amount = model.Amount
	r.IncurredAt = model.IncurredAt.Format(constant.DateTimeFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetExpensesResponse) FromModels(models []model.Expense, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Expenses = make([]ExpenseResponse, len(models))
	for i, mod := range models {
		r.Expenses[i].FromModel(mod)
	}
}
