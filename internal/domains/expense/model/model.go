package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "expenses"
	EntityName = "expense"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldIncurredAt  = "incurred_at"
)

type Expense struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Amount      int64     `db:"amount"`
	IncurredAt  time.Time `db:"incurred_at"`
	model.Metadata
}
