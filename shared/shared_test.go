package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

type bookingPatch struct {
	Status    string `db:"status"`
	DueAmount int64  `db:"due_amount"`
	Note      string
}

func TestTransformFields(t *testing.T) {
	patch := bookingPatch{
		Status:    "checked_in",
		DueAmount: 1500,
		Note:      "no db tag, must be skipped",
	}

	fields := shared.TransformFields(patch, "reception")

	assert.Equal(t, "checked_in", fields["status"])
	assert.Equal(t, int64(1500), fields["due_amount"])
	assert.Equal(t, "reception", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "Note")
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	fields := shared.TransformFields(bookingPatch{Status: "cancelled"}, "reception")

	assert.Equal(t, "cancelled", fields["status"])
	assert.NotContains(t, fields, "due_amount")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:b-1", shared.BuildCacheKey("booking:get", "b-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter))
}
