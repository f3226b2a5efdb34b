package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "confirmed",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "confirmed"},
		},
		{
			name: "in with slice value",
			filter: dto.Filter{
				Field:    "booking_id",
				Value:    []string{"a", "b"},
				Operator: dto.FilterOperatorIn,
				Table:    "payments",
			},
			wantWhere: "payments.booking_id IN (:booking_id_0, :booking_id_1) ",
			wantArgs:  map[string]any{"booking_id_0": "a", "booking_id_1": "b"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "confirmed",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND status = :status)", where)
	assert.Equal(t, map[string]any{"room_id": "r1", "status": "confirmed"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		defaultRequest bool
		want           dto.QueryParams
	}{
		{
			name:           "explicit values",
			target:         "/v1/bookings?page=2&limit=25&sort_by=check_in_date&sort_dir=asc",
			defaultRequest: false,
			want:           dto.QueryParams{Page: 2, Limit: 25, SortBy: "check_in_date", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			target:         "/v1/bookings",
			defaultRequest: true,
			want:           dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:           "invalid values ignored",
			target:         "/v1/bookings?page=zero&limit=-3&sort_dir=sideways",
			defaultRequest: false,
			want:           dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			q := dto.QueryParams{}
			q.FromRequest(r, tt.defaultRequest)

			assert.Equal(t, tt.want, q)
		})
	}
}
