package validator_test

import (
	"strings"
	"testing"

	"lodge/shared/validator"
)

type createPaymentPayload struct {
	BookingID string `validate:"required"                                  json:"booking_id"`
	Amount    int    `validate:"required,gte=1"                            json:"amount"`
	Mode      string `validate:"required,oneof=cash card upi bank_transfer" json:"mode"`
	PaidAt    string `validate:"required"                                  json:"paid_at"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        createPaymentPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: createPaymentPayload{
				BookingID: "b-1",
				Amount:    500,
				Mode:      "cash",
				PaidAt:    "2025-03-10T14:00:00",
			},
			expectError: false,
		},
		{
			name: "missing booking id",
			data: createPaymentPayload{
				Amount: 500,
				Mode:   "cash",
				PaidAt: "2025-03-10T14:00:00",
			},
			expectError: true,
		},
		{
			name: "zero amount",
			data: createPaymentPayload{
				BookingID: "b-1",
				Mode:      "cash",
				PaidAt:    "2025-03-10T14:00:00",
			},
			expectError: true,
		},
		{
			name: "unknown payment mode",
			data: createPaymentPayload{
				BookingID: "b-1",
				Amount:    500,
				Mode:      "barter",
				PaidAt:    "2025-03-10T14:00:00",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_FromReader(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid json body",
			body:        `{"booking_id":"b-1","amount":500,"mode":"upi","paid_at":"2025-03-10T14:00:00"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"booking_id":`,
			expectError: true,
		},
		{
			name:        "wrongly typed amount",
			body:        `{"booking_id":"b-1","amount":"five hundred","mode":"upi","paid_at":"2025-03-10T14:00:00"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createPaymentPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("confirmed", "oneof=confirmed checked_in checked_out cancelled"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("pending", "oneof=confirmed checked_in checked_out cancelled"); err == nil {
		t.Error("expected validation error, got nil")
	}
}
