package validator_test

import (
	"innkeep/shared/validator"
	"strings"
	"testing"
)

type RoomTestStruct struct {
	Number   string  `validate:"required,roomnumber" json:"number"`
	Type     string  `validate:"required,oneof=standard comfort lux family presidential" json:"type"`
	Price    float64 `validate:"required,gt=0" json:"price"`
	Capacity int     `validate:"required,gte=1,lte=5" json:"capacity"`
}

type StayTestStruct struct {
	CheckIn  string `validate:"required,calendardate" json:"checkIn"`
	CheckOut string `validate:"required,calendardate" json:"checkOut"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *RoomTestStruct
		expectError bool
	}{
		{
			name: "valid room",
			data: &RoomTestStruct{
				Number:   "101",
				Type:     "standard",
				Price:    250,
				Capacity: 2,
			},
			expectError: false,
		},
		{
			name: "missing number",
			data: &RoomTestStruct{
				Type:     "standard",
				Price:    250,
				Capacity: 2,
			},
			expectError: true,
		},
		{
			name: "invalid room type",
			data: &RoomTestStruct{
				Number:   "101",
				Type:     "penthouse",
				Price:    250,
				Capacity: 2,
			},
			expectError: true,
		},
		{
			name: "zero price",
			data: &RoomTestStruct{
				Number:   "101",
				Type:     "lux",
				Price:    0,
				Capacity: 2,
			},
			expectError: true,
		},
		{
			name: "capacity above limit",
			data: &RoomTestStruct{
				Number:   "101",
				Type:     "family",
				Price:    250,
				Capacity: 6,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestRoomNumberValidation(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		expectError bool
	}{
		{
			name:        "first floor first door",
			number:      "101",
			expectError: false,
		},
		{
			name:        "top floor last door",
			number:      "550",
			expectError: false,
		},
		{
			name:        "floor zero",
			number:      "001",
			expectError: true,
		},
		{
			name:        "floor above five",
			number:      "601",
			expectError: true,
		},
		{
			name:        "door zero",
			number:      "100",
			expectError: true,
		},
		{
			name:        "door above fifty",
			number:      "151",
			expectError: true,
		},
		{
			name:        "too short",
			number:      "11",
			expectError: true,
		},
		{
			name:        "too long",
			number:      "1011",
			expectError: true,
		},
		{
			name:        "non-numeric",
			number:      "1A1",
			expectError: true,
		},
		{
			name:        "signed door segment",
			number:      "1+5",
			expectError: true,
		},
		{
			name:        "negative door segment",
			number:      "1-5",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.number, "roomnumber")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestCalendarDateValidation(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{
			name:        "valid date",
			value:       "2024-01-15",
			expectError: false,
		},
		{
			name:        "wrong format",
			value:       "15-01-2024",
			expectError: true,
		},
		{
			name:        "not a date",
			value:       "someday",
			expectError: true,
		},
		{
			name:        "impossible day",
			value:       "2024-02-31",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "calendardate")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"checkIn":"2024-01-10","checkOut":"2024-01-15"}`,
			expectError: false,
		},
		{
			name:        "invalid date value",
			jsonBody:    `{"checkIn":"January 10","checkOut":"2024-01-15"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"checkIn":"2024-01-10","checkOut":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data StayTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	data := &RoomTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

func TestRoomNumberMessage(t *testing.T) {
	err := validator.ValidateVar("999", "roomnumber")
	if err == nil {
		t.Fatal("expected validation error")
	}

	if !strings.Contains(err.Error(), "floor 1-5") {
		t.Errorf("expected room number message, got: %s", err.Error())
	}
}
