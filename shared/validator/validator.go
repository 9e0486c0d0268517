package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"innkeep/shared/constant"
	"innkeep/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerRoomNumberValidation enforces the hotel's room numbering scheme:
// three digits, the first being the floor (1-5) and the remaining two the
// door number on that floor (01-50).
func registerRoomNumberValidation(field val.FieldLevel) bool {
	number, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if len(number) != 3 {
		return false
	}

	// strconv.Atoi tolerates a sign, so every character is checked.
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}

	floor, err := strconv.Atoi(number[:1])
	if err != nil {
		return false
	}

	door, err := strconv.Atoi(number[1:])
	if err != nil {
		return false
	}

	if floor < constant.RoomMinFloor || floor > constant.RoomMaxFloor {
		return false
	}

	return door >= constant.RoomMinDoorNumber && door <= constant.RoomMaxDoorNumber
}

// registerCalendarDateValidation accepts YYYY-MM-DD values.
func registerCalendarDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.CalendarDateFormat, value)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("roomnumber", registerRoomNumberValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("calendardate", registerCalendarDateValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
