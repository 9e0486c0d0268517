package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"innkeep/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{
			name: "BadRequest",
			err:  failure.BadRequest(errors.New("bad input")),
			code: http.StatusBadRequest,
			kind: failure.KindValidation,
		},
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("bad input"),
			code: http.StatusBadRequest,
			kind: failure.KindValidation,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("missing token"),
			code: http.StatusUnauthorized,
			kind: failure.KindAuth,
		},
		{
			name: "Forbidden",
			err:  failure.Forbidden("not allowed"),
			code: http.StatusForbidden,
			kind: failure.KindAuth,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("room"),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("room already booked for the requested dates"),
			code: http.StatusConflict,
			kind: failure.KindConflict,
		},
		{
			name: "InvalidState",
			err:  failure.InvalidState("booking is not active"),
			code: http.StatusConflict,
			kind: failure.KindState,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("connection refused")),
			code: http.StatusInternalServerError,
			kind: failure.KindStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
			if got := failure.GetKind(tt.err); got != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, got)
			}
		})
	}
}

func TestNilErrorsReturnNil(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode_NonFailure(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestGetKind_NonFailure(t *testing.T) {
	if got := failure.GetKind(errors.New("plain error")); got != failure.KindStorage {
		t.Errorf("expected kind to be %s, got %s", failure.KindStorage, got)
	}
}

func TestIsKind(t *testing.T) {
	err := failure.Conflict("overlap")

	if !failure.IsKind(err, failure.KindConflict) {
		t.Error("expected conflict kind to match")
	}
	if failure.IsKind(err, failure.KindNotFound) {
		t.Error("expected not_found kind to not match")
	}
	if failure.IsKind(errors.New("plain"), failure.KindConflict) {
		t.Error("expected plain error to not match any kind")
	}
}
