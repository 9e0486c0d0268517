package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	employeeMocks "innkeep/internal/domains/employee/mocks"
	"innkeep/internal/domains/employee/model"
	"innkeep/internal/domains/employee/model/dto"
	"innkeep/internal/domains/employee/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	gModel "innkeep/shared/model"
	"innkeep/shared/password"
	"innkeep/shared/timezone"
)

type employeeMockSet struct {
	repo  *employeeMocks.MockEmployee
	cache *cacheMocks.MockRedisCache
}

func newEmployeeService(t *testing.T, ctrl *gomock.Controller) (service.Employee, employeeMockSet) {
	t.Helper()

	m := employeeMockSet{
		repo:  employeeMocks.NewMockEmployee(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache invalidation and saves run on goroutines.
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func sampleEmployee(id string) model.Employee {
	return model.Employee{
		ID: id,
		Contact: gModel.Contact{
			FirstName: "Nadia",
			LastName:  "Putri",
			Email:     "nadia.putri@example.com",
		},
		Position: "Receptionist",
		Salary:   4_500_000,
		HireDate: timezone.Now().AddDate(-1, 0, 0),
		Role:     constant.RoleReception,
		Active:   true,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	validReq := dto.CreateEmployeeRequest{
		FirstName: "Nadia",
		LastName:  "Putri",
		Email:     "nadia.putri@example.com",
		Position:  "Receptionist",
		Salary:    4_500_000,
		HireDate:  "2025-08-01",
		Password:  "hunter2hunter2",
	}

	tests := []struct {
		name      string
		req       dto.CreateEmployeeRequest
		setupMock func(m employeeMockSet)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "hires an employee and hashes the password",
			req:  validReq,
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, employee model.Employee) error {
						assert.NotEqual(t, "hunter2hunter2", employee.Password)
						assert.NoError(t, password.Verify("hunter2hunter2", employee.Password))
						assert.Equal(t, constant.RoleReception, employee.Role)
						assert.True(t, employee.Active)

						return nil
					})
			},
		},
		{
			name: "rejects a registered email",
			req:  validReq,
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
			errMsg:  "email is already registered",
		},
		{
			name: "rejects a malformed hire date",
			req: dto.CreateEmployeeRequest{
				FirstName: "Nadia",
				LastName:  "Putri",
				Email:     "nadia.putri@example.com",
				Position:  "Receptionist",
				HireDate:  "01/08/2025",
				Password:  "hunter2hunter2",
			},
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
			errMsg:  "hire_date must be a date in YYYY-MM-DD format",
		},
		{
			name: "propagates repository errors",
			req:  validReq,
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newEmployeeService(t, ctrl)
			tt.setupMock(m)

			err := svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)

				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestEmployeeService_Get(t *testing.T) {
	t.Run("returns the employee on cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newEmployeeService(t, ctrl)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleEmployee("employee-1"), nil)

		res, err := svc.Get(context.Background(), "employee-1")
		require.NoError(t, err)
		assert.Equal(t, "employee-1", res.ID)
		assert.Equal(t, "Receptionist", res.Position)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newEmployeeService(t, ctrl)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Employee{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "employee not found")
	})
}

func TestEmployeeService_Update(t *testing.T) {
	salary := 5_000_000.0
	inactive := false

	tests := []struct {
		name      string
		req       dto.UpdateEmployeeRequest
		setupMock func(m employeeMockSet)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "raises the salary",
			req:  dto.UpdateEmployeeRequest{Salary: &salary},
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, &salary, fields[model.FieldSalary])

						return nil
					})
			},
		},
		{
			name: "deactivates an account",
			req:  dto.UpdateEmployeeRequest{Active: &inactive},
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "rejects an empty request",
			req:       dto.UpdateEmployeeRequest{},
			setupMock: func(m employeeMockSet) {},
			wantErr:   true,
			errMsg:    "update request cannot be empty",
		},
		{
			name: "returns not found for an unknown employee",
			req:  dto.UpdateEmployeeRequest{Salary: &salary},
			setupMock: func(m employeeMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
			errMsg:  "employee not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newEmployeeService(t, ctrl)
			tt.setupMock(m)

			err := svc.Update(context.Background(), tt.req, "employee-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("deletes the employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newEmployeeService(t, ctrl)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), "employee-1"))
	})

	t.Run("returns not found for an unknown employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newEmployeeService(t, ctrl)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "employee not found")
	})
}

func TestEmployee_TenureMonths(t *testing.T) {
	hire := func(y int, m time.Month, d int) model.Employee {
		employee := sampleEmployee("employee-1")
		employee.HireDate = time.Date(y, m, d, 0, 0, 0, 0, timezone.GetLocation())

		return employee
	}

	asOf := time.Date(2026, 8, 31, 0, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name     string
		employee model.Employee
		want     int
	}{
		{name: "anniversary counts a full month", employee: hire(2026, 7, 31), want: 1},
		{name: "under a month counts zero", employee: hire(2026, 8, 15), want: 0},
		{name: "full year", employee: hire(2025, 8, 31), want: 12},
		{name: "hired today", employee: hire(2026, 8, 31), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.employee.TenureMonths(asOf))
		})
	}
}
