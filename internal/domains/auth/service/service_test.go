package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/jwt"
	jwtMocks "innkeep/infras/jwt/mocks"
	"innkeep/infras/otel/mocks"
	"innkeep/internal/domains/auth/model/dto"
	"innkeep/internal/domains/auth/service"
	employeeMocks "innkeep/internal/domains/employee/mocks"
	employeeModel "innkeep/internal/domains/employee/model"
	"innkeep/shared/constant"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

func validEmployee() employeeModel.Employee {
	return employeeModel.Employee{
		ID: "employee-id-123",
		Contact: gModel.Contact{
			FirstName: "Nadia",
			LastName:  "Putri",
			Phone:     "081234567890",
			Email:     "nadia@example.com",
		},
		Position: "Receptionist",
		Salary:   4_500_000,
		HireDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Role:     constant.RoleReception,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockEmployeeRepo, cfg, mockOtel, mockJWT)

	employee := validEmployee()

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "nadia@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					GetByEmail(gomock.Any(), "nadia@example.com").
					Return(employee, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), employee.ID, employee.Email, employee.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockEmployeeRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "employee not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					GetByEmail(gomock.Any(), "nonexistent@example.com").
					Return(employeeModel.Employee{}, errors.New("employee not found"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "nadia@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					GetByEmail(gomock.Any(), "nadia@example.com").
					Return(employee, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated employee",
			req: dto.LoginRequest{
				Email:    "nadia@example.com",
				Password: "password",
			},
			setupMock: func() {
				inactive := validEmployee()
				inactive.Active = false

				mockEmployeeRepo.EXPECT().
					GetByEmail(gomock.Any(), "nadia@example.com").
					Return(inactive, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "nadia@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					GetByEmail(gomock.Any(), "nadia@example.com").
					Return(employee, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), employee.ID, employee.Email, employee.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
		{
			name: "update last login error",
			req: dto.LoginRequest{
				Email:    "nadia@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					GetByEmail(gomock.Any(), "nadia@example.com").
					Return(employee, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), employee.ID, employee.Email, employee.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockEmployeeRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockEmployeeRepo, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req: dto.RefreshTokenRequest{
				RefreshToken: "valid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), "valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req: dto.RefreshTokenRequest{
				RefreshToken: "invalid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), "invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.RefreshToken(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockEmployeeRepo, cfg, mockOtel, mockJWT)

	employee := validEmployee()

	tests := []struct {
		name       string
		req        dto.ChangePasswordRequest
		employeeID string
		setupMock  func()
		wantErr    bool
	}{
		{
			name: "successful password change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			employeeID: "employee-id-123",
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)

				mockEmployeeRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "employee not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			employeeID: "nonexistent-id",
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, errors.New("employee not found"))
			},
			wantErr: true,
		},
		{
			name: "employee exists but empty ID",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			employeeID: "employee-id-123",
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrongpassword",
				NewPassword:     "newpassword123",
			},
			employeeID: "employee-id-123",
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)
			},
			wantErr: true,
		},
		{
			name: "update password error",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			employeeID: "employee-id-123",
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)

				mockEmployeeRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.ChangePassword(ctx, tt.req, tt.employeeID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
