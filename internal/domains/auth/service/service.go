package service

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/otel"
	"innkeep/internal/domains/auth/model/dto"
	employeeModel "innkeep/internal/domains/employee/model"
	employeeRepo "innkeep/internal/domains/employee/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/password"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, employeeID string) error
}

type serviceImpl struct {
	employeeRepo employeeRepo.Employee
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(employeeRepo employeeRepo.Employee, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		employeeRepo: employeeRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if err := password.Verify(req.Password, employee.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if !employee.Active {
		return res, failure.BadRequestFromString("employee account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, employee.ID, employee.Email, employee.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	idFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    employeeModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    employee.ID,
				Table:    employeeModel.TableName,
			},
		},
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, employee.ID)

	if err := s.employeeRepo.Update(ctx, updatedFields, idFilter); err != nil {
		log.Warn().Err(err).Str("employee_id", employee.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, employeeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    employeeModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    employeeID,
				Table:    employeeModel.TableName,
			},
		},
	}

	employee, err := s.employeeRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == "" {
		return failure.NotFound("employee not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, employee.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, employeeID)

	if err = s.employeeRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
