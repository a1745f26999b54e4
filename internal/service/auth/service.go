package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftwise/timecard-backend-go/internal/domain/auth"
	"github.com/shiftwise/timecard-backend-go/internal/domain/employee"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.Repository, jwtService jwt.Service) Service {
	return &service{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		FullName:    emp.FullName,
		IsAdmin:     emp.IsAdmin,
	}, nil
}
