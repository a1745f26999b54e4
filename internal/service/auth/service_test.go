package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/timecard-backend-go/internal/domain/auth"
	"github.com/shiftwise/timecard-backend-go/internal/domain/employee"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	byEmail map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range r.byEmail {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	emp, ok := r.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func newLoginService(t *testing.T) Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{byEmail: map[string]employee.Employee{
		"dana@example.com": {
			ID:           "emp-1",
			FullName:     "Dana Okafor",
			Email:        "dana@example.com",
			PasswordHash: string(hash),
			IsAdmin:      true,
		},
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "1h"))
}

func TestLogin(t *testing.T) {
	svc := newLoginService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Dana Okafor", resp.FullName)
	assert.True(t, resp.IsAdmin)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newLoginService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dana@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newLoginService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})

	// Same error as a wrong password; lookups must not reveal which
	// accounts exist.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInvalidPayload(t *testing.T) {
	svc := newLoginService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "not-an-email",
		Password: "",
	})

	assert.Error(t, err)
}
