package employee

import (
	"time"
)

// Employee is provisioned out of band (seed or admin tooling) and is
// only ever read by the workflow.
type Employee struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Response is the wire representation; the password hash never leaves
// the process.
type Response struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

func NewResponse(e Employee) Response {
	return Response{
		ID:       e.ID,
		FullName: e.FullName,
		Email:    e.Email,
		IsAdmin:  e.IsAdmin,
	}
}
