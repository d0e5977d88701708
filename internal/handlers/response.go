// Package handlers implements the HTTP handlers for the admin dashboard API.
// Every route answers with the uniform {success, message} envelope; listing
// and stats routes carry their payload under a route-specific field name.
package handlers

import "github.com/freegoat/admin-dashboard/internal/models"

// Response is the uniform envelope returned by mutation and error routes.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// StatusResponse is returned by GET /api/auth/check. User is null while
// unauthenticated.
type StatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user"`
}

func ok(message string) Response {
	return Response{Success: true, Message: message}
}

func fail(message string) Response {
	return Response{Success: false, Message: message}
}
