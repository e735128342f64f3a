package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/contexts/identity-access/user-directory/application"
	"parcelhub/contexts/identity-access/user-directory/domain/entities"
	httptransport "parcelhub/contexts/identity-access/user-directory/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// UpsertUserHandler godoc
// @Summary Register or refresh a user
// @Description Inserts the user on first login; afterwards only the last login time changes.
// @Tags user-directory
// @Accept json
// @Produce json
// @Param request body httptransport.UpsertUserRequest true "Login document with email"
// @Success 201 {object} httptransport.UpsertUserResponse "inserted"
// @Success 200 {object} httptransport.UpsertUserResponse "refreshed"
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /users [post]
func (h Handler) UpsertUserHandler(ctx context.Context, req httptransport.UpsertUserRequest) (httptransport.UpsertUserResponse, error) {
	email, _ := req["email"].(string)
	user, inserted, err := h.Service.UpsertUser(ctx, email, map[string]any(req))
	if err != nil {
		return httptransport.UpsertUserResponse{}, err
	}
	message := "user already exists"
	if inserted {
		message = "user created"
	}
	return httptransport.UpsertUserResponse{
		Inserted: inserted,
		Message:  message,
		User:     mapUser(user),
	}, nil
}

// GetUserHandler godoc
// @Summary Get user
// @Tags user-directory
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} httptransport.GetUserResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /users/{email} [get]
func (h Handler) GetUserHandler(ctx context.Context, email string) (httptransport.GetUserResponse, error) {
	user, err := h.Service.GetUser(ctx, email)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{Item: mapUser(user)}, nil
}

// GetRoleHandler godoc
// @Summary Get user role
// @Tags user-directory
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} httptransport.RoleResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /users/{email}/role [get]
func (h Handler) GetRoleHandler(ctx context.Context, email string) (httptransport.RoleResponse, error) {
	role, err := h.Service.GetRole(ctx, email)
	if err != nil {
		return httptransport.RoleResponse{}, err
	}
	return httptransport.RoleResponse{Email: entities.NormalizeEmail(email), Role: string(role)}, nil
}

// UpdateRoleHandler godoc
// @Summary Change user role
// @Description Admins may set any role. Other callers may only change their own role, and never to admin.
// @Tags user-directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param request body httptransport.UpdateRoleRequest true "Role"
// @Success 200 {object} httptransport.RoleResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /users/{email}/role [patch]
func (h Handler) UpdateRoleHandler(
	ctx context.Context,
	actor string,
	email string,
	req httptransport.UpdateRoleRequest,
) (httptransport.RoleResponse, error) {
	user, err := h.Service.UpdateRole(ctx, actor, email, req.Role)
	if err != nil {
		return httptransport.RoleResponse{}, err
	}
	return httptransport.RoleResponse{Email: user.Email, Role: string(user.Role)}, nil
}

func mapUser(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		Email:        user.Email,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt.UTC().Format(time.RFC3339),
		LastLoggedIn: user.LastLoggedIn.UTC().Format(time.RFC3339),
		Profile:      user.Profile,
	}
}
