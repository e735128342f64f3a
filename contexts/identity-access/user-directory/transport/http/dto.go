package httptransport

type UserDTO struct {
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	CreatedAt    string         `json:"created_at"`
	LastLoggedIn string         `json:"last_log_in"`
	Profile      map[string]any `json:"profile"`
}

// UpsertUserRequest is the login document. email is required; other fields
// become the profile on first login.
type UpsertUserRequest map[string]any

type UpsertUserResponse struct {
	Inserted bool    `json:"inserted"`
	Message  string  `json:"message"`
	User     UserDTO `json:"user"`
}

type GetUserResponse struct {
	Item UserDTO `json:"item"`
}

type RoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
