package httptransport

type RiderDTO struct {
	RiderID   string         `json:"rider_id"`
	Email     string         `json:"email"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	Profile   map[string]any `json:"profile"`
}

// SubmitApplicationRequest is the rider's application form. email is
// required; every other field is kept as the profile.
type SubmitApplicationRequest map[string]any

type SubmitApplicationResponse struct {
	InsertedID string   `json:"inserted_id"`
	Rider      RiderDTO `json:"rider"`
}

type ListRidersResponse struct {
	Items []RiderDTO `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateStatusResponse struct {
	Rider RiderDTO `json:"rider"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
