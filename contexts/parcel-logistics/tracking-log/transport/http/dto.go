package httptransport

type TrackingEventDTO struct {
	EventID      string `json:"event_id"`
	TrackingCode string `json:"tracking_code"`
	ParcelID     string `json:"parcel_id,omitempty"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	UpdatedBy    string `json:"updated_by"`
	Timestamp    string `json:"timestamp"`
	Sequence     int64  `json:"sequence"`
}

type AppendTrackingRequest struct {
	TrackingCode string `json:"tracking_code"`
	ParcelID     string `json:"parcel_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

type AppendTrackingResponse struct {
	InsertedID string           `json:"inserted_id"`
	Event      TrackingEventDTO `json:"event"`
}

type ListTrackingResponse struct {
	Items []TrackingEventDTO `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
