package httptransport

type ParcelDTO struct {
	ParcelID      string         `json:"parcel_id"`
	TrackingCode  string         `json:"tracking_code"`
	CreatedBy     string         `json:"created_by"`
	PaymentStatus string         `json:"payment_status"`
	CreatedAt     string         `json:"created_at"`
	PaidAt        string         `json:"paid_at,omitempty"`
	Details       map[string]any `json:"details"`
}

// CreateParcelRequest is an opaque shipment document. created_by and
// tracking_code are read from it; every other field is kept as details.
type CreateParcelRequest map[string]any

type CreateParcelResponse struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   string    `json:"inserted_id"`
	Parcel       ParcelDTO `json:"parcel"`
}

type GetParcelResponse struct {
	Item ParcelDTO `json:"item"`
}

type ListParcelsResponse struct {
	Items []ParcelDTO `json:"items"`
}

type DeleteParcelResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deleted_count"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
