package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"parcelhub/contexts/fleet-operations/rider-directory/application"
	"parcelhub/contexts/fleet-operations/rider-directory/domain/entities"
	httptransport "parcelhub/contexts/fleet-operations/rider-directory/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// SubmitApplicationHandler godoc
// @Summary Submit a rider application
// @Tags rider-directory
// @Accept json
// @Produce json
// @Param request body httptransport.SubmitApplicationRequest true "Application form with email"
// @Success 201 {object} httptransport.SubmitApplicationResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /riders [post]
func (h Handler) SubmitApplicationHandler(
	ctx context.Context,
	req httptransport.SubmitApplicationRequest,
) (httptransport.SubmitApplicationResponse, error) {
	email, _ := req["email"].(string)
	profile := make(map[string]any, len(req))
	for key, value := range req {
		if key != "email" {
			profile[key] = value
		}
	}
	rider, err := h.Service.SubmitApplication(ctx, email, profile)
	if err != nil {
		return httptransport.SubmitApplicationResponse{}, err
	}
	return httptransport.SubmitApplicationResponse{
		InsertedID: rider.RiderID,
		Rider:      mapRider(rider),
	}, nil
}

// ListRidersHandler godoc
// @Summary List riders by status
// @Description Pending applications are returned newest first.
// @Tags rider-directory
// @Produce json
// @Param status query string false "pending (default), active, rejected or inactive"
// @Success 200 {object} httptransport.ListRidersResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /riders [get]
func (h Handler) ListRidersHandler(ctx context.Context, status string) (httptransport.ListRidersResponse, error) {
	items, err := h.Service.ListByStatus(ctx, status)
	if err != nil {
		return httptransport.ListRidersResponse{}, err
	}
	out := make([]httptransport.RiderDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapRider(item))
	}
	return httptransport.ListRidersResponse{Items: out}, nil
}

// UpdateStatusHandler godoc
// @Summary Change a rider's status
// @Tags rider-directory
// @Accept json
// @Produce json
// @Param rider_id path string true "Rider id"
// @Param request body httptransport.UpdateStatusRequest true "Target status"
// @Success 200 {object} httptransport.UpdateStatusResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /riders/{rider_id}/status [patch]
func (h Handler) UpdateStatusHandler(
	ctx context.Context,
	riderID string,
	req httptransport.UpdateStatusRequest,
) (httptransport.UpdateStatusResponse, error) {
	rider, err := h.Service.UpdateStatus(ctx, strings.TrimSpace(riderID), req.Status)
	if err != nil {
		return httptransport.UpdateStatusResponse{}, err
	}
	return httptransport.UpdateStatusResponse{Rider: mapRider(rider)}, nil
}

func mapRider(rider entities.Rider) httptransport.RiderDTO {
	return httptransport.RiderDTO{
		RiderID:   rider.RiderID,
		Email:     rider.Email,
		Status:    string(rider.Status),
		CreatedAt: rider.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: rider.UpdatedAt.UTC().Format(time.RFC3339),
		Profile:   rider.Profile,
	}
}
