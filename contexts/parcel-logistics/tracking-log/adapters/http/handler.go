package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/contexts/parcel-logistics/tracking-log/application"
	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	httptransport "parcelhub/contexts/parcel-logistics/tracking-log/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// AppendTrackingHandler godoc
// @Summary Append a tracking event
// @Description Appends a status update to a tracking code. The server assigns the timestamp; the caller becomes the updater.
// @Tags tracking-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.AppendTrackingRequest true "Tracking update"
// @Success 201 {object} httptransport.AppendTrackingResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /tracking [post]
func (h Handler) AppendTrackingHandler(
	ctx context.Context,
	updatedBy string,
	req httptransport.AppendTrackingRequest,
) (httptransport.AppendTrackingResponse, error) {
	event, err := h.Service.Append(ctx, application.AppendCommand{
		TrackingCode: req.TrackingCode,
		ParcelID:     req.ParcelID,
		Status:       req.Status,
		Message:      req.Message,
		UpdatedBy:    updatedBy,
	})
	if err != nil {
		return httptransport.AppendTrackingResponse{}, err
	}
	return httptransport.AppendTrackingResponse{
		InsertedID: event.EventID,
		Event:      mapEvent(event),
	}, nil
}

// ListByTrackingCodeHandler godoc
// @Summary Tracking history by code
// @Tags tracking-log
// @Produce json
// @Param tracking_code path string true "Tracking code"
// @Success 200 {object} httptransport.ListTrackingResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /tracking/{tracking_code} [get]
func (h Handler) ListByTrackingCodeHandler(ctx context.Context, trackingCode string) (httptransport.ListTrackingResponse, error) {
	items, err := h.Service.ListByTrackingCode(ctx, trackingCode)
	if err != nil {
		return httptransport.ListTrackingResponse{}, err
	}
	return httptransport.ListTrackingResponse{Items: mapEvents(items)}, nil
}

// ListByParcelHandler godoc
// @Summary Tracking history by parcel
// @Tags tracking-log
// @Produce json
// @Param parcel_id path string true "Parcel id"
// @Success 200 {object} httptransport.ListTrackingResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /parcels/{parcel_id}/tracking [get]
func (h Handler) ListByParcelHandler(ctx context.Context, parcelID string) (httptransport.ListTrackingResponse, error) {
	items, err := h.Service.ListByParcel(ctx, parcelID)
	if err != nil {
		return httptransport.ListTrackingResponse{}, err
	}
	return httptransport.ListTrackingResponse{Items: mapEvents(items)}, nil
}

func mapEvents(items []entities.TrackingEvent) []httptransport.TrackingEventDTO {
	out := make([]httptransport.TrackingEventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapEvent(item))
	}
	return out
}

func mapEvent(event entities.TrackingEvent) httptransport.TrackingEventDTO {
	return httptransport.TrackingEventDTO{
		EventID:      event.EventID,
		TrackingCode: event.TrackingCode,
		ParcelID:     event.ParcelID,
		Status:       event.Status,
		Message:      event.Message,
		UpdatedBy:    event.UpdatedBy,
		Timestamp:    event.RecordedAt.UTC().Format(time.RFC3339Nano),
		Sequence:     event.Sequence,
	}
}
