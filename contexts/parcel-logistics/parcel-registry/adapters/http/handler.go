package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "parcelhub/contexts/parcel-logistics/parcel-registry/application"
	"parcelhub/contexts/parcel-logistics/parcel-registry/application/commands"
	"parcelhub/contexts/parcel-logistics/parcel-registry/application/queries"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	httptransport "parcelhub/contexts/parcel-logistics/parcel-registry/transport/http"
)

type Handler struct {
	CreateParcel   commands.CreateParcelUseCase
	DeleteParcel   commands.DeleteParcelUseCase
	GetParcel      queries.GetParcelUseCase
	ListParcels    queries.ListParcelsUseCase
	ListAllParcels queries.ListAllParcelsUseCase
	Logger         *slog.Logger
}

// ListAllParcelsHandler godoc
// @Summary List all parcels
// @Description Returns every registered parcel in storage order.
// @Tags parcel-registry
// @Produce json
// @Success 200 {object} httptransport.ListParcelsResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /parcels [get]
func (h Handler) ListAllParcelsHandler(ctx context.Context) (httptransport.ListParcelsResponse, error) {
	items, err := h.ListAllParcels.Execute(ctx)
	if err != nil {
		return httptransport.ListParcelsResponse{}, err
	}
	return httptransport.ListParcelsResponse{Items: mapParcels(items)}, nil
}

// ListMyParcelsHandler godoc
// @Summary List parcels by owner
// @Description Returns the caller's parcels newest first. Without email, lists every parcel.
// @Tags parcel-registry
// @Produce json
// @Security BearerAuth
// @Param email query string false "Owner email; must match the bearer subject"
// @Success 200 {object} httptransport.ListParcelsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /my-parcels [get]
func (h Handler) ListMyParcelsHandler(ctx context.Context, ownerEmail string) (httptransport.ListParcelsResponse, error) {
	items, err := h.ListParcels.Execute(ctx, queries.ListParcelsQuery{OwnerEmail: ownerEmail})
	if err != nil {
		return httptransport.ListParcelsResponse{}, err
	}
	return httptransport.ListParcelsResponse{Items: mapParcels(items)}, nil
}

// GetParcelHandler godoc
// @Summary Get parcel
// @Description Returns one parcel by id.
// @Tags parcel-registry
// @Produce json
// @Param parcel_id path string true "Parcel id"
// @Success 200 {object} httptransport.GetParcelResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /parcels/{parcel_id} [get]
func (h Handler) GetParcelHandler(ctx context.Context, parcelID string) (httptransport.GetParcelResponse, error) {
	parcel, err := h.GetParcel.Execute(ctx, parcelID)
	if err != nil {
		return httptransport.GetParcelResponse{}, err
	}
	return httptransport.GetParcelResponse{Item: mapParcel(parcel)}, nil
}

// CreateParcelHandler godoc
// @Summary Register a parcel
// @Description Stores the shipment document as an unpaid parcel and assigns a tracking code.
// @Tags parcel-registry
// @Accept json
// @Produce json
// @Param request body httptransport.CreateParcelRequest true "Shipment document"
// @Success 201 {object} httptransport.CreateParcelResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /parcels [post]
func (h Handler) CreateParcelHandler(
	ctx context.Context,
	ownerEmail string,
	req httptransport.CreateParcelRequest,
) (httptransport.CreateParcelResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	owner := strings.TrimSpace(ownerEmail)
	if owner == "" {
		owner = stringField(req, "created_by")
	}

	parcel, err := h.CreateParcel.Execute(ctx, commands.CreateParcelCommand{
		OwnerEmail:   owner,
		TrackingCode: stringField(req, "tracking_code"),
		Payload:      map[string]any(req),
	})
	if err != nil {
		logger.Warn("create parcel request failed",
			"event", "http_create_parcel_failed",
			"module", "parcel-logistics/parcel-registry",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.CreateParcelResponse{}, err
	}
	return httptransport.CreateParcelResponse{
		Acknowledged: true,
		InsertedID:   parcel.ParcelID,
		Parcel:       mapParcel(parcel),
	}, nil
}

// DeleteParcelHandler godoc
// @Summary Delete a parcel
// @Description Hard-deletes by id and reports how many records matched.
// @Tags parcel-registry
// @Produce json
// @Param parcel_id path string true "Parcel id"
// @Success 200 {object} httptransport.DeleteParcelResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /parcels/{parcel_id} [delete]
func (h Handler) DeleteParcelHandler(ctx context.Context, parcelID string) (httptransport.DeleteParcelResponse, error) {
	result, err := h.DeleteParcel.Execute(ctx, parcelID)
	if err != nil {
		return httptransport.DeleteParcelResponse{}, err
	}
	return httptransport.DeleteParcelResponse{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}

func mapParcels(items []entities.Parcel) []httptransport.ParcelDTO {
	out := make([]httptransport.ParcelDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapParcel(item))
	}
	return out
}

func mapParcel(parcel entities.Parcel) httptransport.ParcelDTO {
	dto := httptransport.ParcelDTO{
		ParcelID:      parcel.ParcelID,
		TrackingCode:  parcel.TrackingCode,
		CreatedBy:     parcel.OwnerEmail,
		PaymentStatus: string(parcel.PaymentStatus),
		CreatedAt:     parcel.CreatedAt.UTC().Format(time.RFC3339),
		Details:       parcel.Payload,
	}
	if parcel.PaidAt != nil {
		dto.PaidAt = parcel.PaidAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func stringField(doc map[string]any, key string) string {
	value, ok := doc[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
