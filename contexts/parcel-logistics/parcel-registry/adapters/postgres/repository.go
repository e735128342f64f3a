package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/services"
	"parcelhub/internal/platform/db"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(gdb *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     gdb,
		logger: logger,
	}
}

// Models lists the tables owned by this adapter for auto-migration.
func Models() []any {
	return []any{&parcelModel{}}
}

func (r *Repository) CreateParcel(ctx context.Context, parcel entities.Parcel) error {
	row := parcelModelFromEntity(parcel)
	if err := db.Conn(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) GetParcel(ctx context.Context, parcelID string) (entities.Parcel, error) {
	var row parcelModel
	err := db.Conn(ctx, r.db).
		Where("parcel_id = ?", parcelID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Parcel{}, domainerrors.ErrParcelNotFound
		}
		return entities.Parcel{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListParcelsByOwner(ctx context.Context, ownerEmail string) ([]entities.Parcel, error) {
	tx := db.Conn(ctx, r.db).Model(&parcelModel{})
	if ownerEmail != "" {
		tx = tx.Where("owner_email = ?", ownerEmail)
	}

	var rows []parcelModel
	if err := tx.Order("sequence DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListParcels(ctx context.Context) ([]entities.Parcel, error) {
	var rows []parcelModel
	if err := db.Conn(ctx, r.db).Order("sequence ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) MarkParcelPaid(ctx context.Context, parcelID string, paidAt time.Time) (entities.Parcel, error) {
	conn := db.Conn(ctx, r.db)

	// Single conditional UPDATE: at most one concurrent caller matches the
	// unpaid predicate and sees a row affected.
	result := conn.
		Model(&parcelModel{}).
		Where("parcel_id = ? AND payment_status <> ?", parcelID, string(entities.PaymentStatusPaid)).
		Updates(map[string]any{
			"payment_status": string(entities.PaymentStatusPaid),
			"paid_at":        paidAt.UTC(),
		})
	if result.Error != nil {
		return entities.Parcel{}, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := conn.Model(&parcelModel{}).Where("parcel_id = ?", parcelID).Count(&count).Error; err != nil {
			return entities.Parcel{}, err
		}
		if count == 0 {
			return entities.Parcel{}, services.RejectNotFound()
		}
		paid := entities.Parcel{PaymentStatus: entities.PaymentStatusPaid}
		return entities.Parcel{}, services.EvaluateMarkPaid(&paid)
	}

	var row parcelModel
	if err := conn.Where("parcel_id = ?", parcelID).First(&row).Error; err != nil {
		return entities.Parcel{}, err
	}
	r.logger.Debug("parcel marked paid",
		"event", "postgres_parcel_mark_paid",
		"module", "parcel-logistics/parcel-registry",
		"layer", "adapter",
		"parcel_id", parcelID,
	)
	return row.toEntity(), nil
}

func (r *Repository) DeleteParcel(ctx context.Context, parcelID string) (int64, error) {
	result := db.Conn(ctx, r.db).
		Where("parcel_id = ?", parcelID).
		Delete(&parcelModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

type parcelModel struct {
	ParcelID      string            `gorm:"column:parcel_id;primaryKey"`
	TrackingCode  string            `gorm:"column:tracking_code;uniqueIndex"`
	OwnerEmail    string            `gorm:"column:owner_email;index"`
	Payload       datatypes.JSONMap `gorm:"column:payload;type:jsonb"`
	PaymentStatus string            `gorm:"column:payment_status;index"`
	CreatedAt     time.Time         `gorm:"column:created_at;index"`
	PaidAt        *time.Time        `gorm:"column:paid_at"`
	Sequence      int64             `gorm:"column:sequence;autoIncrement;uniqueIndex"`
}

func (parcelModel) TableName() string {
	return "parcels"
}

func parcelModelFromEntity(parcel entities.Parcel) parcelModel {
	return parcelModel{
		ParcelID:      parcel.ParcelID,
		TrackingCode:  parcel.TrackingCode,
		OwnerEmail:    parcel.OwnerEmail,
		Payload:       datatypes.JSONMap(parcel.Payload),
		PaymentStatus: string(parcel.PaymentStatus),
		CreatedAt:     parcel.CreatedAt.UTC(),
		PaidAt:        parcel.PaidAt,
	}
}

func (m parcelModel) toEntity() entities.Parcel {
	payload := map[string]any(m.Payload)
	if payload == nil {
		payload = map[string]any{}
	}
	var paidAt *time.Time
	if m.PaidAt != nil {
		value := m.PaidAt.UTC()
		paidAt = &value
	}
	return entities.Parcel{
		ParcelID:      m.ParcelID,
		TrackingCode:  m.TrackingCode,
		OwnerEmail:    m.OwnerEmail,
		Payload:       payload,
		PaymentStatus: entities.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt.UTC(),
		PaidAt:        paidAt,
		Sequence:      m.Sequence,
	}
}

func toEntities(rows []parcelModel) []entities.Parcel {
	items := make([]entities.Parcel, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
