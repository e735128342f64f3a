package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/contexts/fleet-operations/rider-directory/domain/entities"
	domainerrors "parcelhub/contexts/fleet-operations/rider-directory/domain/errors"
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
	return &Repository{db: gdb, logger: logger}
}

func Models() []any {
	return []any{&riderModel{}}
}

func (r *Repository) CreateRider(ctx context.Context, rider entities.Rider) (entities.Rider, error) {
	row := riderModelFromEntity(rider)
	if err := db.Conn(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Rider{}, domainerrors.ErrRepositoryInvariantBroke
		}
		return entities.Rider{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetRider(ctx context.Context, riderID string) (entities.Rider, error) {
	var row riderModel
	err := db.Conn(ctx, r.db).Where("rider_id = ?", riderID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Rider{}, domainerrors.ErrRiderNotFound
		}
		return entities.Rider{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListRidersByStatus(ctx context.Context, status entities.RiderStatus) ([]entities.Rider, error) {
	var rows []riderModel
	if err := db.Conn(ctx, r.db).
		Where("status = ?", string(status)).
		Order("sequence ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Rider, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateRiderStatus(
	ctx context.Context,
	riderID string,
	from entities.RiderStatus,
	to entities.RiderStatus,
	updatedAt time.Time,
) (entities.Rider, error) {
	conn := db.Conn(ctx, r.db)
	result := conn.
		Model(&riderModel{}).
		Where("rider_id = ? AND status = ?", riderID, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.Rider{}, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetRider(ctx, riderID); err != nil {
			return entities.Rider{}, err
		}
		return entities.Rider{}, domainerrors.ErrStatusChanged
	}
	r.logger.Debug("rider status persisted",
		"event", "postgres_rider_status_updated",
		"module", "fleet-operations/rider-directory",
		"layer", "adapter",
		"rider_id", riderID,
		"status", string(to),
	)
	return r.GetRider(ctx, riderID)
}

type riderModel struct {
	RiderID   string            `gorm:"column:rider_id;primaryKey"`
	Email     string            `gorm:"column:email;index"`
	Profile   datatypes.JSONMap `gorm:"column:profile;type:jsonb"`
	Status    string            `gorm:"column:status;index"`
	CreatedAt time.Time         `gorm:"column:created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at"`
	Sequence  int64             `gorm:"column:sequence;autoIncrement;uniqueIndex"`
}

func (riderModel) TableName() string {
	return "riders"
}

func riderModelFromEntity(rider entities.Rider) riderModel {
	return riderModel{
		RiderID:   rider.RiderID,
		Email:     rider.Email,
		Profile:   datatypes.JSONMap(rider.Profile),
		Status:    string(rider.Status),
		CreatedAt: rider.CreatedAt.UTC(),
		UpdatedAt: rider.UpdatedAt.UTC(),
	}
}

func (m riderModel) toEntity() entities.Rider {
	profile := map[string]any(m.Profile)
	if profile == nil {
		profile = map[string]any{}
	}
	return entities.Rider{
		RiderID:   m.RiderID,
		Email:     m.Email,
		Profile:   profile,
		Status:    entities.RiderStatus(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
		Sequence:  m.Sequence,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
