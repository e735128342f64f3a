package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
	"parcelhub/contexts/parcel-logistics/tracking-log/domain/services"
	"parcelhub/internal/platform/db"

	"github.com/jackc/pgx/v5/pgconn"
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
	return []any{&trackingEventModel{}, &eventDedupModel{}}
}

// AppendEvent takes a transaction-scoped advisory lock on the tracking code so
// concurrent appends for one code observe each other's timestamps.
func (r *Repository) AppendEvent(ctx context.Context, event entities.TrackingEvent, now time.Time) (entities.TrackingEvent, error) {
	var stored entities.TrackingEvent
	err := db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", event.TrackingCode).Error; err != nil {
			return err
		}

		var last trackingEventModel
		var previous *time.Time
		err := tx.
			Where("tracking_code = ?", event.TrackingCode).
			Order("recorded_at DESC").
			Order("sequence DESC").
			First(&last).
			Error
		switch {
		case err == nil:
			value := last.RecordedAt.UTC()
			previous = &value
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		event.RecordedAt = services.NextRecordedAt(previous, now)
		// sequence is a bigserial and comes back through RETURNING.
		row := trackingEventModelFromEntity(event)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}
		stored = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.TrackingEvent{}, err
	}
	return stored, nil
}

func (r *Repository) ListByTrackingCode(ctx context.Context, trackingCode string) ([]entities.TrackingEvent, error) {
	return r.list(ctx, "tracking_code = ?", trackingCode)
}

func (r *Repository) ListByParcel(ctx context.Context, parcelID string) ([]entities.TrackingEvent, error) {
	return r.list(ctx, "parcel_id = ?", parcelID)
}

func (r *Repository) list(ctx context.Context, predicate string, value string) ([]entities.TrackingEvent, error) {
	var rows []trackingEventModel
	if err := db.Conn(ctx, r.db).
		Where(predicate, value).
		Order("recorded_at ASC").
		Order("sequence ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.TrackingEvent, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ReserveEvent(
	ctx context.Context,
	eventID string,
	payloadHash string,
	expiresAt time.Time,
) (bool, error) {
	now := time.Now().UTC()
	var duplicate bool
	err := db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at <= ?", now).Delete(&eventDedupModel{}).Error; err != nil {
			return err
		}

		var existing eventDedupModel
		err := tx.Where("event_id = ?", eventID).First(&existing).Error
		if err == nil {
			if existing.PayloadHash != payloadHash {
				return domainerrors.ErrDuplicateEventConflict
			}
			duplicate = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := eventDedupModel{
			EventID:     eventID,
			PayloadHash: payloadHash,
			ExpiresAt:   expiresAt.UTC(),
			ProcessedAt: now,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				duplicate = true
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if duplicate {
		r.logger.Debug("tracking dedup hit",
			"event", "postgres_tracking_dedup_hit",
			"module", "parcel-logistics/tracking-log",
			"layer", "adapter",
			"event_id", eventID,
		)
	}
	return duplicate, nil
}

func (r *Repository) ReleaseEvent(ctx context.Context, eventID string) error {
	return db.Conn(ctx, r.db).Where("event_id = ?", eventID).Delete(&eventDedupModel{}).Error
}

type trackingEventModel struct {
	EventID      string    `gorm:"column:event_id;primaryKey"`
	TrackingCode string    `gorm:"column:tracking_code;index:tracking_events_code_order,priority:1"`
	ParcelID     string    `gorm:"column:parcel_id;index"`
	Status       string    `gorm:"column:status"`
	Message      string    `gorm:"column:message"`
	UpdatedBy    string    `gorm:"column:updated_by"`
	RecordedAt   time.Time `gorm:"column:recorded_at;index:tracking_events_code_order,priority:2"`
	Sequence     int64     `gorm:"column:sequence;autoIncrement;uniqueIndex"`
}

func (trackingEventModel) TableName() string {
	return "tracking_events"
}

func trackingEventModelFromEntity(event entities.TrackingEvent) trackingEventModel {
	return trackingEventModel{
		EventID:      event.EventID,
		TrackingCode: event.TrackingCode,
		ParcelID:     event.ParcelID,
		Status:       event.Status,
		Message:      event.Message,
		UpdatedBy:    event.UpdatedBy,
		RecordedAt:   event.RecordedAt.UTC(),
	}
}

func (m trackingEventModel) toEntity() entities.TrackingEvent {
	return entities.TrackingEvent{
		EventID:      m.EventID,
		TrackingCode: m.TrackingCode,
		ParcelID:     m.ParcelID,
		Status:       m.Status,
		Message:      m.Message,
		UpdatedBy:    m.UpdatedBy,
		RecordedAt:   m.RecordedAt.UTC(),
		Sequence:     m.Sequence,
	}
}

type eventDedupModel struct {
	EventID     string    `gorm:"column:event_id;primaryKey"`
	PayloadHash string    `gorm:"column:payload_hash"`
	ExpiresAt   time.Time `gorm:"column:expires_at;index"`
	ProcessedAt time.Time `gorm:"column:processed_at"`
}

func (eventDedupModel) TableName() string {
	return "tracking_log_event_dedup"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
