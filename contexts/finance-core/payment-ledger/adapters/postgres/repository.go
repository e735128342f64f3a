package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"
	"parcelhub/contexts/finance-core/payment-ledger/ports"
	"parcelhub/internal/platform/db"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
	outboxStatusFailed  = "failed"
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
	return []any{&paymentModel{}, &outboxModel{}}
}

func (r *Repository) GetPaymentByTransactionID(ctx context.Context, transactionID string) (entities.Payment, bool, error) {
	var row paymentModel
	err := db.Conn(ctx, r.db).
		Where("transaction_id = ?", transactionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Payment{}, false, nil
		}
		return entities.Payment{}, false, err
	}
	return row.toEntity(), true, nil
}

// CreatePaymentWithOutbox writes the ledger row and its outbox row. When ctx
// already carries a unit of work both inserts join it; otherwise a local
// transaction is opened.
func (r *Repository) CreatePaymentWithOutbox(ctx context.Context, payment entities.Payment, event ports.PaymentRecordedEvent) error {
	payload, err := json.Marshal(event.Envelope)
	if err != nil {
		return err
	}

	return db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		paymentRow := paymentModelFromEntity(payment)
		if err := tx.Create(&paymentRow).Error; err != nil {
			if isUniqueViolation(err) {
				if strings.Contains(constraintName(err), "transaction") {
					return domainerrors.ErrTransactionConflict
				}
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}

		outboxRow := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		}
		if err := tx.Create(&outboxRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}
		r.logger.Debug("payment and outbox persisted",
			"event", "postgres_create_payment_with_outbox",
			"module", "finance-core/payment-ledger",
			"layer", "adapter",
			"payment_id", payment.PaymentID,
			"outbox_event_id", event.EventID,
		)
		return nil
	})
}

func (r *Repository) ListPaymentsByPayer(ctx context.Context, payerEmail string) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := db.Conn(ctx, r.db).
		Where("payer_email = ?", payerEmail).
		Order("paid_at DESC").
		Order("payment_id DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountPaymentsForParcel(ctx context.Context, parcelID string) (int, error) {
	var count int64
	if err := db.Conn(ctx, r.db).
		Model(&paymentModel{}).
		Where("parcel_id = ?", parcelID).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPort())
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	return r.setOutboxStatus(ctx, outboxID, outboxStatusSent, sentAt)
}

func (r *Repository) MarkOutboxFailed(ctx context.Context, outboxID string, failedAt time.Time) error {
	return r.setOutboxStatus(ctx, outboxID, outboxStatusFailed, failedAt)
}

func (r *Repository) setOutboxStatus(ctx context.Context, outboxID string, status string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":  status,
			"sent_at": at.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	return nil
}

type paymentModel struct {
	PaymentID     string          `gorm:"column:payment_id;primaryKey"`
	ParcelID      string          `gorm:"column:parcel_id;index"`
	PayerEmail    string          `gorm:"column:payer_email;index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(20,4)"`
	Currency      string          `gorm:"column:currency"`
	Method        string          `gorm:"column:method"`
	TransactionID string          `gorm:"column:transaction_id;uniqueIndex:payments_unique_transaction"`
	PaidAt        time.Time       `gorm:"column:paid_at;index"`
	PaidAtString  string          `gorm:"column:paid_at_string"`
}

func (paymentModel) TableName() string {
	return "payments"
}

func paymentModelFromEntity(payment entities.Payment) paymentModel {
	return paymentModel{
		PaymentID:     payment.PaymentID,
		ParcelID:      payment.ParcelID,
		PayerEmail:    payment.PayerEmail,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Method:        payment.Method,
		TransactionID: payment.TransactionID,
		PaidAt:        payment.PaidAt.UTC(),
		PaidAtString:  payment.PaidAtString,
	}
}

func (m paymentModel) toEntity() entities.Payment {
	return entities.Payment{
		PaymentID:     m.PaymentID,
		ParcelID:      m.ParcelID,
		PayerEmail:    m.PayerEmail,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Method:        m.Method,
		TransactionID: m.TransactionID,
		PaidAt:        m.PaidAt.UTC(),
		PaidAtString:  m.PaidAtString,
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string {
	return "payment_ledger_outbox"
}

func (m outboxModel) toPort() ports.OutboxMessage {
	return ports.OutboxMessage{
		OutboxID:     m.OutboxID,
		EventType:    m.EventType,
		PartitionKey: m.PartitionKey,
		Payload:      append([]byte(nil), m.Payload...),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
