package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/contexts/identity-access/user-directory/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/user-directory/domain/errors"
	"parcelhub/internal/platform/db"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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
	return []any{&userModel{}}
}

// InsertOrTouch relies on ON CONFLICT DO NOTHING so two first logins for one
// email resolve to a single insert.
func (r *Repository) InsertOrTouch(ctx context.Context, user entities.User) (entities.User, bool, error) {
	conn := db.Conn(ctx, r.db)
	row := userModelFromEntity(user)
	result := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&row)
	if result.Error != nil {
		return entities.User{}, false, result.Error
	}
	if result.RowsAffected == 1 {
		return row.toEntity(), true, nil
	}

	if err := conn.
		Model(&userModel{}).
		Where("email = ?", user.Email).
		Update("last_logged_in", user.LastLoggedIn.UTC()).
		Error; err != nil {
		return entities.User{}, false, err
	}
	r.logger.Debug("user login refreshed",
		"event", "postgres_user_login_refreshed",
		"module", "identity-access/user-directory",
		"layer", "adapter",
		"email", user.Email,
	)
	stored, err := r.GetUser(ctx, user.Email)
	if err != nil {
		return entities.User{}, false, err
	}
	return stored, false, nil
}

func (r *Repository) GetUser(ctx context.Context, email string) (entities.User, error) {
	var row userModel
	err := db.Conn(ctx, r.db).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateRole(ctx context.Context, email string, role entities.Role) (entities.User, error) {
	result := db.Conn(ctx, r.db).
		Model(&userModel{}).
		Where("email = ?", email).
		Update("role", string(role))
	if result.Error != nil {
		return entities.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return r.GetUser(ctx, email)
}

type userModel struct {
	Email        string            `gorm:"column:email;primaryKey"`
	Profile      datatypes.JSONMap `gorm:"column:profile;type:jsonb"`
	Role         string            `gorm:"column:role"`
	CreatedAt    time.Time         `gorm:"column:created_at"`
	LastLoggedIn time.Time         `gorm:"column:last_logged_in"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromEntity(user entities.User) userModel {
	return userModel{
		Email:        user.Email,
		Profile:      datatypes.JSONMap(user.Profile),
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt.UTC(),
		LastLoggedIn: user.LastLoggedIn.UTC(),
	}
}

func (m userModel) toEntity() entities.User {
	profile := map[string]any(m.Profile)
	if profile == nil {
		profile = map[string]any{}
	}
	return entities.User{
		Email:        m.Email,
		Profile:      profile,
		Role:         entities.Role(m.Role),
		CreatedAt:    m.CreatedAt.UTC(),
		LastLoggedIn: m.LastLoggedIn.UTC(),
	}
}
