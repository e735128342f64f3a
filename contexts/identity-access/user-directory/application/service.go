package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/contexts/identity-access/user-directory/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/user-directory/domain/errors"
	"parcelhub/contexts/identity-access/user-directory/ports"
)

type Service struct {
	Repo  ports.UserRepository
	Clock ports.Clock
	// Admins are subjects treated as admins whatever their stored role.
	Admins []string
	Logger *slog.Logger
}

// UpsertUser registers a first login or refreshes the last login of a known
// user. inserted is false on refresh; the stored profile is left unchanged.
func (s Service) UpsertUser(ctx context.Context, email string, profile map[string]any) (entities.User, bool, error) {
	user, err := entities.NewUser(email, profile, s.now())
	if err != nil {
		return entities.User{}, false, err
	}
	stored, inserted, err := s.Repo.InsertOrTouch(ctx, user)
	if err != nil {
		return entities.User{}, false, err
	}

	event := "user_login_refreshed"
	if inserted {
		event = "user_registered"
	}
	ResolveLogger(s.Logger).Info("user upserted",
		"event", event,
		"module", "identity-access/user-directory",
		"layer", "application",
		"email", stored.Email,
	)
	return stored, inserted, nil
}

func (s Service) GetUser(ctx context.Context, email string) (entities.User, error) {
	email = entities.NormalizeEmail(email)
	if email == "" {
		return entities.User{}, domainerrors.ErrInvalidUser
	}
	return s.Repo.GetUser(ctx, email)
}

func (s Service) GetRole(ctx context.Context, email string) (entities.Role, error) {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// UpdateRole changes the role of email on behalf of actor. Admins may set any
// role; other users may only change their own role and never to admin.
func (s Service) UpdateRole(ctx context.Context, actor string, email string, rawRole string) (entities.User, error) {
	email = entities.NormalizeEmail(email)
	if email == "" {
		return entities.User{}, domainerrors.ErrInvalidUser
	}
	role, err := entities.ParseRole(rawRole)
	if err != nil {
		return entities.User{}, err
	}

	actor = entities.NormalizeEmail(actor)
	admin, err := s.isAdmin(ctx, actor)
	if err != nil {
		return entities.User{}, err
	}
	if !admin && (actor != email || role == entities.RoleAdmin) {
		ResolveLogger(s.Logger).Warn("user role change denied",
			"event", "user_role_change_denied",
			"module", "identity-access/user-directory",
			"layer", "application",
			"actor", actor,
			"email", email,
			"role", string(role),
		)
		return entities.User{}, domainerrors.ErrRoleChangeForbidden
	}

	user, err := s.Repo.UpdateRole(ctx, email, role)
	if err != nil {
		return entities.User{}, err
	}
	ResolveLogger(s.Logger).Info("user role updated",
		"event", "user_role_updated",
		"module", "identity-access/user-directory",
		"layer", "application",
		"actor", actor,
		"email", email,
		"role", string(role),
	)
	return user, nil
}

func (s Service) isAdmin(ctx context.Context, subject string) (bool, error) {
	if subject == "" {
		return false, nil
	}
	for _, admin := range s.Admins {
		if entities.NormalizeEmail(admin) == subject {
			return true, nil
		}
	}
	user, err := s.Repo.GetUser(ctx, subject)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == entities.RoleAdmin, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
