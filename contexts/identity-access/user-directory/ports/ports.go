package ports

import (
	"context"
	"time"

	"parcelhub/contexts/identity-access/user-directory/domain/entities"
)

type UserRepository interface {
	// InsertOrTouch inserts user when its email is new and reports true;
	// otherwise it only sets LastLoggedIn on the stored user and reports false.
	InsertOrTouch(ctx context.Context, user entities.User) (entities.User, bool, error)
	GetUser(ctx context.Context, email string) (entities.User, error)
	UpdateRole(ctx context.Context, email string, role entities.Role) (entities.User, error)
}

type Clock interface {
	Now() time.Time
}
