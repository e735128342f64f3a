package postgresadapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(context.Context) (string, error) {
	return uuid.NewString(), nil
}

// ULIDTrackingCodes issues lexically sortable tracking codes.
type ULIDTrackingCodes struct{}

func (ULIDTrackingCodes) NewTrackingCode(context.Context) (string, error) {
	return ulid.Make().String(), nil
}
