package mapengine

import (
	"context"
	"errors"
	"time"

	"github.com/memoria-radar/internal/domain"
)

// PositionErrorKind classifies a failed geolocation request. Every failure
// is one of these three; the request never hangs past its timeout.
type PositionErrorKind int

const (
	PositionPermissionDenied PositionErrorKind = iota + 1
	PositionUnavailable
	PositionTimeout
)

// PositionError is the typed failure of a geolocation request.
type PositionError struct {
	Kind    PositionErrorKind
	Message string
}

func (e *PositionError) Error() string {
	return e.Message
}

// Locator acquires the device position. The platform implementation lives in
// the embedding shell.
type Locator interface {
	CurrentPosition(ctx context.Context, highAccuracy bool) (domain.Coordinates, error)
}

// Locate requests the current position with a bounded timeout, translating a
// deadline hit into a typed timeout failure. The returned error is always a
// *PositionError when non-nil.
func Locate(ctx context.Context, locator Locator, timeout time.Duration, highAccuracy bool) (domain.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	coords, err := locator.CurrentPosition(ctx, highAccuracy)
	if err == nil {
		return coords, nil
	}

	var posErr *PositionError
	if errors.As(err, &posErr) {
		return domain.Coordinates{}, posErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.Coordinates{}, &PositionError{
			Kind:    PositionTimeout,
			Message: "location request timed out",
		}
	}
	return domain.Coordinates{}, &PositionError{
		Kind:    PositionUnavailable,
		Message: err.Error(),
	}
}
