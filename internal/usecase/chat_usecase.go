package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/memoria-radar/internal/filter"
	"github.com/memoria-radar/internal/filterbus"
	"github.com/memoria-radar/internal/pkg/errors"
	"github.com/memoria-radar/internal/pkg/validator"
	"github.com/memoria-radar/internal/usecase/dto"
)

// ChatFilterUseCase - use case that scans assistant messages for known place
// names and publishes them through the shared filter bus. Matching is
// accent- and case-insensitive over the full message text.
type ChatFilterUseCase struct {
	places *PlacesUseCase
	bus    *filterbus.Bus
	logger *zap.Logger
}

// NewChatFilterUseCase - create a new ChatFilterUseCase
func NewChatFilterUseCase(places *PlacesUseCase, bus *filterbus.Bus, logger *zap.Logger) *ChatFilterUseCase {
	return &ChatFilterUseCase{
		places: places,
		bus:    bus,
		logger: logger,
	}
}

// ProcessMessage - extract place mentions from a message and activate the
// mentioned-places filter when any are found
func (uc *ChatFilterUseCase) ProcessMessage(ctx context.Context, req dto.ChatMessageRequest) (*dto.ChatFilterResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	normMessage := filter.Normalize(req.Message)

	var mentioned []string
	for _, name := range uc.places.KnownNames(ctx) {
		if name == "" {
			continue
		}
		if containsNormalized(normMessage, name) {
			mentioned = append(mentioned, name)
		}
	}

	if len(mentioned) == 0 {
		return &dto.ChatFilterResponse{FilterApplied: false}, nil
	}

	uc.bus.SetMentionedPlacesFilter(mentioned...)
	uc.logger.Info("Mentioned-places filter applied",
		zap.Strings("places", mentioned))

	return &dto.ChatFilterResponse{
		MentionedPlaces: mentioned,
		FilterApplied:   true,
	}, nil
}

func containsNormalized(normMessage, name string) bool {
	normName := filter.Normalize(name)
	return normName != "" && strings.Contains(normMessage, normName)
}
