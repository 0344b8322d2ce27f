package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/memoria-radar/internal/domain"
	"github.com/memoria-radar/internal/domain/repository"
	"github.com/memoria-radar/internal/pkg/errors"
	"github.com/memoria-radar/internal/pkg/utils"
	"github.com/memoria-radar/internal/usecase/dto"
)

// ExtractionUseCase - use case for resolving the address hierarchy of a map
// point. One lookup per configured zoom level runs concurrently and the
// results merge most specific first, so a street-level miss still yields
// the district and city.
//
// Only the newest extraction survives: starting a new one cancels the
// in-flight requests of the previous one, and a superseded extraction never
// reports a result.
type ExtractionUseCase struct {
	geocodeRepo repository.GeocodeRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	zooms       []int
	cacheTTL    time.Duration

	mu         sync.Mutex
	cancel     context.CancelFunc
	generation uint64
}

// NewExtractionUseCase - create a new ExtractionUseCase. cacheRepo may be nil
// when the cache is disabled.
func NewExtractionUseCase(
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	zooms []int,
	cacheTTL time.Duration,
) *ExtractionUseCase {
	return &ExtractionUseCase{
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		zooms:       zooms,
		cacheTTL:    cacheTTL,
	}
}

// ErrExtractionSuperseded marks an extraction that was cancelled because a
// newer one started.
var ErrExtractionSuperseded = errors.New(
	"EXTRACTION_SUPERSEDED",
	"extraction superseded by a newer request",
	499,
)

// ExtractAt - resolve the address of a point, cancelling any extraction
// still in flight
func (uc *ExtractionUseCase) ExtractAt(ctx context.Context, req dto.ExtractRequest) (*dto.ExtractResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	uc.mu.Lock()
	if uc.cancel != nil {
		uc.cancel()
	}
	uc.generation++
	gen := uc.generation
	cctx, cancel := context.WithCancel(ctx)
	uc.cancel = cancel
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		if gen == uc.generation {
			uc.cancel = nil
		}
		uc.mu.Unlock()
		cancel()
	}()

	results := make([]*domain.Address, len(uc.zooms))
	var wg sync.WaitGroup
	for i, zoom := range uc.zooms {
		wg.Add(1)
		go func(i, zoom int) {
			defer wg.Done()
			addr, err := uc.lookup(cctx, req.Lat, req.Lon, zoom)
			if err != nil {
				if cctx.Err() == nil {
					uc.logger.Warn("Zoom lookup failed",
						zap.Int("zoom", zoom), zap.Error(err))
				}
				return
			}
			results[i] = addr
		}(i, zoom)
	}
	wg.Wait()

	uc.mu.Lock()
	superseded := gen != uc.generation
	uc.mu.Unlock()
	if superseded {
		return nil, ErrExtractionSuperseded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Merge in zoom order, most specific first.
	var merged *domain.Address
	for _, addr := range results {
		if addr == nil {
			continue
		}
		if merged == nil {
			clone := *addr
			merged = &clone
			continue
		}
		merged.Merge(*addr)
	}
	if merged == nil {
		return nil, errors.ErrGeocodeUnavailable
	}

	uc.logger.Debug("Extraction complete",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.String("display_name", merged.DisplayName))

	return &dto.ExtractResponse{
		Coordinates: domain.Coordinates{Lat: req.Lat, Lon: req.Lon},
		Address:     *merged,
	}, nil
}

func (uc *ExtractionUseCase) lookup(ctx context.Context, lat, lon float64, zoom int) (*domain.Address, error) {
	if uc.cacheRepo != nil {
		if addr, err := uc.cacheRepo.GetAddress(ctx, lat, lon, zoom); err == nil && addr != nil {
			return addr, nil
		}
	}

	addr, err := uc.geocodeRepo.ReverseGeocode(ctx, lat, lon, zoom)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetAddress(ctx, lat, lon, zoom, addr, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache address", zap.Error(err))
		}
	}

	return addr, nil
}
