package garage

import (
	"context"
	"errors"
	"fmt"

	"github.com/garagehub/backend/internal/domain/garage"
	"github.com/garagehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GarageService handles garage-related business operations
type GarageService struct {
	garageRepo garage.GarageRepository
	eventBus   shared.EventPublisher
	logger     *zap.Logger
}

// NewGarageService creates a new GarageService
func NewGarageService(garageRepo garage.GarageRepository, eventBus shared.EventPublisher, logger *zap.Logger) *GarageService {
	return &GarageService{
		garageRepo: garageRepo,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Create creates a new garage
func (s *GarageService) Create(ctx context.Context, req CreateGarageRequest) (*GarageResponse, error) {
	g, err := garage.NewGarage(req.Name, req.Address, req.Telephone, req.Email)
	if err != nil {
		return nil, err
	}

	if len(req.OpeningTimes) > 0 {
		times, err := toOpeningTimes(req.OpeningTimes)
		if err != nil {
			return nil, err
		}
		if err := g.ReplaceOpeningTimes(times); err != nil {
			return nil, err
		}
	}

	if err := s.garageRepo.Save(ctx, g); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, g.GetDomainEvents())
	g.ClearDomainEvents()

	response := ToGarageResponse(g)
	return &response, nil
}

// GetByID retrieves a garage by ID
func (s *GarageService) GetByID(ctx context.Context, garageID uuid.UUID) (*GarageResponse, error) {
	g, err := s.garageRepo.FindByID(ctx, garageID)
	if err != nil {
		return nil, wrapGarageNotFound(err, garageID)
	}

	response := ToGarageResponse(g)
	return &response, nil
}

// List retrieves garages with pagination
func (s *GarageService) List(ctx context.Context, filter GarageListFilter) (*shared.Paginated[GarageResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}

	garages, err := s.garageRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	total, err := s.garageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToGarageResponses(garages), total, f.Page, f.PageSize)
	return &result, nil
}

// Update updates a garage's contact fields, and replaces its opening times
// when the request carries a new set
func (s *GarageService) Update(ctx context.Context, garageID uuid.UUID, req UpdateGarageRequest) (*GarageResponse, error) {
	g, err := s.garageRepo.FindByID(ctx, garageID)
	if err != nil {
		return nil, wrapGarageNotFound(err, garageID)
	}

	if err := g.Update(req.Name, req.Address, req.Telephone, req.Email); err != nil {
		return nil, err
	}

	if req.OpeningTimes != nil {
		times, err := toOpeningTimes(*req.OpeningTimes)
		if err != nil {
			return nil, err
		}
		if err := g.ReplaceOpeningTimes(times); err != nil {
			return nil, err
		}
	}

	if err := s.garageRepo.Save(ctx, g); err != nil {
		return nil, err
	}

	response := ToGarageResponse(g)
	return &response, nil
}

// Delete deletes a garage together with its vehicles, their accessories,
// and its opening times
func (s *GarageService) Delete(ctx context.Context, garageID uuid.UUID) error {
	if err := s.garageRepo.Delete(ctx, garageID); err != nil {
		return wrapGarageNotFound(err, garageID)
	}
	return nil
}

// Search finds garages matching any of the given criteria. Results from the
// individual criteria are unioned and deduplicated. At least one criterion
// must be set.
func (s *GarageService) Search(ctx context.Context, criteria SearchCriteria) ([]GarageResponse, error) {
	if criteria.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one search criterion must be provided")
	}

	seen := make(map[uuid.UUID]struct{})
	var matches []garage.Garage

	collect := func(garages []garage.Garage) {
		for _, g := range garages {
			if _, ok := seen[g.ID]; ok {
				continue
			}
			seen[g.ID] = struct{}{}
			matches = append(matches, g)
		}
	}

	if criteria.Name != "" {
		garages, err := s.garageRepo.FindByNameContaining(ctx, criteria.Name)
		if err != nil {
			return nil, err
		}
		collect(garages)
	}

	if criteria.Model != "" {
		garages, err := s.garageRepo.FindByVehicleModel(ctx, criteria.Model)
		if err != nil {
			return nil, err
		}
		collect(garages)
	}

	if criteria.FuelType != "" {
		fuelType, err := garage.NormalizeFuelType(garage.FuelType(criteria.FuelType))
		if err != nil {
			return nil, err
		}
		garages, err := s.garageRepo.FindByVehicleFuelType(ctx, fuelType)
		if err != nil {
			return nil, err
		}
		collect(garages)
	}

	if criteria.AccessoryName != "" {
		garages, err := s.garageRepo.FindByAccessoryName(ctx, criteria.AccessoryName)
		if err != nil {
			return nil, err
		}
		collect(garages)
	}

	return ToGarageResponses(matches), nil
}

// publishEvents delivers domain events best-effort. A failing handler is
// logged and never fails the triggering operation.
func (s *GarageService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventBus == nil || len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish domain events", zap.Error(err))
	}
}

func wrapGarageNotFound(err error, garageID uuid.UUID) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Garage not found with ID: %s", garageID))
	}
	return err
}
