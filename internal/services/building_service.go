package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"building-service/internal/metrics"
	"building-service/internal/models"
	"building-service/internal/repository"
)

const maxIDAttempts = 3

// BuildingService implements the building directory on top of a repository.
type BuildingService struct {
	repo    repository.BuildingRepository
	ids     repository.IDGenerator
	events  ChangePublisher
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewBuildingService creates a BuildingService. A nil publisher disables the
// change feed.
func NewBuildingService(repo repository.BuildingRepository, ids repository.IDGenerator, events ChangePublisher, m *metrics.Metrics, logger *zap.Logger) *BuildingService {
	if events == nil {
		events = NopPublisher{}
	}
	s := &BuildingService{
		repo:    repo,
		ids:     ids,
		events:  events,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
	s.metrics.SetRecordCount(repo.Count())
	return s
}

// Match reports whether b matches an already lowercased search term.
// Text fields compare case-insensitively; phone and cccd are digit strings and
// compare as-is.
func Match(b models.Building, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Name), search) ||
		strings.Contains(strings.ToLower(b.Address), search) ||
		strings.Contains(strings.ToLower(b.Representative), search) ||
		strings.Contains(b.Phone, search) ||
		strings.Contains(b.CCCD, search)
}

// Count returns the number of buildings in the directory.
func (s *BuildingService) Count() int {
	return s.repo.Count()
}

// All returns every building in directory order.
func (s *BuildingService) All() []models.Building {
	return s.repo.List()
}

// ChangeFeedStatus reports "disabled" when the publisher cannot be checked,
// otherwise "ok" or "unavailable" together with the check error.
func (s *BuildingService) ChangeFeedStatus(ctx context.Context) (string, error) {
	p, ok := s.events.(Pinger)
	if !ok {
		return "disabled", nil
	}
	if err := p.Ping(ctx); err != nil {
		return "unavailable", err
	}
	return "ok", nil
}

// Filtered returns every building matching search, in directory order.
func (s *BuildingService) Filtered(search string) []models.Building {
	search = strings.ToLower(search)
	matched, _ := s.repo.Filter(func(b models.Building) bool { return Match(b, search) })
	return matched
}

// List filters the directory by the request's search term and returns the
// requested page of the filtered sequence.
func (s *BuildingService) List(req models.PageRequest) models.ListResult {
	started := time.Now()
	matched, total := s.repo.Filter(func(b models.Building) bool { return Match(b, req.Search) })
	lo, hi := req.Bounds(len(matched))

	s.metrics.ObserveOperation("list", "ok", started)
	return models.ListResult{
		Total:         total,
		TotalFiltered: len(matched),
		Page:          matched[lo:hi],
	}
}

// Create validates and stores a new building under a fresh id.
func (s *BuildingService) Create(ctx context.Context, req models.CreateBuildingRequest) (building models.Building, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveOperation("create", outcome(err), started) }()

	if req.Name == "" || req.Address == "" || req.Representative == "" {
		return models.Building{}, newValidationError("Missing required fields: name, address, representative")
	}
	cccdDate, err := NormalizeCCCDDate(req.CCCDDate)
	if err != nil {
		return models.Building{}, err
	}

	building = models.Building{
		Name:           req.Name,
		Address:        req.Address,
		Representative: req.Representative,
		Phone:          req.Phone,
		CCCD:           req.CCCD,
		CCCDDate:       cccdDate,
		Lat:            req.Lat,
		Lng:            req.Lng,
	}
	for attempt := 0; ; attempt++ {
		building.ID = s.ids.NextID()
		err = s.repo.Append(building)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateID) || attempt+1 >= maxIDAttempts {
			return models.Building{}, errors.Wrap(err, "could not store building")
		}
	}

	s.afterMutation(ctx, BuildingCreated, building)
	return building, nil
}

// Update replaces every field of the building identified by req.ID.
func (s *BuildingService) Update(ctx context.Context, req models.UpdateBuildingRequest) (building models.Building, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveOperation("update", outcome(err), started) }()

	if req.ID.IsZero() {
		return models.Building{}, newValidationError("ID is required for update")
	}

	building, err = s.repo.Replace(models.Building{
		ID:             req.ID,
		Name:           req.Name,
		Address:        req.Address,
		Representative: req.Representative,
		Phone:          req.Phone,
		CCCD:           req.CCCD,
		CCCDDate:       req.CCCDDate,
		Lat:            req.Lat,
		Lng:            req.Lng,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return models.Building{}, &NotFoundError{ID: req.ID.String()}
		}
		return models.Building{}, errors.Wrap(err, "could not update building")
	}

	s.afterMutation(ctx, BuildingUpdated, building)
	return building, nil
}

// Delete removes the building whose id, coerced to a number, equals rawID.
func (s *BuildingService) Delete(ctx context.Context, rawID string) (building models.Building, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveOperation("delete", outcome(err), started) }()

	if rawID == "" {
		return models.Building{}, newValidationError("ID is required for deletion")
	}
	id, ok := models.ParseBuildingID(rawID)
	if !ok {
		return models.Building{}, &NotFoundError{ID: rawID}
	}

	building, err = s.repo.Remove(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return models.Building{}, &NotFoundError{ID: rawID}
		}
		return models.Building{}, errors.Wrap(err, "could not delete building")
	}

	s.afterMutation(ctx, BuildingDeleted, building)
	return building, nil
}

// afterMutation refreshes the size gauge and publishes the change. A failed
// publish is logged only; the mutation has already been applied.
func (s *BuildingService) afterMutation(ctx context.Context, eventType EventType, building models.Building) {
	s.metrics.SetRecordCount(s.repo.Count())

	err := s.events.Publish(ctx, BuildingEvent{Type: eventType, Building: building, OccurredAt: s.now()})
	s.metrics.IncrementEvents(string(eventType), err)
	if err != nil {
		s.logger.Warn("Failed to publish building event",
			zap.String("type", string(eventType)),
			zap.Int64("id", int64(building.ID)),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("Building changed",
		zap.String("type", string(eventType)),
		zap.Int64("id", int64(building.ID)),
	)
}
