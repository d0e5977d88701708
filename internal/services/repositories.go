package services

import (
	"errors"
	"time"

	"github.com/freegoat/admin-dashboard/internal/logger"
	"github.com/freegoat/admin-dashboard/internal/models"
	"github.com/freegoat/admin-dashboard/internal/store"
)

// Source count increments per refresh kind. A targeted refresh does a deeper
// scan than the bulk sweep, hence the larger step.
const (
	refreshOneIncrement = 5
	refreshAllIncrement = 3
)

// ErrRepositoryNotFound is returned when an operation targets an id no
// repository has.
var ErrRepositoryNotFound = errors.New("repository not found")

// RepositoryService manages the repository collection. Repositories are kept
// in creation order and mutated by refreshes and active-flag toggles.
type RepositoryService struct {
	store *store.Store[models.Repository]
	log   logger.Logger
}

// NewRepositoryService creates a service seeded with the sample data.
func NewRepositoryService(log logger.Logger) *RepositoryService {
	return &RepositoryService{
		store: store.New(repositoryID, models.SeedRepositories(time.Now())),
		log:   log,
	}
}

func repositoryID(r models.Repository) string { return r.ID }

// Add builds a repository from the request and appends it to the collection.
// New repositories start active with a zero source count.
func (s *RepositoryService) Add(req models.AddRepositoryRequest) models.Repository {
	r := models.Repository{
		ID:          s.store.NextID(),
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		IsActive:    true,
		SourceCount: 0,
		LastUpdated: time.Now(),
	}
	s.store.InsertBack(r)

	s.log.Info("Repository added",
		logger.String("repository_id", r.ID),
		logger.String("name", r.Name),
	)
	return r
}

// List returns the repositories in creation order.
func (s *RepositoryService) List() []models.Repository {
	return s.store.List()
}

// Stats aggregates the collection.
func (s *RepositoryService) Stats() models.RepositoryStats {
	return models.RepositoryStats{
		Total:  s.store.Len(),
		Active: s.store.Count(func(r models.Repository) bool { return r.IsActive }),
	}
}

// RefreshOne refreshes a single repository regardless of its active flag.
// Returns ErrRepositoryNotFound when the id is absent.
func (s *RepositoryService) RefreshOne(id string) error {
	ok := s.store.Update(id, func(r *models.Repository) {
		r.SourceCount += refreshOneIncrement
		r.LastUpdated = time.Now()
	})
	if !ok {
		return ErrRepositoryNotFound
	}

	s.log.Info("Repository refreshed", logger.String("repository_id", id))
	return nil
}

// RefreshAll refreshes every active repository; inactive ones are untouched.
func (s *RepositoryService) RefreshAll() {
	now := time.Now()
	s.store.UpdateAll(func(r *models.Repository) {
		if !r.IsActive {
			return
		}
		r.SourceCount += refreshAllIncrement
		r.LastUpdated = now
	})

	s.log.Info("All active repositories refreshed")
}

// SetActive sets the active flag and touches LastUpdated. Callers that parsed
// a body without the isActive field pass provided=false, which leaves the
// record entirely unchanged while still reporting success for an existing id.
func (s *RepositoryService) SetActive(id string, isActive, provided bool) error {
	ok := s.store.Update(id, func(r *models.Repository) {
		if !provided {
			return
		}
		r.IsActive = isActive
		r.LastUpdated = time.Now()
	})
	if !ok {
		return ErrRepositoryNotFound
	}

	s.log.Info("Repository updated",
		logger.String("repository_id", id),
		logger.Bool("is_active", isActive),
	)
	return nil
}

// Delete removes the repository with the given id, idempotently.
func (s *RepositoryService) Delete(id string) {
	removed := s.store.Delete(id)
	s.log.Info("Repository deleted",
		logger.String("repository_id", id),
		logger.Int("removed", removed),
	)
}
