// Package memstore keeps categories, training centers and athletes in memory
// with the same uniqueness and foreign key rules as the Postgres schema. It
// backs the API when DB_DRIVER=memory and doubles as the store in tests.
package memstore

import (
	"context"
	"strings"
	"sync"

	appErrors "github.com/GCrispino/workout-api/internal/errors"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
)

type Store struct {
	mu sync.RWMutex

	categories []models.Category
	centers    []models.TrainingCenter
	athletes   []models.Athlete
}

func New() *Store {
	return &Store{}
}

func (s *Store) CreateCategory(_ context.Context, name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return nil, appErrors.ErrDuplicateCategory
		}
	}

	category := models.Category{Id: int64(len(s.categories) + 1), Name: name}
	s.categories = append(s.categories, category)
	return &category, nil
}

func (s *Store) GetCategory(_ context.Context, id int64) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.category(id)
	if !ok {
		return nil, appErrors.ErrCategoryNotFound
	}
	return &c, nil
}

func (s *Store) ListCategories(_ context.Context, p pagination.Params) ([]models.Category, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return window(s.categories, p), len(s.categories), nil
}

func (s *Store) CreateTrainingCenter(_ context.Context, center models.TrainingCenter) (*models.TrainingCenter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.centers {
		if c.Name == center.Name {
			return nil, appErrors.ErrDuplicateTrainingCenter
		}
	}

	center.Id = int64(len(s.centers) + 1)
	s.centers = append(s.centers, center)
	return &center, nil
}

func (s *Store) GetTrainingCenter(_ context.Context, id int64) (*models.TrainingCenter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.center(id)
	if !ok {
		return nil, appErrors.ErrTrainingCenterNotFound
	}
	return &c, nil
}

func (s *Store) ListTrainingCenters(_ context.Context, p pagination.Params) ([]models.TrainingCenter, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return window(s.centers, p), len(s.centers), nil
}

func (s *Store) CreateAthlete(_ context.Context, athlete models.Athlete) (*models.AthleteRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.athletes {
		if a.CPF == athlete.CPF {
			return nil, appErrors.ErrDuplicateCPF
		}
	}

	athlete.Id = int64(len(s.athletes) + 1)
	row, ok := s.join(athlete)
	if !ok {
		return nil, appErrors.ErrIntegrity
	}

	s.athletes = append(s.athletes, athlete)
	return &row, nil
}

func (s *Store) ListAthletes(_ context.Context, filter models.AthleteFilter, p pagination.Params) ([]models.AthleteRow, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := strings.ToLower(filter.Name)

	var matched []models.AthleteRow
	for _, a := range s.athletes {
		if name != "" && !strings.Contains(strings.ToLower(a.Name), name) {
			continue
		}
		if filter.CPF != "" && a.CPF != filter.CPF {
			continue
		}

		row, ok := s.join(a)
		if !ok {
			continue
		}
		matched = append(matched, row)
	}

	return window(matched, p), len(matched), nil
}

// join resolves the athlete's foreign keys; ok is false when one of them
// points to a missing row.
func (s *Store) join(a models.Athlete) (models.AthleteRow, bool) {
	category, ok := s.category(a.CategoryId)
	if !ok {
		return models.AthleteRow{}, false
	}
	center, ok := s.center(a.TrainingCenterId)
	if !ok {
		return models.AthleteRow{}, false
	}
	return models.AthleteRow{Athlete: a, Category: category, TrainingCenter: center}, true
}

// ids are sequential, so id-1 is the slice index
func (s *Store) category(id int64) (models.Category, bool) {
	if id < 1 || id > int64(len(s.categories)) {
		return models.Category{}, false
	}
	return s.categories[id-1], true
}

func (s *Store) center(id int64) (models.TrainingCenter, bool) {
	if id < 1 || id > int64(len(s.centers)) {
		return models.TrainingCenter{}, false
	}
	return s.centers[id-1], true
}

func window[T any](items []T, p pagination.Params) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + p.Limit()
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
