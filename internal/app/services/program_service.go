package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/app/repositories"
	"github.com/yigit/studentregistry/internal/pkg/cache"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// ProgramService handles program-related operations
type ProgramService struct {
	programRepo repositories.ProgramRepository
	cache       cache.Cache
	ttl         time.Duration
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo repositories.ProgramRepository, c cache.Cache, ttl time.Duration) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		cache:       c,
		ttl:         ttl,
	}
}

// ListPrograms returns programs filtered by the raw department_id value. A value
// holding a non-numeric token yields an empty list rather than an error.
func (s *ProgramService) ListPrograms(ctx context.Context, rawDepartmentIDs string) ([]*models.Program, error) {
	f := filter.ParseProgramFilter(rawDepartmentIDs)
	if f.MatchesNothing() {
		logger.Debug().Str("department_id", rawDepartmentIDs).Msg("Program filter cannot match, returning empty list")
		return []*models.Program{}, nil
	}

	return cachedList(ctx, s.cache, cache.PrefixPrograms+f.CacheKey(), s.ttl, func() ([]*models.Program, error) {
		programs, err := s.programRepo.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("error retrieving programs: %w", err)
		}
		return programs, nil
	})
}
