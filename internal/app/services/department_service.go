package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/app/repositories"
	"github.com/yigit/studentregistry/internal/pkg/cache"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo repositories.DepartmentRepository
	cache          cache.Cache
	ttl            time.Duration
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.DepartmentRepository, c cache.Cache, ttl time.Duration) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		cache:          c,
		ttl:            ttl,
	}
}

// GetAllDepartments retrieves all departments ordered by id
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return cachedList(ctx, s.cache, cache.PrefixDepartments+"all", s.ttl, func() ([]*models.Department, error) {
		departments, err := s.departmentRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error retrieving departments: %w", err)
		}
		return departments, nil
	})
}
