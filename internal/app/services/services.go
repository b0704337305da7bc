package services

import (
	"time"

	"github.com/yigit/studentregistry/internal/app/repositories"
	"github.com/yigit/studentregistry/internal/pkg/cache"
)

// Services defined in this package:
// - StudentService: student listing, creation and enrollment stats
// - DepartmentService: department catalog
// - ProgramService: program catalog filtered by department
type Services struct {
	StudentService    *StudentService
	DepartmentService *DepartmentService
	ProgramService    *ProgramService
}

// NewServices wires the services over repos. Catalog listings are cached in c for ttl;
// pass cache.Nop{} to disable caching.
func NewServices(repos *repositories.Repositories, c cache.Cache, ttl time.Duration) *Services {
	if c == nil {
		c = cache.Nop{}
	}

	return &Services{
		StudentService:    NewStudentService(repos.StudentRepository, repos.DepartmentRepository, repos.ProgramRepository),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, c, ttl),
		ProgramService:    NewProgramService(repos.ProgramRepository, c, ttl),
	}
}
