package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/models/dto"
)

// Health statuses
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// Pinger is a dependency that can report its reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// StudentCounter reports the size of the directory
type StudentCounter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthService reports dependency reachability
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

// healthServiceImpl implements HealthService
type healthServiceImpl struct {
	deps     map[string]Pinger
	students StudentCounter
	logger   zerolog.Logger
}

// NewHealthService creates a new HealthService over named dependencies
func NewHealthService(deps map[string]Pinger, students StudentCounter, logger zerolog.Logger) HealthService {
	return &healthServiceImpl{deps: deps, students: students, logger: logger}
}

// Check implements HealthService. Status is "degraded" when any dependency
// is unreachable.
func (s *healthServiceImpl) Check(ctx context.Context) dto.HealthResponse {
	resp := dto.HealthResponse{Status: HealthStatusOK, Dependencies: make(map[string]bool, len(s.deps))}

	for name, p := range s.deps {
		err := p.Ping(ctx)
		resp.Dependencies[name] = err == nil
		if err != nil {
			s.logger.Warn().Err(err).Str("dependency", name).Msg("Health check failed")
			resp.Status = HealthStatusDegraded
		}
	}

	if s.students != nil {
		n, err := s.students.Count(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Failed to count students")
		}
		resp.StudentCount = n
	}
	return resp
}
