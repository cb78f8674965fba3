package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/program"

	log "github.com/sirupsen/logrus"
)

type transferRepo interface {
	ListPrograms(ctx context.Context) ([]program.Program, error)
	GetProgram(ctx context.Context, id string) (*program.Program, error)
	GetActivities(ctx context.Context, programID string) ([]program.Activity, error)
	SaveProgram(ctx context.Context, p *program.Program) error
	SaveActivities(ctx context.Context, programID string, activities []program.Activity) error
}

type Service struct {
	repo transferRepo
	now  func() time.Time
}

func NewService(repo transferRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo: repo,
		now:  now,
	}
}

func (s *Service) Export(ctx context.Context, programID string) (_ *Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.transfer.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.repo.GetProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	activities, err := s.repo.GetActivities(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}

	doc := Export(*p, activities, s.now())
	return &doc, nil
}

// Import validates the file and stores it as a new program.
func (s *Service) Import(ctx context.Context, data []byte) (_ *ImportResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.transfer.import")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	result := ValidateProgramExport(data)
	if !result.Success {
		return &result, result.Err()
	}

	existing, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	names := make([]string, 0, len(existing))
	for _, p := range existing {
		names = append(names, p.Name)
	}

	p, activities := PrepareImportedProgram(PrepareParams{
		Program:       *result.Program,
		Activities:    result.Activities,
		ExistingNames: names,
		Now:           s.now(),
	})
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveActivities(ctx, p.ID, activities); err != nil {
		return nil, fmt.Errorf("save activities: %w", err)
	}
	if err := s.repo.SaveProgram(ctx, &p); err != nil {
		return nil, fmt.Errorf("save program: %w", err)
	}
	log.Debugf("imported program [%s] as %q with %d activities", p.ID, p.Name, len(activities))

	return &ImportResult{
		Success:    true,
		Program:    &p,
		Activities: activities,
	}, nil
}
