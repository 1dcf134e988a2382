package stats

import "github.com/healthboard/healthboard/internal/domain/registry"

// Snapshotter supplies the point-in-time registry state the engine
// aggregates over.
type Snapshotter interface {
	Snapshot() registry.Snapshot
}

// Service binds the pure engine to the live registry.
type Service struct {
	src Snapshotter
}

func NewService(src Snapshotter) *Service {
	return &Service{src: src}
}

func (s *Service) Summary(scope Scope, hospitalID string) Summary {
	return Summarize(scope, hospitalID, s.src.Snapshot())
}

func (s *Service) DiseaseChart(scope Scope, hospitalID string) []ChartPoint {
	return DiseaseChartData(scope, hospitalID, s.src.Snapshot().Diseases)
}

func (s *Service) ResourceStock(scope Scope, hospitalID string) []KindBreakdown {
	return ResourceStockByKind(scope, hospitalID, s.src.Snapshot().Resources)
}

func (s *Service) StaffHeadcount(scope Scope, hospitalID string) []RoleCount {
	return StaffByRole(scope, hospitalID, s.src.Snapshot().Staff)
}

func (s *Service) PatientStatuses(scope Scope, hospitalID string) []StatusCount {
	return PatientsByStatus(scope, hospitalID, s.src.Snapshot().Patients)
}
