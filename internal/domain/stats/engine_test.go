package stats

import (
	"math"
	"testing"

	"github.com/healthboard/healthboard/internal/domain/registry"
)

func seedSnapshot() registry.Snapshot {
	return registry.Snapshot{
		Diseases:  registry.SeedDiseases(),
		Hospitals: registry.SeedHospitals(),
		Patients:  registry.SeedPatients(),
		Staff:     registry.SeedStaff(),
		Resources: registry.SeedResources(),
	}
}

func TestSummarize_National(t *testing.T) {
	snap := seedSnapshot()
	s := Summarize(ScopeNational, "", snap)

	var wantTotal, wantCritical int
	for _, d := range snap.Diseases {
		wantTotal += d.CaseCount
		if d.Severity == registry.SeverityHigh {
			wantCritical += d.CaseCount
		}
	}
	if s.TotalCases != wantTotal {
		t.Errorf("TotalCases = %d, want %d", s.TotalCases, wantTotal)
	}
	if s.CriticalCases != wantCritical {
		t.Errorf("CriticalCases = %d, want %d", s.CriticalCases, wantCritical)
	}
	if s.TotalPatients != len(snap.Patients) {
		t.Errorf("TotalPatients = %d, want %d", s.TotalPatients, len(snap.Patients))
	}
	if s.HospitalCount != len(snap.Hospitals) {
		t.Errorf("HospitalCount = %d, want %d", s.HospitalCount, len(snap.Hospitals))
	}
}

func TestSummarize_HospitalScope(t *testing.T) {
	snap := seedSnapshot()
	s := Summarize(ScopeHospital, "HBG001", snap)

	// HBG001 seed diseases: Malária 32, Dengue 18, Hepatite A 5, Meningite 2.
	if s.TotalCases != 57 {
		t.Errorf("TotalCases = %d, want 57", s.TotalCases)
	}
	// High severity at HBG001: Malária 32 + Meningite 2.
	if s.CriticalCases != 34 {
		t.Errorf("CriticalCases = %d, want 34", s.CriticalCases)
	}
	if s.TotalPatients != 3 {
		t.Errorf("TotalPatients = %d, want 3", s.TotalPatients)
	}
	if s.HospitalCount != 1 {
		t.Errorf("HospitalCount = %d, want 1", s.HospitalCount)
	}
}

// National totals must equal the sum of every hospital-scoped total when all
// records carry a hospital id.
func TestSummarize_Additivity(t *testing.T) {
	snap := seedSnapshot()
	national := Summarize(ScopeNational, "", snap)

	var sum int
	for _, h := range snap.Hospitals {
		sum += Summarize(ScopeHospital, h.ID, snap).TotalCases
	}
	if sum != national.TotalCases {
		t.Errorf("hospital totals sum to %d, national is %d", sum, national.TotalCases)
	}
}

func TestSummarize_UnknownHospitalYieldsZeros(t *testing.T) {
	s := Summarize(ScopeHospital, "H00000000", seedSnapshot())

	if s.TotalCases != 0 || s.CriticalCases != 0 || s.TotalPatients != 0 || s.ActiveCases != 0 || s.CriticalResourceCount != 0 {
		t.Errorf("expected zeros for unknown hospital, got %+v", s)
	}
	if s.HospitalCount != 1 {
		t.Errorf("HospitalCount = %d, want 1", s.HospitalCount)
	}
}

func TestSummarize_EmptySnapshot(t *testing.T) {
	s := Summarize(ScopeNational, "", registry.Snapshot{})
	if s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestDiseaseChartData_GroupsByName(t *testing.T) {
	points := DiseaseChartData(ScopeNational, "", registry.SeedDiseases())

	// Malária appears at three hospitals: 45 + 32 + 28.
	var malaria *ChartPoint
	for i := range points {
		if points[i].Name == "Malária" {
			malaria = &points[i]
			break
		}
	}
	if malaria == nil {
		t.Fatal("Malária missing from chart data")
	}
	if malaria.Value != 105 {
		t.Errorf("Malária value = %d, want 105", malaria.Value)
	}
	// First occurrence (HCL001) supplies the labels.
	if malaria.Trend != "+12%" {
		t.Errorf("Malária trend = %q, want first-seen +12%%", malaria.Trend)
	}

	// Each name appears exactly once.
	seen := map[string]bool{}
	for _, p := range points {
		if seen[p.Name] {
			t.Errorf("duplicate chart entry %q", p.Name)
		}
		seen[p.Name] = true
	}

	// First-occurrence insertion order is preserved.
	if points[0].Name != "Malária" || points[1].Name != "Cólera" {
		t.Errorf("order = [%s, %s, ...], want [Malária, Cólera, ...]", points[0].Name, points[1].Name)
	}
}

func TestDiseaseChartData_HospitalScope(t *testing.T) {
	points := DiseaseChartData(ScopeHospital, "HHB001", registry.SeedDiseases())

	if len(points) != 3 {
		t.Fatalf("expected 3 entries for HHB001, got %d", len(points))
	}
	if points[0].Name != "Malária" || points[0].Value != 28 {
		t.Errorf("got %+v, want Malária 28", points[0])
	}
}

func TestDiseaseChartData_Empty(t *testing.T) {
	points := DiseaseChartData(ScopeNational, "", nil)
	if len(points) != 0 {
		t.Errorf("expected empty result, got %d entries", len(points))
	}
}

func TestSortByValueDesc(t *testing.T) {
	points := []ChartPoint{
		{Name: "A", Value: 5},
		{Name: "B", Value: 20},
		{Name: "C", Value: 5},
		{Name: "D", Value: 11},
	}
	SortByValueDesc(points)

	wantOrder := []string{"B", "D", "A", "C"} // stable: A keeps its place before C
	for i, w := range wantOrder {
		if points[i].Name != w {
			t.Errorf("points[%d] = %s, want %s", i, points[i].Name, w)
		}
	}
}

func TestSharePercent(t *testing.T) {
	if got := SharePercent(25, 100); got != 25 {
		t.Errorf("SharePercent(25, 100) = %v, want 25", got)
	}
	if got := SharePercent(1, 3); math.Abs(got-33.333333) > 0.001 {
		t.Errorf("SharePercent(1, 3) = %v", got)
	}
	if got := SharePercent(5, 0); got != 0 {
		t.Errorf("SharePercent with zero total = %v, want 0", got)
	}
}

func TestResourceStockByKind(t *testing.T) {
	breakdown := ResourceStockByKind(ScopeNational, "", registry.SeedResources())

	if len(breakdown) != 3 {
		t.Fatalf("expected 3 kinds, got %d", len(breakdown))
	}
	order := []registry.ResourceKind{registry.KindMedicine, registry.KindEquipment, registry.KindMaterial}
	var total int
	for i, b := range breakdown {
		if b.Kind != order[i] {
			t.Errorf("breakdown[%d].Kind = %s, want %s", i, b.Kind, order[i])
		}
		if b.Critical > b.Total {
			t.Errorf("%s: critical %d exceeds total %d", b.Kind, b.Critical, b.Total)
		}
		total += b.Total
	}
	if total != len(registry.SeedResources()) {
		t.Errorf("kind totals sum to %d, want %d", total, len(registry.SeedResources()))
	}
}

func TestStaffByRole_HospitalScope(t *testing.T) {
	counts := StaffByRole(ScopeHospital, "HCL001", registry.SeedStaff())

	byRole := map[registry.StaffRole]int{}
	for _, c := range counts {
		byRole[c.Role] = c.Count
	}
	if byRole[registry.RoleDoctor] != 3 {
		t.Errorf("doctors = %d, want 3", byRole[registry.RoleDoctor])
	}
	if byRole[registry.RoleNurse] != 1 {
		t.Errorf("nurses = %d, want 1", byRole[registry.RoleNurse])
	}
}

func TestPatientsByStatus(t *testing.T) {
	counts := PatientsByStatus(ScopeNational, "", registry.SeedPatients())

	var sum int
	for _, c := range counts {
		sum += c.Count
	}
	if sum != len(registry.SeedPatients()) {
		t.Errorf("status counts sum to %d, want %d", sum, len(registry.SeedPatients()))
	}
	if counts[0].Status != registry.PatientActive || counts[0].Count != 6 {
		t.Errorf("active = %+v, want 6", counts[0])
	}
	if counts[2].Status != registry.PatientCritical || counts[2].Count != 2 {
		t.Errorf("critical = %+v, want 2", counts[2])
	}
}
