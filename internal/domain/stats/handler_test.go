package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthboard/healthboard/internal/domain/registry"
	"github.com/healthboard/healthboard/internal/platform/auth"
)

// fixedSnapshot satisfies Snapshotter with the seed dataset.
type fixedSnapshot struct{}

func (fixedSnapshot) Snapshot() registry.Snapshot {
	return registry.Snapshot{
		Diseases:  registry.SeedDiseases(),
		Hospitals: registry.SeedHospitals(),
		Patients:  registry.SeedPatients(),
		Staff:     registry.SeedStaff(),
		Resources: registry.SeedResources(),
	}
}

func newStatsContext(t *testing.T, target, role, hospitalID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", role)
	c.Set("hospital_id", hospitalID)
	return c, rec
}

func TestHandler_Summary_NationalDefault(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, rec := newStatsContext(t, "/api/v1/stats/summary", auth.RoleNational, "")

	if err := h.Summary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var s Summary
	json.Unmarshal(rec.Body.Bytes(), &s)
	if s.HospitalCount != 5 {
		t.Errorf("HospitalCount = %d, want 5", s.HospitalCount)
	}
	if s.TotalPatients != 10 {
		t.Errorf("TotalPatients = %d, want 10", s.TotalPatients)
	}
}

// A hospital principal is always scoped to its own facility, regardless of
// query params.
func TestHandler_Summary_HospitalPrincipalForcedScope(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, rec := newStatsContext(t, "/api/v1/stats/summary?scope=national", auth.RoleHospital, "HBG001")

	if err := h.Summary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var s Summary
	json.Unmarshal(rec.Body.Bytes(), &s)
	if s.TotalCases != 57 {
		t.Errorf("TotalCases = %d, want HBG001-scoped 57", s.TotalCases)
	}
	if s.HospitalCount != 1 {
		t.Errorf("HospitalCount = %d, want 1", s.HospitalCount)
	}
}

func TestHandler_Summary_NationalNarrowsToHospital(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, rec := newStatsContext(t, "/api/v1/stats/summary?scope=hospital&hospital_id=HHB001", auth.RoleNational, "")

	if err := h.Summary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var s Summary
	json.Unmarshal(rec.Body.Bytes(), &s)
	// HHB001: Malária 28 + Pneumonia 14 + Diarreia Aguda 9.
	if s.TotalCases != 51 {
		t.Errorf("TotalCases = %d, want 51", s.TotalCases)
	}
}

func TestHandler_Summary_HospitalScopeNeedsID(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, _ := newStatsContext(t, "/api/v1/stats/summary?scope=hospital", auth.RoleNational, "")

	err := h.Summary(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Summary_BadScope(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, _ := newStatsContext(t, "/api/v1/stats/summary?scope=province", auth.RoleNational, "")

	err := h.Summary(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_DiseaseChart_SortParam(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, rec := newStatsContext(t, "/api/v1/stats/diseases?sort=value", auth.RoleNational, "")

	if err := h.DiseaseChart(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var points []ChartPoint
	json.Unmarshal(rec.Body.Bytes(), &points)
	if len(points) == 0 {
		t.Fatal("expected chart points")
	}
	for i := 1; i < len(points); i++ {
		if points[i].Value > points[i-1].Value {
			t.Errorf("not sorted desc at %d: %d > %d", i, points[i].Value, points[i-1].Value)
		}
	}
	if points[0].Name != "Malária" || points[0].Value != 105 {
		t.Errorf("top entry = %+v, want Malária 105", points[0])
	}
}

func TestHandler_DiseaseChart_DefaultOrder(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, rec := newStatsContext(t, "/api/v1/stats/diseases", auth.RoleHospital, "HHB001")

	if err := h.DiseaseChart(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var points []ChartPoint
	json.Unmarshal(rec.Body.Bytes(), &points)
	want := []string{"Malária", "Pneumonia", "Diarreia Aguda"}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i, w := range want {
		if points[i].Name != w {
			t.Errorf("points[%d] = %s, want %s", i, points[i].Name, w)
		}
	}
}

func TestHandler_ResourceStock(t *testing.T) {
	h := NewHandler(NewService(fixedSnapshot{}))
	c, rec := newStatsContext(t, "/api/v1/stats/resources", auth.RoleNational, "")

	if err := h.ResourceStock(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var breakdown []KindBreakdown
	json.Unmarshal(rec.Body.Bytes(), &breakdown)
	if len(breakdown) != 3 {
		t.Errorf("expected 3 kinds, got %d", len(breakdown))
	}
}
