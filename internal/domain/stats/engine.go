// Package stats derives scoped summaries and chart-ready groupings from a
// snapshot of the entity registry. Every function here is pure: same
// snapshot in, same numbers out, no side effects. Presentation code must
// not recompute any of these aggregates on its own.
package stats

import (
	"sort"

	"github.com/healthboard/healthboard/internal/domain/registry"
)

// Scope selects the aggregation universe: one hospital or the whole
// country.
type Scope string

const (
	ScopeHospital Scope = "hospital"
	ScopeNational Scope = "national"
)

// Summary is the headline figure set shown on both dashboards.
type Summary struct {
	TotalCases            int `json:"total_cases"`
	CriticalCases         int `json:"critical_cases"`
	TotalPatients         int `json:"total_patients"`
	ActiveCases           int `json:"active_cases"`
	HospitalCount         int `json:"hospital_count"`
	CriticalResourceCount int `json:"critical_resource_count"`
}

// ChartPoint is one grouped disease entry for chart rendering.
type ChartPoint struct {
	Name           string                  `json:"name"`
	Value          int                     `json:"value"`
	Trend          string                  `json:"trend"`
	Severity       registry.Severity       `json:"severity"`
	Classification registry.Classification `json:"classification"`
}

func scopedDiseases(scope Scope, hospitalID string, diseases []registry.Disease) []registry.Disease {
	if scope != ScopeHospital || hospitalID == "" {
		return diseases
	}
	var out []registry.Disease
	for _, d := range diseases {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out
}

// Summarize computes the scoped headline figures. An unknown hospital id
// yields zeros, never an error. For hospital scope the hospital count is 1.
func Summarize(scope Scope, hospitalID string, snap registry.Snapshot) Summary {
	diseases := scopedDiseases(scope, hospitalID, snap.Diseases)

	var s Summary
	for _, d := range diseases {
		s.TotalCases += d.CaseCount
		if d.Severity == registry.SeverityHigh {
			s.CriticalCases += d.CaseCount
		}
	}

	for _, p := range snap.Patients {
		if scope == ScopeHospital && p.HospitalID != hospitalID {
			continue
		}
		s.TotalPatients++
		if p.Status == registry.PatientActive {
			s.ActiveCases++
		}
	}

	for _, r := range snap.Resources {
		if scope == ScopeHospital && r.HospitalID != hospitalID {
			continue
		}
		if r.Status == registry.StockCritical {
			s.CriticalResourceCount++
		}
	}

	if scope == ScopeNational {
		s.HospitalCount = len(snap.Hospitals)
	} else {
		s.HospitalCount = 1
	}
	return s
}

// DiseaseChartData groups the scoped diseases by name, summing case counts.
// Trend, severity and classification come from the first occurrence of each
// name; conflicting labels on later duplicates are not merged (first-seen
// wins, applied uniformly). Output order is the insertion order of each
// name's first occurrence. Sorting is the caller's concern.
func DiseaseChartData(scope Scope, hospitalID string, diseases []registry.Disease) []ChartPoint {
	scoped := scopedDiseases(scope, hospitalID, diseases)

	index := make(map[string]int, len(scoped))
	out := make([]ChartPoint, 0, len(scoped))
	for _, d := range scoped {
		if i, ok := index[d.Name]; ok {
			out[i].Value += d.CaseCount
			continue
		}
		index[d.Name] = len(out)
		out = append(out, ChartPoint{
			Name:           d.Name,
			Value:          d.CaseCount,
			Trend:          d.Trend,
			Severity:       d.Severity,
			Classification: d.Classification,
		})
	}
	return out
}

// SortByValueDesc orders chart points by value, largest first, keeping the
// grouped order for ties. Call sites that want ranked charts layer this on
// top of DiseaseChartData.
func SortByValueDesc(points []ChartPoint) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Value > points[j].Value })
}

// SharePercent returns value's share of total as a percentage, guarding the
// zero-total case so pie charts never see NaN.
func SharePercent(value, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(value) / float64(total) * 100
}

// KindBreakdown summarizes resource stock for one resource kind.
type KindBreakdown struct {
	Kind     registry.ResourceKind `json:"kind"`
	Total    int                   `json:"total"`
	Critical int                   `json:"critical"`
}

// ResourceStockByKind breaks scoped resources down by kind in the fixed
// order medicine, equipment, material.
func ResourceStockByKind(scope Scope, hospitalID string, resources []registry.Resource) []KindBreakdown {
	kinds := []registry.ResourceKind{registry.KindMedicine, registry.KindEquipment, registry.KindMaterial}
	out := make([]KindBreakdown, len(kinds))
	for i, k := range kinds {
		out[i].Kind = k
	}
	for _, r := range resources {
		if scope == ScopeHospital && r.HospitalID != hospitalID {
			continue
		}
		for i, k := range kinds {
			if r.Kind == k {
				out[i].Total++
				if r.Status == registry.StockCritical {
					out[i].Critical++
				}
			}
		}
	}
	return out
}

// RoleCount is a staff headcount for one role.
type RoleCount struct {
	Role  registry.StaffRole `json:"role"`
	Count int                `json:"count"`
}

// StaffByRole counts scoped staff per role in the fixed order doctor,
// nurse, technician, administrative.
func StaffByRole(scope Scope, hospitalID string, staff []registry.Staff) []RoleCount {
	roles := []registry.StaffRole{registry.RoleDoctor, registry.RoleNurse, registry.RoleTechnician, registry.RoleAdministrative}
	out := make([]RoleCount, len(roles))
	for i, r := range roles {
		out[i].Role = r
	}
	for _, m := range staff {
		if scope == ScopeHospital && m.HospitalID != hospitalID {
			continue
		}
		for i, r := range roles {
			if m.Role == r {
				out[i].Count++
			}
		}
	}
	return out
}

// StatusCount is a patient count for one clinical status.
type StatusCount struct {
	Status registry.ClinicalStatus `json:"status"`
	Count  int                     `json:"count"`
}

// PatientsByStatus counts scoped patients per clinical status in the fixed
// order active, recovered, critical.
func PatientsByStatus(scope Scope, hospitalID string, patients []registry.Patient) []StatusCount {
	statuses := []registry.ClinicalStatus{registry.PatientActive, registry.PatientRecovered, registry.PatientCritical}
	out := make([]StatusCount, len(statuses))
	for i, s := range statuses {
		out[i].Status = s
	}
	for _, p := range patients {
		if scope == ScopeHospital && p.HospitalID != hospitalID {
			continue
		}
		for i, s := range statuses {
			if p.Status == s {
				out[i].Count++
			}
		}
	}
	return out
}
