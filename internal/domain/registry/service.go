package registry

import (
	"fmt"
	"strings"
)

// Service is the validation and orchestration boundary in front of the
// entity repositories. Nothing is mutated when validation fails.
type Service struct {
	diseases  DiseaseRepository
	hospitals HospitalRepository
	patients  PatientRepository
	staff     StaffRepository
	resources ResourceRepository

	// reservedEmails are login emails owned by the static national user
	// directory; hospital login emails must not collide with them.
	reservedEmails map[string]bool
}

func NewService(r *Registry, reservedEmails []string) *Service {
	reserved := make(map[string]bool, len(reservedEmails))
	for _, e := range reservedEmails {
		reserved[strings.ToLower(e)] = true
	}
	return &Service{
		diseases:       r.Diseases(),
		hospitals:      r.Hospitals(),
		patients:       r.Patients(),
		staff:          r.Staff(),
		resources:      r.Resources(),
		reservedEmails: reserved,
	}
}

// DeriveLoginEmail builds a hospital login email from the facility name:
// lowercased, whitespace collapsed to dots, everything else outside
// [a-z0-9.] dropped, at the default domain. "Hospital X" becomes
// "hospital.x@saude.gov.ao".
func DeriveLoginEmail(name string) string {
	local := strings.Join(strings.Fields(strings.ToLower(name)), ".")
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String() + "@" + DefaultEmailDomain
}

// -- Diseases --

func (s *Service) CreateDisease(d Disease) (Disease, error) {
	if err := d.Validate(); err != nil {
		return Disease{}, err
	}
	return s.diseases.Add(d)
}

func (s *Service) UpdateDisease(id string, u DiseaseUpdate) (Disease, error) {
	if u.Name != nil && *u.Name == "" {
		return Disease{}, fmt.Errorf("%w: disease name is required", ErrValidation)
	}
	if u.CaseCount != nil && *u.CaseCount < 0 {
		return Disease{}, fmt.Errorf("%w: case count must not be negative", ErrValidation)
	}
	if u.Severity != nil && !u.Severity.Valid() {
		return Disease{}, fmt.Errorf("%w: invalid severity %q", ErrValidation, *u.Severity)
	}
	if u.Classification != nil && !u.Classification.Valid() {
		return Disease{}, fmt.Errorf("%w: invalid classification %q", ErrValidation, *u.Classification)
	}
	return s.diseases.Update(id, u)
}

func (s *Service) RemoveDisease(id string) error { return s.diseases.Remove(id) }

func (s *Service) DiseasesByHospital(hospitalID string) []Disease {
	return s.diseases.ByHospital(hospitalID)
}

func (s *Service) Diseases() []Disease { return s.diseases.List() }

// -- Hospitals --

// CreateHospital registers a facility. A missing login email is derived
// from the name and a missing login secret gets the fixed default, matching
// how facilities have always been provisioned. The login email must be
// unique across hospitals and the national directory.
func (s *Service) CreateHospital(h Hospital) (Hospital, error) {
	if err := h.Validate(); err != nil {
		return Hospital{}, err
	}
	if h.LoginEmail == "" {
		h.LoginEmail = DeriveLoginEmail(h.Name)
	}
	if h.LoginSecret == "" {
		h.LoginSecret = DefaultHospitalSecret
	}
	if err := s.checkEmailFree(h.LoginEmail, ""); err != nil {
		return Hospital{}, err
	}
	return s.hospitals.Add(h)
}

func (s *Service) UpdateHospital(id string, u HospitalUpdate) (Hospital, error) {
	if u.Name != nil && *u.Name == "" {
		return Hospital{}, fmt.Errorf("%w: hospital name is required", ErrValidation)
	}
	if u.Status != nil && !u.Status.Valid() {
		return Hospital{}, fmt.Errorf("%w: invalid operational status %q", ErrValidation, *u.Status)
	}
	if u.PatientCount != nil && *u.PatientCount < 0 {
		return Hospital{}, fmt.Errorf("%w: patient count must not be negative", ErrValidation)
	}
	if u.CapacityPercent != nil && (*u.CapacityPercent < 0 || *u.CapacityPercent > 100) {
		return Hospital{}, fmt.Errorf("%w: capacity must be between 0 and 100", ErrValidation)
	}
	if u.LoginEmail != nil {
		if *u.LoginEmail == "" {
			return Hospital{}, fmt.Errorf("%w: login email is required", ErrValidation)
		}
		if err := s.checkEmailFree(*u.LoginEmail, id); err != nil {
			return Hospital{}, err
		}
	}
	return s.hospitals.Update(id, u)
}

// RemoveHospital deletes the facility record only; dependent entities keep
// their now-dangling hospital id.
func (s *Service) RemoveHospital(id string) error { return s.hospitals.Remove(id) }

func (s *Service) Hospital(id string) (Hospital, error) { return s.hospitals.Get(id) }

func (s *Service) Hospitals() []Hospital { return s.hospitals.List() }

func (s *Service) checkEmailFree(email, selfID string) error {
	lower := strings.ToLower(email)
	if s.reservedEmails[lower] {
		return fmt.Errorf("%w: %q", ErrEmailTaken, email)
	}
	for _, h := range s.hospitals.List() {
		if h.ID != selfID && strings.EqualFold(h.LoginEmail, email) {
			return fmt.Errorf("%w: %q", ErrEmailTaken, email)
		}
	}
	return nil
}

// -- Patients --

func (s *Service) CreatePatient(p Patient) (Patient, error) {
	if err := p.Validate(); err != nil {
		return Patient{}, err
	}
	return s.patients.Add(p)
}

func (s *Service) UpdatePatient(id string, u PatientUpdate) (Patient, error) {
	if u.Name != nil && *u.Name == "" {
		return Patient{}, fmt.Errorf("%w: patient name is required", ErrValidation)
	}
	if u.Age != nil && *u.Age <= 0 {
		return Patient{}, fmt.Errorf("%w: age must be positive", ErrValidation)
	}
	if u.Gender != nil && !u.Gender.Valid() {
		return Patient{}, fmt.Errorf("%w: invalid gender %q", ErrValidation, *u.Gender)
	}
	if u.Status != nil && !u.Status.Valid() {
		return Patient{}, fmt.Errorf("%w: invalid clinical status %q", ErrValidation, *u.Status)
	}
	return s.patients.Update(id, u)
}

func (s *Service) RemovePatient(id string) error { return s.patients.Remove(id) }

func (s *Service) PatientsByHospital(hospitalID string) []Patient {
	return s.patients.ByHospital(hospitalID)
}

func (s *Service) Patients() []Patient { return s.patients.List() }

// -- Staff --

func (s *Service) CreateStaff(m Staff) (Staff, error) {
	if err := m.Validate(); err != nil {
		return Staff{}, err
	}
	return s.staff.Add(m)
}

func (s *Service) UpdateStaff(id string, u StaffUpdate) (Staff, error) {
	if u.Name != nil && *u.Name == "" {
		return Staff{}, fmt.Errorf("%w: staff name is required", ErrValidation)
	}
	if u.Role != nil && !u.Role.Valid() {
		return Staff{}, fmt.Errorf("%w: invalid staff role %q", ErrValidation, *u.Role)
	}
	if u.Shift != nil && !u.Shift.Valid() {
		return Staff{}, fmt.Errorf("%w: invalid shift %q", ErrValidation, *u.Shift)
	}
	if u.Status != nil && !u.Status.Valid() {
		return Staff{}, fmt.Errorf("%w: invalid employment status %q", ErrValidation, *u.Status)
	}
	if u.YearsExperience != nil && *u.YearsExperience < 0 {
		return Staff{}, fmt.Errorf("%w: years of experience must not be negative", ErrValidation)
	}
	return s.staff.Update(id, u)
}

func (s *Service) RemoveStaff(id string) error { return s.staff.Remove(id) }

func (s *Service) StaffByHospital(hospitalID string) []Staff {
	return s.staff.ByHospital(hospitalID)
}

func (s *Service) StaffMembers() []Staff { return s.staff.List() }

// -- Resources --

func (s *Service) CreateResource(res Resource) (Resource, error) {
	if err := res.Validate(); err != nil {
		return Resource{}, err
	}
	return s.resources.Add(res)
}

func (s *Service) UpdateResource(id string, u ResourceUpdate) (Resource, error) {
	if u.Name != nil && *u.Name == "" {
		return Resource{}, fmt.Errorf("%w: resource name is required", ErrValidation)
	}
	if u.Kind != nil && !u.Kind.Valid() {
		return Resource{}, fmt.Errorf("%w: invalid resource kind %q", ErrValidation, *u.Kind)
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return Resource{}, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if u.MinimumQuantity != nil && *u.MinimumQuantity < 0 {
		return Resource{}, fmt.Errorf("%w: minimum quantity must not be negative", ErrValidation)
	}
	if u.Status != nil && !u.Status.Valid() {
		return Resource{}, fmt.Errorf("%w: invalid stock status %q", ErrValidation, *u.Status)
	}
	return s.resources.Update(id, u)
}

func (s *Service) RemoveResource(id string) error { return s.resources.Remove(id) }

func (s *Service) ResourcesByHospital(hospitalID string) []Resource {
	return s.resources.ByHospital(hospitalID)
}

func (s *Service) Resources() []Resource { return s.resources.List() }
