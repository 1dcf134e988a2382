// Package registry owns the five administrative entity collections of the
// healthboard system: diseases, hospitals, patients, staff and resources.
// It is the sole writer of entity state; every mutation is persisted
// synchronously to its store slot.
package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the registry and its service layer.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("login email already in use")
)

// DefaultEmailDomain is appended to derived hospital login emails.
const DefaultEmailDomain = "saude.gov.ao"

// DefaultHospitalSecret is assigned when a hospital is registered without
// an explicit login secret. Plaintext by documented contract: the system
// has no security boundary.
const DefaultHospitalSecret = "hospital123"

// -- Enumerations --

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

type Classification string

const (
	ClassOutbreak Classification = "outbreak"
	ClassEpidemic Classification = "epidemic"
	ClassPandemic Classification = "pandemic"
	ClassEndemic  Classification = "endemic"
)

func (c Classification) Valid() bool {
	switch c {
	case ClassOutbreak, ClassEpidemic, ClassPandemic, ClassEndemic:
		return true
	}
	return false
}

type OperationalStatus string

const (
	HospitalActive      OperationalStatus = "active"
	HospitalMaintenance OperationalStatus = "maintenance"
	HospitalInactive    OperationalStatus = "inactive"
)

func (s OperationalStatus) Valid() bool {
	switch s {
	case HospitalActive, HospitalMaintenance, HospitalInactive:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

type ClinicalStatus string

const (
	PatientActive    ClinicalStatus = "active"
	PatientRecovered ClinicalStatus = "recovered"
	PatientCritical  ClinicalStatus = "critical"
)

func (s ClinicalStatus) Valid() bool {
	switch s {
	case PatientActive, PatientRecovered, PatientCritical:
		return true
	}
	return false
}

type StaffRole string

const (
	RoleDoctor         StaffRole = "doctor"
	RoleNurse          StaffRole = "nurse"
	RoleTechnician     StaffRole = "technician"
	RoleAdministrative StaffRole = "administrative"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleDoctor, RoleNurse, RoleTechnician, RoleAdministrative:
		return true
	}
	return false
}

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	StaffActive EmploymentStatus = "active"
	StaffBusy   EmploymentStatus = "busy"
	StaffOff    EmploymentStatus = "off"
)

func (s EmploymentStatus) Valid() bool {
	switch s {
	case StaffActive, StaffBusy, StaffOff:
		return true
	}
	return false
}

type ResourceKind string

const (
	KindMedicine  ResourceKind = "medicine"
	KindEquipment ResourceKind = "equipment"
	KindMaterial  ResourceKind = "material"
)

func (k ResourceKind) Valid() bool {
	switch k {
	case KindMedicine, KindEquipment, KindMaterial:
		return true
	}
	return false
}

type StockStatus string

const (
	StockActive   StockStatus = "active"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

func (s StockStatus) Valid() bool {
	switch s {
	case StockActive, StockLow, StockCritical:
		return true
	}
	return false
}

// -- Entities --

// Disease is a tracked disease occurrence, optionally scoped to a hospital.
type Disease struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CaseCount      int            `json:"case_count"`
	Trend          string         `json:"trend"` // signed percentage label, e.g. "+12%"
	Severity       Severity       `json:"severity"`
	Department     string         `json:"department"`
	LastUpdate     string         `json:"last_update"`
	HospitalID     string         `json:"hospital_id,omitempty"`
	Classification Classification `json:"classification"`
	Description    *string        `json:"description,omitempty"`
	Symptoms       []string       `json:"symptoms,omitempty"`
	Treatment      *string        `json:"treatment,omitempty"`
}

func (d *Disease) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: disease name is required", ErrValidation)
	}
	if d.CaseCount < 0 {
		return fmt.Errorf("%w: case count must not be negative", ErrValidation)
	}
	if !d.Severity.Valid() {
		return fmt.Errorf("%w: invalid severity %q", ErrValidation, d.Severity)
	}
	if !d.Classification.Valid() {
		return fmt.Errorf("%w: invalid classification %q", ErrValidation, d.Classification)
	}
	return nil
}

// Hospital is a registered health facility. LoginEmail is unique across all
// hospitals and the static national user directory.
type Hospital struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Province        string            `json:"province"`
	Status          OperationalStatus `json:"status"`
	PatientCount    int               `json:"patient_count"`
	CapacityPercent int               `json:"capacity_percent"`
	Contact         *string           `json:"contact,omitempty"`
	Address         *string           `json:"address,omitempty"`
	Director        *string           `json:"director,omitempty"`
	LoginEmail      string            `json:"login_email"`
	LoginSecret     string            `json:"login_secret"`
}

func (h *Hospital) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("%w: hospital name is required", ErrValidation)
	}
	if !h.Status.Valid() {
		return fmt.Errorf("%w: invalid operational status %q", ErrValidation, h.Status)
	}
	if h.PatientCount < 0 {
		return fmt.Errorf("%w: patient count must not be negative", ErrValidation)
	}
	if h.CapacityPercent < 0 || h.CapacityPercent > 100 {
		return fmt.Errorf("%w: capacity must be between 0 and 100", ErrValidation)
	}
	return nil
}

// Patient is an admitted patient record.
type Patient struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Age           int            `json:"age"`
	Gender        Gender         `json:"gender"`
	DiseaseName   string         `json:"disease_name"`
	Status        ClinicalStatus `json:"status"`
	AdmissionDate string         `json:"admission_date"`
	HospitalID    string         `json:"hospital_id"`
	Department    string         `json:"department"`
}

func (p *Patient) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: patient name is required", ErrValidation)
	}
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrValidation)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("%w: invalid gender %q", ErrValidation, p.Gender)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: invalid clinical status %q", ErrValidation, p.Status)
	}
	return nil
}

// Staff is a hospital staff member.
type Staff struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Role            StaffRole        `json:"role"`
	Department      string           `json:"department"`
	Shift           Shift            `json:"shift"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	Status          EmploymentStatus `json:"status"`
	HospitalID      string           `json:"hospital_id"`
	Specialization  string           `json:"specialization"`
	YearsExperience int              `json:"years_experience"`
}

func (s *Staff) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: staff name is required", ErrValidation)
	}
	if !s.Role.Valid() {
		return fmt.Errorf("%w: invalid staff role %q", ErrValidation, s.Role)
	}
	if !s.Shift.Valid() {
		return fmt.Errorf("%w: invalid shift %q", ErrValidation, s.Shift)
	}
	if !s.Status.Valid() {
		return fmt.Errorf("%w: invalid employment status %q", ErrValidation, s.Status)
	}
	if s.YearsExperience < 0 {
		return fmt.Errorf("%w: years of experience must not be negative", ErrValidation)
	}
	return nil
}

// Resource is a stocked medicine, equipment or material item.
type Resource struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Kind            ResourceKind `json:"kind"`
	Quantity        int          `json:"quantity"`
	Unit            string       `json:"unit"`
	Location        string       `json:"location"`
	Status          StockStatus  `json:"status"`
	HospitalID      string       `json:"hospital_id"`
	MinimumQuantity int          `json:"minimum_quantity"`
	ExpiryDate      *string      `json:"expiry_date,omitempty"`
	Supplier        *string      `json:"supplier,omitempty"`
}

func (r *Resource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: resource name is required", ErrValidation)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: invalid resource kind %q", ErrValidation, r.Kind)
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if r.MinimumQuantity < 0 {
		return fmt.Errorf("%w: minimum quantity must not be negative", ErrValidation)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: invalid stock status %q", ErrValidation, r.Status)
	}
	return nil
}

// -- Partial updates --
//
// Update structs carry only the fields to change; nil fields are left
// untouched. This is the merge contract the dashboard edit dialogs rely on.

type DiseaseUpdate struct {
	Name           *string         `json:"name,omitempty"`
	CaseCount      *int            `json:"case_count,omitempty"`
	Trend          *string         `json:"trend,omitempty"`
	Severity       *Severity       `json:"severity,omitempty"`
	Department     *string         `json:"department,omitempty"`
	LastUpdate     *string         `json:"last_update,omitempty"`
	HospitalID     *string         `json:"hospital_id,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Symptoms       []string        `json:"symptoms,omitempty"`
	Treatment      *string         `json:"treatment,omitempty"`
}

type HospitalUpdate struct {
	Name            *string            `json:"name,omitempty"`
	Province        *string            `json:"province,omitempty"`
	Status          *OperationalStatus `json:"status,omitempty"`
	PatientCount    *int               `json:"patient_count,omitempty"`
	CapacityPercent *int               `json:"capacity_percent,omitempty"`
	Contact         *string            `json:"contact,omitempty"`
	Address         *string            `json:"address,omitempty"`
	Director        *string            `json:"director,omitempty"`
	LoginEmail      *string            `json:"login_email,omitempty"`
	LoginSecret     *string            `json:"login_secret,omitempty"`
}

type PatientUpdate struct {
	Name          *string         `json:"name,omitempty"`
	Age           *int            `json:"age,omitempty"`
	Gender        *Gender         `json:"gender,omitempty"`
	DiseaseName   *string         `json:"disease_name,omitempty"`
	Status        *ClinicalStatus `json:"status,omitempty"`
	AdmissionDate *string         `json:"admission_date,omitempty"`
	HospitalID    *string         `json:"hospital_id,omitempty"`
	Department    *string         `json:"department,omitempty"`
}

type StaffUpdate struct {
	Name            *string           `json:"name,omitempty"`
	Role            *StaffRole        `json:"role,omitempty"`
	Department      *string           `json:"department,omitempty"`
	Shift           *Shift            `json:"shift,omitempty"`
	Phone           *string           `json:"phone,omitempty"`
	Email           *string           `json:"email,omitempty"`
	Status          *EmploymentStatus `json:"status,omitempty"`
	HospitalID      *string           `json:"hospital_id,omitempty"`
	Specialization  *string           `json:"specialization,omitempty"`
	YearsExperience *int              `json:"years_experience,omitempty"`
}

type ResourceUpdate struct {
	Name            *string       `json:"name,omitempty"`
	Kind            *ResourceKind `json:"kind,omitempty"`
	Quantity        *int          `json:"quantity,omitempty"`
	Unit            *string       `json:"unit,omitempty"`
	Location        *string       `json:"location,omitempty"`
	Status          *StockStatus  `json:"status,omitempty"`
	HospitalID      *string       `json:"hospital_id,omitempty"`
	MinimumQuantity *int          `json:"minimum_quantity,omitempty"`
	ExpiryDate      *string       `json:"expiry_date,omitempty"`
	Supplier        *string       `json:"supplier,omitempty"`
}
