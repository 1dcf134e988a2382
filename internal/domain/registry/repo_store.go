package registry

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/healthboard/healthboard/internal/platform/store"
)

// Registry is the slot-backed owner of all five entity collections. Each
// collection is an insertion-ordered slice guarded by one RWMutex; every
// mutation persists the owning slot before the in-memory state is swapped
// in, so a failed save leaves the registry unchanged.
type Registry struct {
	st store.Store

	mu        sync.RWMutex
	diseases  []Disease
	hospitals []Hospital
	staff     []Staff
	patients  []Patient
	resources []Resource
}

// Open loads all collections from the store. A slot that has never been
// saved falls back to the fixed seed dataset, which is written back so
// subsequent restarts read identical state. Any other store error aborts.
func Open(st store.Store) (*Registry, error) {
	r := &Registry{st: st}

	if err := loadOrSeed(st, store.SlotDiseases, &r.diseases, SeedDiseases); err != nil {
		return nil, err
	}
	if err := loadOrSeed(st, store.SlotHospitals, &r.hospitals, SeedHospitals); err != nil {
		return nil, err
	}
	if err := loadOrSeed(st, store.SlotPatients, &r.patients, SeedPatients); err != nil {
		return nil, err
	}
	if err := loadOrSeed(st, store.SlotStaff, &r.staff, SeedStaff); err != nil {
		return nil, err
	}
	if err := loadOrSeed(st, store.SlotResources, &r.resources, SeedResources); err != nil {
		return nil, err
	}
	return r, nil
}

func loadOrSeed[T any](st store.Store, slot string, dst *[]T, seed func() []T) error {
	err := st.Load(slot, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrSlotNotFound) {
		return fmt.Errorf("load %s: %w", slot, err)
	}
	*dst = seed()
	if err := st.Save(slot, *dst); err != nil {
		return fmt.Errorf("seed %s: %w", slot, err)
	}
	return nil
}

// Snapshot is a point-in-time copy of every collection, safe to hand to the
// statistics engine without holding the registry lock.
type Snapshot struct {
	Diseases  []Disease
	Hospitals []Hospital
	Patients  []Patient
	Staff     []Staff
	Resources []Resource
}

// Snapshot copies all five collections under the read lock.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Diseases:  append([]Disease(nil), r.diseases...),
		Hospitals: append([]Hospital(nil), r.hospitals...),
		Patients:  append([]Patient(nil), r.patients...),
		Staff:     append([]Staff(nil), r.staff...),
		Resources: append([]Resource(nil), r.resources...),
	}
}

// Accessors returning the per-kind repository views.

func (r *Registry) Diseases() DiseaseRepository   { return diseaseRepo{r} }
func (r *Registry) Hospitals() HospitalRepository { return hospitalRepo{r} }
func (r *Registry) Patients() PatientRepository   { return patientRepo{r} }
func (r *Registry) Staff() StaffRepository        { return staffRepo{r} }
func (r *Registry) Resources() ResourceRepository { return resourceRepo{r} }

func newID() string { return uuid.NewString() }

// newHospitalID builds ids in the style of the seed facilities ("HCL001"):
// an H prefix followed by eight uppercase hex characters.
func newHospitalID() string {
	u := uuid.New()
	return "H" + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// -- Diseases --

type diseaseRepo struct{ r *Registry }

func (dr diseaseRepo) Add(d Disease) (Disease, error) {
	r := dr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = newID()
	next := append(append([]Disease(nil), r.diseases...), d)
	if err := r.st.Save(store.SlotDiseases, next); err != nil {
		return Disease{}, err
	}
	r.diseases = next
	return d, nil
}

func (dr diseaseRepo) Update(id string, u DiseaseUpdate) (Disease, error) {
	r := dr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.diseases {
		if r.diseases[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Disease{}, fmt.Errorf("%w: disease %q", ErrNotFound, id)
	}

	next := append([]Disease(nil), r.diseases...)
	merged := next[idx]
	merged.apply(u)
	next[idx] = merged
	if err := r.st.Save(store.SlotDiseases, next); err != nil {
		return Disease{}, err
	}
	r.diseases = next
	return merged, nil
}

func (dr diseaseRepo) Remove(id string) error {
	r := dr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Disease, 0, len(r.diseases))
	found := false
	for _, d := range r.diseases {
		if d.ID == id {
			found = true
			continue
		}
		next = append(next, d)
	}
	if !found {
		return fmt.Errorf("%w: disease %q", ErrNotFound, id)
	}
	if err := r.st.Save(store.SlotDiseases, next); err != nil {
		return err
	}
	r.diseases = next
	return nil
}

func (dr diseaseRepo) ByHospital(hospitalID string) []Disease {
	r := dr.r
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Disease
	for _, d := range r.diseases {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out
}

func (dr diseaseRepo) List() []Disease {
	r := dr.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Disease(nil), r.diseases...)
}

func (d *Disease) apply(u DiseaseUpdate) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.CaseCount != nil {
		d.CaseCount = *u.CaseCount
	}
	if u.Trend != nil {
		d.Trend = *u.Trend
	}
	if u.Severity != nil {
		d.Severity = *u.Severity
	}
	if u.Department != nil {
		d.Department = *u.Department
	}
	if u.LastUpdate != nil {
		d.LastUpdate = *u.LastUpdate
	}
	if u.HospitalID != nil {
		d.HospitalID = *u.HospitalID
	}
	if u.Classification != nil {
		d.Classification = *u.Classification
	}
	if u.Description != nil {
		d.Description = u.Description
	}
	if u.Symptoms != nil {
		d.Symptoms = append([]string(nil), u.Symptoms...)
	}
	if u.Treatment != nil {
		d.Treatment = u.Treatment
	}
}

// -- Hospitals --

type hospitalRepo struct{ r *Registry }

func (hr hospitalRepo) Add(h Hospital) (Hospital, error) {
	r := hr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	h.ID = newHospitalID()
	next := append(append([]Hospital(nil), r.hospitals...), h)
	if err := r.st.Save(store.SlotHospitals, next); err != nil {
		return Hospital{}, err
	}
	r.hospitals = next
	return h, nil
}

func (hr hospitalRepo) Update(id string, u HospitalUpdate) (Hospital, error) {
	r := hr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.hospitals {
		if r.hospitals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Hospital{}, fmt.Errorf("%w: hospital %q", ErrNotFound, id)
	}

	next := append([]Hospital(nil), r.hospitals...)
	merged := next[idx]
	merged.apply(u)
	next[idx] = merged
	if err := r.st.Save(store.SlotHospitals, next); err != nil {
		return Hospital{}, err
	}
	r.hospitals = next
	return merged, nil
}

// Remove deletes the hospital only. Diseases, patients, staff and resources
// referencing it keep their hospital_id; downstream queries tolerate the
// dangling reference.
func (hr hospitalRepo) Remove(id string) error {
	r := hr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Hospital, 0, len(r.hospitals))
	found := false
	for _, h := range r.hospitals {
		if h.ID == id {
			found = true
			continue
		}
		next = append(next, h)
	}
	if !found {
		return fmt.Errorf("%w: hospital %q", ErrNotFound, id)
	}
	if err := r.st.Save(store.SlotHospitals, next); err != nil {
		return err
	}
	r.hospitals = next
	return nil
}

func (hr hospitalRepo) Get(id string) (Hospital, error) {
	r := hr.r
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hospitals {
		if h.ID == id {
			return h, nil
		}
	}
	return Hospital{}, fmt.Errorf("%w: hospital %q", ErrNotFound, id)
}

func (hr hospitalRepo) List() []Hospital {
	r := hr.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Hospital(nil), r.hospitals...)
}

func (h *Hospital) apply(u HospitalUpdate) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Province != nil {
		h.Province = *u.Province
	}
	if u.Status != nil {
		h.Status = *u.Status
	}
	if u.PatientCount != nil {
		h.PatientCount = *u.PatientCount
	}
	if u.CapacityPercent != nil {
		h.CapacityPercent = *u.CapacityPercent
	}
	if u.Contact != nil {
		h.Contact = u.Contact
	}
	if u.Address != nil {
		h.Address = u.Address
	}
	if u.Director != nil {
		h.Director = u.Director
	}
	if u.LoginEmail != nil {
		h.LoginEmail = *u.LoginEmail
	}
	if u.LoginSecret != nil {
		h.LoginSecret = *u.LoginSecret
	}
}

// -- Patients --

type patientRepo struct{ r *Registry }

func (pr patientRepo) Add(p Patient) (Patient, error) {
	r := pr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = newID()
	next := append(append([]Patient(nil), r.patients...), p)
	if err := r.st.Save(store.SlotPatients, next); err != nil {
		return Patient{}, err
	}
	r.patients = next
	return p, nil
}

func (pr patientRepo) Update(id string, u PatientUpdate) (Patient, error) {
	r := pr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.patients {
		if r.patients[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Patient{}, fmt.Errorf("%w: patient %q", ErrNotFound, id)
	}

	next := append([]Patient(nil), r.patients...)
	merged := next[idx]
	merged.apply(u)
	next[idx] = merged
	if err := r.st.Save(store.SlotPatients, next); err != nil {
		return Patient{}, err
	}
	r.patients = next
	return merged, nil
}

func (pr patientRepo) Remove(id string) error {
	r := pr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Patient, 0, len(r.patients))
	found := false
	for _, p := range r.patients {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return fmt.Errorf("%w: patient %q", ErrNotFound, id)
	}
	if err := r.st.Save(store.SlotPatients, next); err != nil {
		return err
	}
	r.patients = next
	return nil
}

func (pr patientRepo) ByHospital(hospitalID string) []Patient {
	r := pr.r
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Patient
	for _, p := range r.patients {
		if p.HospitalID == hospitalID {
			out = append(out, p)
		}
	}
	return out
}

func (pr patientRepo) List() []Patient {
	r := pr.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Patient(nil), r.patients...)
}

func (p *Patient) apply(u PatientUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.DiseaseName != nil {
		p.DiseaseName = *u.DiseaseName
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.AdmissionDate != nil {
		p.AdmissionDate = *u.AdmissionDate
	}
	if u.HospitalID != nil {
		p.HospitalID = *u.HospitalID
	}
	if u.Department != nil {
		p.Department = *u.Department
	}
}

// -- Staff --

type staffRepo struct{ r *Registry }

func (sr staffRepo) Add(s Staff) (Staff, error) {
	r := sr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = newID()
	next := append(append([]Staff(nil), r.staff...), s)
	if err := r.st.Save(store.SlotStaff, next); err != nil {
		return Staff{}, err
	}
	r.staff = next
	return s, nil
}

func (sr staffRepo) Update(id string, u StaffUpdate) (Staff, error) {
	r := sr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.staff {
		if r.staff[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Staff{}, fmt.Errorf("%w: staff %q", ErrNotFound, id)
	}

	next := append([]Staff(nil), r.staff...)
	merged := next[idx]
	merged.apply(u)
	next[idx] = merged
	if err := r.st.Save(store.SlotStaff, next); err != nil {
		return Staff{}, err
	}
	r.staff = next
	return merged, nil
}

func (sr staffRepo) Remove(id string) error {
	r := sr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Staff, 0, len(r.staff))
	found := false
	for _, s := range r.staff {
		if s.ID == id {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		return fmt.Errorf("%w: staff %q", ErrNotFound, id)
	}
	if err := r.st.Save(store.SlotStaff, next); err != nil {
		return err
	}
	r.staff = next
	return nil
}

func (sr staffRepo) ByHospital(hospitalID string) []Staff {
	r := sr.r
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Staff
	for _, s := range r.staff {
		if s.HospitalID == hospitalID {
			out = append(out, s)
		}
	}
	return out
}

func (sr staffRepo) List() []Staff {
	r := sr.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Staff(nil), r.staff...)
}

func (s *Staff) apply(u StaffUpdate) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Role != nil {
		s.Role = *u.Role
	}
	if u.Department != nil {
		s.Department = *u.Department
	}
	if u.Shift != nil {
		s.Shift = *u.Shift
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.HospitalID != nil {
		s.HospitalID = *u.HospitalID
	}
	if u.Specialization != nil {
		s.Specialization = *u.Specialization
	}
	if u.YearsExperience != nil {
		s.YearsExperience = *u.YearsExperience
	}
}

// -- Resources --

type resourceRepo struct{ r *Registry }

func (rr resourceRepo) Add(res Resource) (Resource, error) {
	r := rr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	res.ID = newID()
	next := append(append([]Resource(nil), r.resources...), res)
	if err := r.st.Save(store.SlotResources, next); err != nil {
		return Resource{}, err
	}
	r.resources = next
	return res, nil
}

func (rr resourceRepo) Update(id string, u ResourceUpdate) (Resource, error) {
	r := rr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.resources {
		if r.resources[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Resource{}, fmt.Errorf("%w: resource %q", ErrNotFound, id)
	}

	next := append([]Resource(nil), r.resources...)
	merged := next[idx]
	merged.apply(u)
	next[idx] = merged
	if err := r.st.Save(store.SlotResources, next); err != nil {
		return Resource{}, err
	}
	r.resources = next
	return merged, nil
}

func (rr resourceRepo) Remove(id string) error {
	r := rr.r
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Resource, 0, len(r.resources))
	found := false
	for _, res := range r.resources {
		if res.ID == id {
			found = true
			continue
		}
		next = append(next, res)
	}
	if !found {
		return fmt.Errorf("%w: resource %q", ErrNotFound, id)
	}
	if err := r.st.Save(store.SlotResources, next); err != nil {
		return err
	}
	r.resources = next
	return nil
}

func (rr resourceRepo) ByHospital(hospitalID string) []Resource {
	r := rr.r
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Resource
	for _, res := range r.resources {
		if res.HospitalID == hospitalID {
			out = append(out, res)
		}
	}
	return out
}

func (rr resourceRepo) List() []Resource {
	r := rr.r
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Resource(nil), r.resources...)
}

func (res *Resource) apply(u ResourceUpdate) {
	if u.Name != nil {
		res.Name = *u.Name
	}
	if u.Kind != nil {
		res.Kind = *u.Kind
	}
	if u.Quantity != nil {
		res.Quantity = *u.Quantity
	}
	if u.Unit != nil {
		res.Unit = *u.Unit
	}
	if u.Location != nil {
		res.Location = *u.Location
	}
	if u.Status != nil {
		res.Status = *u.Status
	}
	if u.HospitalID != nil {
		res.HospitalID = *u.HospitalID
	}
	if u.MinimumQuantity != nil {
		res.MinimumQuantity = *u.MinimumQuantity
	}
	if u.ExpiryDate != nil {
		res.ExpiryDate = u.ExpiryDate
	}
	if u.Supplier != nil {
		res.Supplier = u.Supplier
	}
}
