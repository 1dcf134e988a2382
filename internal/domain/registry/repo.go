package registry

// Per-kind repository interfaces. The slot-backed Registry implements all
// five; services and tests depend on the interfaces.
//
// Add assigns a fresh id, appends the entity and persists the collection.
// Update merges the non-nil fields of the update into the matching entity
// and persists; an unknown id is an error, not a silent no-op. Remove
// deletes by id without cascading to dependents. ByHospital filters by
// hospital id in insertion order. List returns the whole collection in
// insertion order.

type DiseaseRepository interface {
	Add(d Disease) (Disease, error)
	Update(id string, u DiseaseUpdate) (Disease, error)
	Remove(id string) error
	ByHospital(hospitalID string) []Disease
	List() []Disease
}

type HospitalRepository interface {
	Add(h Hospital) (Hospital, error)
	Update(id string, u HospitalUpdate) (Hospital, error)
	Remove(id string) error
	Get(id string) (Hospital, error)
	List() []Hospital
}

type PatientRepository interface {
	Add(p Patient) (Patient, error)
	Update(id string, u PatientUpdate) (Patient, error)
	Remove(id string) error
	ByHospital(hospitalID string) []Patient
	List() []Patient
}

type StaffRepository interface {
	Add(s Staff) (Staff, error)
	Update(id string, u StaffUpdate) (Staff, error)
	Remove(id string) error
	ByHospital(hospitalID string) []Staff
	List() []Staff
}

type ResourceRepository interface {
	Add(r Resource) (Resource, error)
	Update(id string, u ResourceUpdate) (Resource, error)
	Remove(id string) error
	ByHospital(hospitalID string) []Resource
	List() []Resource
}
