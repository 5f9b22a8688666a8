package entity

// DoctorFilter is a domain-level filter for querying the doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Name           string // Filter by doctor name (ILIKE)
	Specialization string // Filter by specialization (ILIKE)
}
