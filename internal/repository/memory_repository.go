package repository

import (
	"sipm-be-svc/internal/models"
)

// memoryResidentRepository implements ResidentRepository in memory.
// Used by tests to exercise the registry without a database.
type memoryResidentRepository struct {
	residents []models.Resident
	seeded    bool
}

// NewMemoryResidentRepository creates an in-memory ResidentRepository.
// Like the database-backed implementation, it seeds the initial record on
// first access when starting empty.
func NewMemoryResidentRepository(initial ...models.Resident) ResidentRepository {
	return &memoryResidentRepository{
		residents: initial,
		seeded:    len(initial) > 0,
	}
}

func (r *memoryResidentRepository) GetAll() ([]models.Resident, error) {
	if !r.seeded {
		r.residents = seedResidents()
		r.seeded = true
	}
	out := make([]models.Resident, len(r.residents))
	copy(out, r.residents)
	return out, nil
}

func (r *memoryResidentRepository) SaveAll(residents []models.Resident) error {
	r.residents = make([]models.Resident, len(residents))
	copy(r.residents, residents)
	r.seeded = true
	return nil
}
