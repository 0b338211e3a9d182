package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sipm-be-svc/internal/models"
)

// StorageKey is the name of the blob row holding the resident collection.
// It matches the key used by previous versions of the system so existing
// data remains readable.
const StorageKey = "sipm_premium_v1"

// ResidentRepository defines the interface for resident collection storage.
// The whole collection is read and written as one unit; there are no
// partial updates.
type ResidentRepository interface {
	GetAll() ([]models.Resident, error)
	SaveAll(residents []models.Resident) error
}

// residentRepository implements ResidentRepository over a single
// JSON blob row
type residentRepository struct {
	db  *gorm.DB
	key string
}

// NewResidentRepository creates a new instance of ResidentRepository
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{
		db:  db,
		key: StorageKey,
	}
}

// seedResidents returns the initial collection written on first-ever access
func seedResidents() []models.Resident {
	return []models.Resident{
		{
			ID:            "1",
			NIK:           "3171010101010001",
			Name:          "Budi Santoso",
			Gender:        models.GenderMale,
			DOB:           "1985-05-15",
			Address:       "Jl. Merdeka No. 10",
			RT:            "001",
			Dusun:         "Krajan",
			MaritalStatus: models.MaritalMarried,
			Occupation:    "PNS",
			Status:        models.StatusAlive,
			CreatedAt:     time.Now(),
		},
	}
}

// GetAll retrieves the full resident collection in storage order. When no
// stored collection exists yet, it initializes storage with the seed
// record and returns it.
func (r *residentRepository) GetAll() ([]models.Resident, error) {
	var blob models.DataBlob
	err := r.db.Where("key = ?", r.key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := seedResidents()
		if err := r.SaveAll(seed); err != nil {
			return nil, fmt.Errorf("failed to initialize resident storage: %w", err)
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read resident storage: %w", err)
	}

	var residents []models.Resident
	if err := json.Unmarshal([]byte(blob.Value), &residents); err != nil {
		return nil, fmt.Errorf("failed to decode resident storage: %w", err)
	}

	return residents, nil
}

// SaveAll persists the full resident collection, replacing the stored blob
func (r *residentRepository) SaveAll(residents []models.Resident) error {
	data, err := json.Marshal(residents)
	if err != nil {
		return fmt.Errorf("failed to encode resident collection: %w", err)
	}

	blob := models.DataBlob{
		Key:       r.key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}

	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to write resident storage: %w", err)
	}

	return nil
}
