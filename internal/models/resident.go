package models

import (
	"time"
)

// Gender represents a resident's gender, stored with its display value
type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
)

// IsValid checks whether the gender is a known value
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// MaritalStatus represents a resident's marital status
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Belum Kawin"
	MaritalMarried  MaritalStatus = "Kawin"
	MaritalDivorced MaritalStatus = "Cerai Hidup"
	MaritalWidowed  MaritalStatus = "Cerai Mati"
)

// IsValid checks whether the marital status is a known value
func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

// ResidentStatus represents whether a resident is alive or deceased
type ResidentStatus string

const (
	StatusAlive    ResidentStatus = "Hidup"
	StatusDeceased ResidentStatus = "Meninggal"
)

// IsValid checks whether the resident status is a known value
func (s ResidentStatus) IsValid() bool {
	return s == StatusAlive || s == StatusDeceased
}

// Resident represents one entry in the village registry.
// JSON field names match the historical persisted payload, so existing
// data written by previous versions of the system can be read back as-is.
type Resident struct {
	ID                  string         `json:"id"`
	NIK                 string         `json:"nik"`
	Name                string         `json:"name"`
	Gender              Gender         `json:"gender"`
	DOB                 string         `json:"dob"`
	Address             string         `json:"address"`
	RT                  string         `json:"rt"`
	Dusun               string         `json:"dusun"`
	MaritalStatus       MaritalStatus  `json:"maritalStatus"`
	Occupation          string         `json:"occupation"`
	Status              ResidentStatus `json:"status"`
	DeathCertificateImg string         `json:"deathCertificateImg,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
}
