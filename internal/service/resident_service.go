package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/repository"
	"sipm-be-svc/pkg/logger"
)

// ResidentInput carries the caller-supplied fields of a new resident
type ResidentInput struct {
	NIK                 string                `json:"nik"`
	Name                string                `json:"name"`
	Gender              models.Gender         `json:"gender"`
	DOB                 string                `json:"dob"`
	Address             string                `json:"address"`
	RT                  string                `json:"rt"`
	Dusun               string                `json:"dusun"`
	MaritalStatus       models.MaritalStatus  `json:"maritalStatus"`
	Occupation          string                `json:"occupation"`
	Status              models.ResidentStatus `json:"status"`
	DeathCertificateImg string                `json:"deathCertificateImg"`
}

// ResidentUpdateInput carries a partial update; nil fields are left
// untouched. The id and creation timestamp can never be changed.
type ResidentUpdateInput struct {
	NIK                 *string                `json:"nik"`
	Name                *string                `json:"name"`
	Gender              *models.Gender         `json:"gender"`
	DOB                 *string                `json:"dob"`
	Address             *string                `json:"address"`
	RT                  *string                `json:"rt"`
	Dusun               *string                `json:"dusun"`
	MaritalStatus       *models.MaritalStatus  `json:"maritalStatus"`
	Occupation          *string                `json:"occupation"`
	Status              *models.ResidentStatus `json:"status"`
	DeathCertificateImg *string                `json:"deathCertificateImg"`
}

// ResidentService defines the interface for resident registry operations.
// It is the sole owner of the persisted collection and enforces NIK
// uniqueness and record completeness on every mutation.
type ResidentService interface {
	ListResidents(search string) ([]models.Resident, error)
	GetResidentByID(id string) (*models.Resident, error)
	NikExists(nik string, excludeID string) (bool, error)
	CreateResident(input ResidentInput) (*models.Resident, error)
	UpdateResident(id string, input ResidentUpdateInput) (*models.Resident, error)
	DeleteResident(id string) error
}

// residentService implements ResidentService
type residentService struct {
	residentRepo repository.ResidentRepository
	logger       *logger.Logger
}

// NewResidentService creates a new resident service
func NewResidentService(residentRepo repository.ResidentRepository, logger *logger.Logger) ResidentService {
	return &residentService{
		residentRepo: residentRepo,
		logger:       logger,
	}
}

// ListResidents returns the collection in storage order. A non-empty
// search keeps residents whose name (case-insensitively) or NIK contains
// the term.
func (s *residentService) ListResidents(search string) ([]models.Resident, error) {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load residents")
		return nil, err
	}

	if search == "" {
		return residents, nil
	}

	term := strings.ToLower(search)
	var matched []models.Resident
	for _, r := range residents {
		if strings.Contains(strings.ToLower(r.Name), term) || strings.Contains(r.NIK, search) {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

// GetResidentByID returns one resident or ErrResidentNotFound
func (s *residentService) GetResidentByID(id string) (*models.Resident, error) {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		return nil, err
	}

	for i := range residents {
		if residents[i].ID == id {
			return &residents[i], nil
		}
	}

	return nil, ErrResidentNotFound
}

// NikExists reports whether any resident other than excludeID carries the
// exact NIK
func (s *residentService) NikExists(nik string, excludeID string) (bool, error) {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		return false, err
	}

	for _, r := range residents {
		if r.NIK == nik && r.ID != excludeID {
			return true, nil
		}
	}

	return false, nil
}

// CreateResident validates the candidate, enforces NIK uniqueness, assigns
// id and creation timestamp, and persists the grown collection
func (s *residentService) CreateResident(input ResidentInput) (*models.Resident, error) {
	resident := models.Resident{
		NIK:                 input.NIK,
		Name:                input.Name,
		Gender:              input.Gender,
		DOB:                 input.DOB,
		Address:             input.Address,
		RT:                  input.RT,
		Dusun:               input.Dusun,
		MaritalStatus:       input.MaritalStatus,
		Occupation:          input.Occupation,
		Status:              input.Status,
		DeathCertificateImg: input.DeathCertificateImg,
	}

	if err := validateResident(&resident); err != nil {
		s.logger.WithError(err).WithField("nik", input.NIK).Warn("Resident rejected by validation")
		return nil, err
	}

	residents, err := s.residentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load residents")
		return nil, err
	}

	for _, r := range residents {
		if r.NIK == resident.NIK {
			s.logger.WithField("nik", resident.NIK).Warn("Duplicate NIK on create")
			return nil, ErrNIKExists
		}
	}

	resident.ID = uuid.New().String()
	resident.CreatedAt = time.Now()

	residents = append(residents, resident)
	if err := s.residentRepo.SaveAll(residents); err != nil {
		s.logger.WithError(err).Error("Failed to persist residents")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":  resident.ID,
		"nik": resident.NIK,
	}).Info("Resident created successfully")

	return &resident, nil
}

// UpdateResident merges the partial input over the stored record,
// re-checks NIK uniqueness against all other records, re-validates the
// merged record, and persists the collection
func (s *residentService) UpdateResident(id string, input ResidentUpdateInput) (*models.Resident, error) {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load residents")
		return nil, err
	}

	if input.NIK != nil {
		for _, r := range residents {
			if r.NIK == *input.NIK && r.ID != id {
				s.logger.WithField("nik", *input.NIK).Warn("Duplicate NIK on update")
				return nil, ErrNIKExists
			}
		}
	}

	index := -1
	for i := range residents {
		if residents[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrResidentNotFound
	}

	merged := residents[index]
	applyUpdate(&merged, input)

	if err := validateResident(&merged); err != nil {
		s.logger.WithError(err).WithField("id", id).Warn("Resident update rejected by validation")
		return nil, err
	}

	residents[index] = merged
	if err := s.residentRepo.SaveAll(residents); err != nil {
		s.logger.WithError(err).Error("Failed to persist residents")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Resident updated successfully")

	return &residents[index], nil
}

// DeleteResident removes the record if present. A missing id is a no-op.
func (s *residentService) DeleteResident(id string) error {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load residents")
		return err
	}

	filtered := residents[:0:0]
	for _, r := range residents {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}

	if err := s.residentRepo.SaveAll(filtered); err != nil {
		s.logger.WithError(err).Error("Failed to persist residents")
		return err
	}

	s.logger.WithField("id", id).Info("Resident deleted")

	return nil
}

// applyUpdate copies non-nil fields of the input onto the resident.
// ID and CreatedAt are deliberately not part of the input type.
func applyUpdate(r *models.Resident, input ResidentUpdateInput) {
	if input.NIK != nil {
		r.NIK = *input.NIK
	}
	if input.Name != nil {
		r.Name = *input.Name
	}
	if input.Gender != nil {
		r.Gender = *input.Gender
	}
	if input.DOB != nil {
		r.DOB = *input.DOB
	}
	if input.Address != nil {
		r.Address = *input.Address
	}
	if input.RT != nil {
		r.RT = *input.RT
	}
	if input.Dusun != nil {
		r.Dusun = *input.Dusun
	}
	if input.MaritalStatus != nil {
		r.MaritalStatus = *input.MaritalStatus
	}
	if input.Occupation != nil {
		r.Occupation = *input.Occupation
	}
	if input.Status != nil {
		r.Status = *input.Status
	}
	if input.DeathCertificateImg != nil {
		r.DeathCertificateImg = *input.DeathCertificateImg
	}
}

// validateResident rejects malformed or incomplete records before they
// reach storage. The deceased/certificate rule is enforced here so no
// caller can bypass it.
func validateResident(r *models.Resident) error {
	if len(r.NIK) != 16 {
		return newValidationError("nik", "NIK harus 16 digit.")
	}
	if strings.TrimSpace(r.Name) == "" {
		return newValidationError("name", "Nama wajib diisi.")
	}
	if !r.Gender.IsValid() {
		return newValidationError("gender", "Jenis kelamin tidak valid.")
	}
	if strings.TrimSpace(r.DOB) == "" {
		return newValidationError("dob", "Tanggal lahir wajib diisi.")
	}
	if _, err := time.Parse("2006-01-02", r.DOB); err != nil {
		return newValidationError("dob", "Format tanggal lahir harus YYYY-MM-DD.")
	}
	if strings.TrimSpace(r.Address) == "" {
		return newValidationError("address", "Alamat wajib diisi.")
	}
	if strings.TrimSpace(r.RT) == "" {
		return newValidationError("rt", "RT wajib diisi.")
	}
	if strings.TrimSpace(r.Dusun) == "" {
		return newValidationError("dusun", "Dusun wajib diisi.")
	}
	if !r.MaritalStatus.IsValid() {
		return newValidationError("maritalStatus", "Status perkawinan tidak valid.")
	}
	if !r.Status.IsValid() {
		return newValidationError("status", "Status penduduk tidak valid.")
	}
	if r.Status == models.StatusDeceased && r.DeathCertificateImg == "" {
		return newValidationError("deathCertificateImg", "Bukti foto surat kematian wajib diunggah untuk status Meninggal.")
	}
	return nil
}
