package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/repository"
	"sipm-be-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

func emptyRepo(t *testing.T) repository.ResidentRepository {
	t.Helper()
	repo := repository.NewMemoryResidentRepository()
	require.NoError(t, repo.SaveAll([]models.Resident{}))
	return repo
}

func aliveInput(nik, name string) ResidentInput {
	return ResidentInput{
		NIK:           nik,
		Name:          name,
		Gender:        models.GenderMale,
		DOB:           "1990-01-01",
		Address:       "Jl. Merdeka No. 10",
		RT:            "001",
		Dusun:         "Krajan",
		MaritalStatus: models.MaritalSingle,
		Occupation:    "Petani",
		Status:        models.StatusAlive,
	}
}

func TestListResidentsSeedsOnFirstAccess(t *testing.T) {
	svc := NewResidentService(repository.NewMemoryResidentRepository(), testLogger())

	residents, err := svc.ListResidents("")
	require.NoError(t, err)
	require.Len(t, residents, 1)
	assert.Equal(t, "3171010101010001", residents[0].NIK)
	assert.Equal(t, "Budi Santoso", residents[0].Name)
}

func TestCreateResidentRoundTrip(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	input := aliveInput("3201012345678901", "Siti Aminah")
	input.Gender = models.GenderFemale
	created, err := svc.CreateResident(input)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetResidentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, input.NIK, got.NIK)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Gender, got.Gender)
	assert.Equal(t, input.DOB, got.DOB)
	assert.Equal(t, input.Address, got.Address)
	assert.Equal(t, input.RT, got.RT)
	assert.Equal(t, input.Dusun, got.Dusun)
	assert.Equal(t, input.MaritalStatus, got.MaritalStatus)
	assert.Equal(t, input.Occupation, got.Occupation)
	assert.Equal(t, input.Status, got.Status)
}

func TestCreateResidentDuplicateNIK(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	_, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)

	_, err = svc.CreateResident(aliveInput("3201012345678901", "Joko Susilo"))
	require.ErrorIs(t, err, ErrNIKExists)

	// Collection unchanged by the failed create
	residents, err := svc.ListResidents("")
	require.NoError(t, err)
	assert.Len(t, residents, 1)
	assert.Equal(t, "Siti Aminah", residents[0].Name)
}

func TestCreateResidentValidation(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	shortNIK := aliveInput("12345", "Siti Aminah")
	_, err := svc.CreateResident(shortNIK)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	noName := aliveInput("3201012345678901", "  ")
	_, err = svc.CreateResident(noName)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	badDOB := aliveInput("3201012345678901", "Siti Aminah")
	badDOB.DOB = "15-05-1985"
	_, err = svc.CreateResident(badDOB)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCreateDeceasedWithoutCertificateRejected(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	input := aliveInput("3201012345678901", "Siti Aminah")
	input.Status = models.StatusDeceased
	_, err := svc.CreateResident(input)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Nothing was persisted
	residents, err := svc.ListResidents("")
	require.NoError(t, err)
	assert.Empty(t, residents)

	input.DeathCertificateImg = "data:image/png;base64,abc"
	created, err := svc.CreateResident(input)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeceased, created.Status)
}

func TestUpdateResidentNIKUniqueness(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	a, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)
	b, err := svc.CreateResident(aliveInput("3201012345678902", "Joko Susilo"))
	require.NoError(t, err)

	// Taking another resident's NIK fails
	_, err = svc.UpdateResident(b.ID, ResidentUpdateInput{NIK: &a.NIK})
	require.ErrorIs(t, err, ErrNIKExists)

	// Resubmitting one's own NIK succeeds
	updated, err := svc.UpdateResident(b.ID, ResidentUpdateInput{NIK: &b.NIK})
	require.NoError(t, err)
	assert.Equal(t, b.NIK, updated.NIK)
}

func TestUpdateResidentMergesAndProtectsIdentity(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	created, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)

	newName := "Siti Aminah Putri"
	newOccupation := "Guru"
	updated, err := svc.UpdateResident(created.ID, ResidentUpdateInput{
		Name:       &newName,
		Occupation: &newOccupation,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newOccupation, updated.Occupation)
	// Untouched fields survive the merge
	assert.Equal(t, created.NIK, updated.NIK)
	assert.Equal(t, created.RT, updated.RT)
	// Identity never changes
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestUpdateResidentNotFound(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	name := "Siapa Saja"
	_, err := svc.UpdateResident("missing-id", ResidentUpdateInput{Name: &name})
	require.ErrorIs(t, err, ErrResidentNotFound)
}

func TestUpdateToDeceasedRequiresCertificate(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	created, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)

	deceased := models.StatusDeceased
	_, err = svc.UpdateResident(created.ID, ResidentUpdateInput{Status: &deceased})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	cert := "data:image/png;base64,abc"
	updated, err := svc.UpdateResident(created.ID, ResidentUpdateInput{
		Status:              &deceased,
		DeathCertificateImg: &cert,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeceased, updated.Status)
}

func TestDeleteResidentIdempotent(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	created, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResident(created.ID))

	residents, err := svc.ListResidents("")
	require.NoError(t, err)
	for _, r := range residents {
		assert.NotEqual(t, created.ID, r.ID)
	}

	// Second delete is a no-op, not an error
	require.NoError(t, svc.DeleteResident(created.ID))

	_, err = svc.GetResidentByID(created.ID)
	require.ErrorIs(t, err, ErrResidentNotFound)
}

func TestNikUniquenessAcrossCollection(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	niks := []string{"3201012345678901", "3201012345678902", "3201012345678903"}
	for i, nik := range niks {
		_, err := svc.CreateResident(aliveInput(nik, "Warga "+string(rune('A'+i))))
		require.NoError(t, err)
	}

	residents, err := svc.ListResidents("")
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, r := range residents {
		assert.False(t, seen[r.NIK], "duplicate NIK persisted: %s", r.NIK)
		seen[r.NIK] = true
	}
}

func TestNikExists(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	created, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)

	exists, err := svc.NikExists("3201012345678901", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.NikExists("3201012345678901", created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.NikExists("9999999999999999", "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListResidentsSearch(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	_, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)
	_, err = svc.CreateResident(aliveInput("3309012345678902", "Joko Susilo"))
	require.NoError(t, err)

	byName, err := svc.ListResidents("siti")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Siti Aminah", byName[0].Name)

	byNIK, err := svc.ListResidents("3309")
	require.NoError(t, err)
	require.Len(t, byNIK, 1)
	assert.Equal(t, "Joko Susilo", byNIK[0].Name)

	none, err := svc.ListResidents("tidak-ada")
	require.NoError(t, err)
	assert.Empty(t, none)
}

type failingRepo struct{}

func (failingRepo) GetAll() ([]models.Resident, error) { return nil, errors.New("storage down") }
func (failingRepo) SaveAll([]models.Resident) error    { return errors.New("storage down") }

func TestStorageErrorsPropagate(t *testing.T) {
	svc := NewResidentService(failingRepo{}, testLogger())

	_, err := svc.ListResidents("")
	require.Error(t, err)

	_, err = svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.Error(t, err)

	require.Error(t, svc.DeleteResident("any"))
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	svc := NewResidentService(emptyRepo(t), testLogger())

	a, err := svc.CreateResident(aliveInput("3201012345678901", "Siti Aminah"))
	require.NoError(t, err)
	b, err := svc.CreateResident(aliveInput("3201012345678902", "Joko Susilo"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.WithinDuration(t, time.Now(), a.CreatedAt, 5*time.Second)
}
