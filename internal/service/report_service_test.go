package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/repository"
)

func mkResident(id, rt, dusun string, status models.ResidentStatus, createdAt time.Time) models.Resident {
	r := models.Resident{
		ID:            id,
		NIK:           "32010123456789" + id + id,
		Name:          "Warga " + id,
		Gender:        models.GenderMale,
		DOB:           "1990-01-01",
		Address:       "Jl. Merdeka No. 10",
		RT:            rt,
		Dusun:         dusun,
		MaritalStatus: models.MaritalSingle,
		Occupation:    "Petani",
		Status:        status,
		CreatedAt:     createdAt,
	}
	if status == models.StatusDeceased {
		r.DeathCertificateImg = "data:image/png;base64,abc"
	}
	return r
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.Local)
}

func TestFilterResidentsByStatusRTAndDusun(t *testing.T) {
	svc := NewReportService(repository.NewMemoryResidentRepository(), testLogger())

	now := time.Now()
	a := mkResident("a", "001", "Krajan", models.StatusAlive, now)
	b := mkResident("b", "002", "Sawah", models.StatusDeceased, now)
	residents := []models.Resident{a, b}

	byStatus := svc.FilterResidents(residents, ReportCriteria{Status: models.StatusAlive})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "a", byStatus[0].ID)

	byRT := svc.FilterResidents(residents, ReportCriteria{RT: "00"})
	require.Len(t, byRT, 2)
	assert.Equal(t, "a", byRT[0].ID)
	assert.Equal(t, "b", byRT[1].ID)

	byDusun := svc.FilterResidents(residents, ReportCriteria{Dusun: "krajan"})
	require.Len(t, byDusun, 1)
	assert.Equal(t, "a", byDusun[0].ID)
}

func TestFilterResidentsCombinesWithAnd(t *testing.T) {
	svc := NewReportService(repository.NewMemoryResidentRepository(), testLogger())

	now := time.Now()
	residents := []models.Resident{
		mkResident("a", "001", "Krajan", models.StatusAlive, now),
		mkResident("b", "001", "Krajan", models.StatusDeceased, now),
		mkResident("c", "002", "Krajan", models.StatusAlive, now),
	}

	filtered := svc.FilterResidents(residents, ReportCriteria{
		RT:     "001",
		Dusun:  "KRAJAN",
		Status: models.StatusAlive,
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func TestFilterResidentsPeriodWindows(t *testing.T) {
	svc := NewReportService(repository.NewMemoryResidentRepository(), testLogger())

	ref := date(2024, time.March, 10)

	sameDay := mkResident("a", "001", "Krajan", models.StatusAlive, date(2024, time.March, 10))
	sameMonth := mkResident("b", "001", "Krajan", models.StatusAlive, date(2024, time.March, 25))
	sameYear := mkResident("c", "001", "Krajan", models.StatusAlive, date(2024, time.July, 1))
	otherYear := mkResident("d", "001", "Krajan", models.StatusAlive, date(2023, time.March, 10))
	residents := []models.Resident{sameDay, sameMonth, sameYear, otherYear}

	daily := svc.FilterResidents(residents, ReportCriteria{Period: PeriodDaily, ReferenceDate: &ref})
	require.Len(t, daily, 1)
	assert.Equal(t, "a", daily[0].ID)

	monthly := svc.FilterResidents(residents, ReportCriteria{Period: PeriodMonthly, ReferenceDate: &ref})
	assert.Len(t, monthly, 2)

	yearly := svc.FilterResidents(residents, ReportCriteria{Period: PeriodYearly, ReferenceDate: &ref})
	assert.Len(t, yearly, 3)

	// Without a reference date the period filter is inactive
	all := svc.FilterResidents(residents, ReportCriteria{Period: PeriodDaily})
	assert.Len(t, all, 4)
}

func TestFilterResidentsWeeklyWindowIsForwardOnly(t *testing.T) {
	svc := NewReportService(repository.NewMemoryResidentRepository(), testLogger())

	ref := date(2024, time.March, 10)
	within := mkResident("a", "001", "Krajan", models.StatusAlive, date(2024, time.March, 12))
	before := mkResident("b", "001", "Krajan", models.StatusAlive, date(2024, time.March, 5))
	past := mkResident("c", "001", "Krajan", models.StatusAlive, date(2024, time.March, 20))
	residents := []models.Resident{within, before, past}

	weekly := svc.FilterResidents(residents, ReportCriteria{Period: PeriodWeekly, ReferenceDate: &ref})
	require.Len(t, weekly, 1)
	assert.Equal(t, "a", weekly[0].ID)
}

func TestFilterResidentsIdempotent(t *testing.T) {
	svc := NewReportService(repository.NewMemoryResidentRepository(), testLogger())

	now := time.Now()
	residents := []models.Resident{
		mkResident("a", "001", "Krajan", models.StatusAlive, now),
		mkResident("b", "002", "Sawah", models.StatusDeceased, now),
		mkResident("c", "001", "Krajan", models.StatusDeceased, now),
	}
	criteria := ReportCriteria{RT: "001"}

	once := svc.FilterResidents(residents, criteria)
	twice := svc.FilterResidents(once, criteria)
	assert.Equal(t, once, twice)
}

func TestFilterResidentsPreservesInputOrder(t *testing.T) {
	svc := NewReportService(repository.NewMemoryResidentRepository(), testLogger())

	residents := []models.Resident{
		mkResident("c", "001", "Krajan", models.StatusAlive, date(2024, time.May, 3)),
		mkResident("a", "001", "Krajan", models.StatusAlive, date(2024, time.May, 1)),
		mkResident("b", "001", "Krajan", models.StatusAlive, date(2024, time.May, 2)),
	}

	filtered := svc.FilterResidents(residents, ReportCriteria{RT: "001"})
	require.Len(t, filtered, 3)
	assert.Equal(t, "c", filtered[0].ID)
	assert.Equal(t, "a", filtered[1].ID)
	assert.Equal(t, "b", filtered[2].ID)
}

func TestExportToExcel(t *testing.T) {
	repo := repository.NewMemoryResidentRepository(
		mkResident("a", "001", "Krajan", models.StatusAlive, time.Now()),
		mkResident("b", "002", "Sawah", models.StatusDeceased, time.Now()),
	)
	svc := NewReportService(repo, testLogger())

	data, filename, err := svc.ExportToExcel(ReportCriteria{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, filename, "SIPM_Report_")
	assert.Contains(t, filename, ".xlsx")
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestExportToExcelEmptyResult(t *testing.T) {
	repo := repository.NewMemoryResidentRepository(
		mkResident("a", "001", "Krajan", models.StatusAlive, time.Now()),
	)
	svc := NewReportService(repo, testLogger())

	data, _, err := svc.ExportToExcel(ReportCriteria{RT: "999"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestExportToPDF(t *testing.T) {
	repo := repository.NewMemoryResidentRepository(
		mkResident("a", "001", "Krajan", models.StatusAlive, time.Now()),
		mkResident("b", "002", "Sawah", models.StatusDeceased, time.Now()),
	)
	svc := NewReportService(repo, testLogger())

	data, filename, err := svc.ExportToPDF(ReportCriteria{Period: PeriodWeekly})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, filename, "SIPM_Parungkamal_Report_")
	assert.Contains(t, filename, ".pdf")
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportToPDFEmptyResult(t *testing.T) {
	repo := repository.NewMemoryResidentRepository(
		mkResident("a", "001", "Krajan", models.StatusAlive, time.Now()),
	)
	svc := NewReportService(repo, testLogger())

	// Empty filtered set still produces a valid document
	data, _, err := svc.ExportToPDF(ReportCriteria{Dusun: "tidak-ada"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFPaginationWithManyRows(t *testing.T) {
	var residents []models.Resident
	base := date(2024, time.January, 1)
	for i := 0; i < 60; i++ {
		id := string(rune('a'+i%26)) + string(rune('a'+i/26))
		r := mkResident(id, "001", "Krajan", models.StatusAlive, base.AddDate(0, 0, i))
		r.NIK = "3201010101010000"
		residents = append(residents, r)
	}
	repo := repository.NewMemoryResidentRepository(residents...)
	svc := NewReportService(repo, testLogger())

	data, _, err := svc.ExportToPDF(ReportCriteria{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
