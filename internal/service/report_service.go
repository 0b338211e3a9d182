package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/repository"
	"sipm-be-svc/pkg/logger"
	"sipm-be-svc/pkg/utils"
)

// ReportPeriod selects the time window applied to createdAt
type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "harian"
	PeriodWeekly  ReportPeriod = "mingguan"
	PeriodMonthly ReportPeriod = "bulanan"
	PeriodYearly  ReportPeriod = "tahunan"
)

// IsValid checks whether the period is a known value
func (p ReportPeriod) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// ReportCriteria holds the recognized report filter options. All criteria
// combine with logical AND; zero values mean "no filter".
type ReportCriteria struct {
	RT            string
	Dusun         string
	Status        models.ResidentStatus
	Period        ReportPeriod
	ReferenceDate *time.Time
}

// ReportService derives filtered views of the resident collection and
// renders them as downloadable artifacts
type ReportService interface {
	FilterResidents(residents []models.Resident, criteria ReportCriteria) []models.Resident
	GetReport(criteria ReportCriteria) ([]models.Resident, error)
	ExportToExcel(criteria ReportCriteria) ([]byte, string, error)
	ExportToPDF(criteria ReportCriteria) ([]byte, string, error)
}

// reportService implements ReportService
type reportService struct {
	residentRepo repository.ResidentRepository
	logger       *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(residentRepo repository.ResidentRepository, logger *logger.Logger) ReportService {
	return &reportService{
		residentRepo: residentRepo,
		logger:       logger,
	}
}

// FilterResidents applies the criteria to an in-memory collection without
// mutating it. Input order is preserved.
func (s *reportService) FilterResidents(residents []models.Resident, criteria ReportCriteria) []models.Resident {
	filtered := make([]models.Resident, 0, len(residents))
	for _, r := range residents {
		if criteria.RT != "" && !strings.Contains(r.RT, criteria.RT) {
			continue
		}
		if criteria.Dusun != "" && !strings.Contains(strings.ToLower(r.Dusun), strings.ToLower(criteria.Dusun)) {
			continue
		}
		if criteria.Status != "" && r.Status != criteria.Status {
			continue
		}
		if !matchPeriod(r.CreatedAt, criteria.Period, criteria.ReferenceDate) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// matchPeriod checks createdAt against the period window. Without a
// reference date the period filter is a no-op.
func matchPeriod(createdAt time.Time, period ReportPeriod, ref *time.Time) bool {
	if ref == nil {
		return true
	}
	switch period {
	case PeriodDaily:
		cy, cm, cd := createdAt.Date()
		ry, rm, rd := ref.Date()
		return cy == ry && cm == rm && cd == rd
	case PeriodMonthly:
		return createdAt.Year() == ref.Year() && createdAt.Month() == ref.Month()
	case PeriodYearly:
		return createdAt.Year() == ref.Year()
	case PeriodWeekly:
		// Forward-looking 7-day window from the reference date. Records
		// created before the reference date never match. Kept as-is from
		// prior behavior.
		diff := createdAt.Sub(*ref).Hours() / 24
		return diff >= 0 && diff <= 7
	}
	return true
}

// GetReport loads the collection and applies the criteria
func (s *reportService) GetReport(criteria ReportCriteria) ([]models.Resident, error) {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load residents for report")
		return nil, err
	}
	return s.FilterResidents(residents, criteria), nil
}

// ExportToExcel renders the filtered collection as an xlsx workbook. An
// empty result still produces a valid header-only sheet.
func (s *reportService) ExportToExcel(criteria ReportCriteria) ([]byte, string, error) {
	residents, err := s.GetReport(criteria)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Error closing Excel file")
		}
	}()

	sheetName := "Data_Masyarakat"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", wrapExport(err)
	}
	f.SetActiveSheet(index)

	headers := []string{"NIK", "Nama", "Gender", "RT", "Dusun", "Alamat", "Status", "Pekerjaan", "Tanggal Input"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "I1", headerStyle)
	}

	for i, r := range residents {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.NIK)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), string(r.Gender))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.RT)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Dusun)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Address)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), string(r.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.Occupation)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), utils.FormatDateTimeID(r.CreatedAt))
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("SIPM_Report_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		s.logger.WithError(err).Error("Failed to write Excel file")
		return nil, "", wrapExport(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"rows":     len(residents),
		"filename": filename,
	}).Info("Excel report generated")

	return buffer.Bytes(), filename, nil
}

// ExportToPDF renders the filtered collection as a paginated tabular PDF
// report. An empty result produces a report with an explicit no-data line.
func (s *reportService) ExportToPDF(criteria ReportCriteria) ([]byte, string, error) {
	residents, err := s.GetReport(criteria)
	if err != nil {
		return nil, "", err
	}

	period := criteria.Period
	if period == "" {
		period = PeriodMonthly
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(14, 25, "LAPORAN STRATEGIS KEPENDUDUKAN")

	pdf.SetFontSize(10)
	pdf.SetTextColor(100, 116, 139)
	pdf.Text(14, 32, fmt.Sprintf("DESA PARUNGKAMAL | PERIODE: %s", strings.ToUpper(string(period))))
	pdf.Text(14, 37, fmt.Sprintf("TANGGAL CETAK: %s", utils.FormatDateTimeID(time.Now())))

	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(14, 42, 196, 42)

	// Table headers
	y := 52.0
	pdf.SetFontSize(9)
	pdf.SetTextColor(30, 41, 59)
	pdf.Text(14, y, "NIK")
	pdf.Text(45, y, "NAMA LENGKAP")
	pdf.Text(100, y, "RT/DUSUN")
	pdf.Text(145, y, "STATUS")
	pdf.Text(175, y, "TGL INPUT")

	pdf.Line(14, y+2, 196, y+2)
	y += 10

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range residents {
		if y > 275 {
			pdf.AddPage()
			y = 20
		}
		pdf.Text(14, y, r.NIK)
		pdf.Text(45, y, truncate(r.Name, 24))
		pdf.Text(100, y, fmt.Sprintf("%s/%s", r.RT, truncate(r.Dusun, 10)))
		pdf.Text(145, y, string(r.Status))
		pdf.Text(175, y, utils.FormatDateID(r.CreatedAt))
		y += 8
	}

	if len(residents) == 0 {
		pdf.Text(14, y, "Tidak ada data tersedia untuk filter ini.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.WithError(err).Error("Failed to write PDF file")
		return nil, "", wrapExport(err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("SIPM_Parungkamal_Report_%s.pdf", timestamp)

	s.logger.WithFields(map[string]interface{}{
		"rows":     len(residents),
		"filename": filename,
	}).Info("PDF report generated")

	return buf.Bytes(), filename, nil
}

// truncate limits a string to max characters
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
