package service

import (
	"sort"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/models/response"
	"sipm-be-svc/internal/repository"
	"sipm-be-svc/pkg/logger"
	"sipm-be-svc/pkg/utils"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetStatistics() (*response.DashboardStatisticsResponse, error)
	GetPopulationTrend() ([]response.TrendPointResponse, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	residentRepo repository.ResidentRepository
	logger       *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(residentRepo repository.ResidentRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		residentRepo: residentRepo,
		logger:       logger,
	}
}

// GetStatistics computes the population counters shown on the dashboard
func (s *dashboardService) GetStatistics() (*response.DashboardStatisticsResponse, error) {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load residents for statistics")
		return nil, err
	}

	stats := &response.DashboardStatisticsResponse{
		TotalResidents: len(residents),
	}
	for _, r := range residents {
		if r.Gender == models.GenderMale {
			stats.MaleCount++
		}
		if r.Gender == models.GenderFemale {
			stats.FemaleCount++
		}
		if r.Status == models.StatusDeceased {
			stats.DeceasedCount++
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"total":    stats.TotalResidents,
		"deceased": stats.DeceasedCount,
	}).Info("Dashboard statistics retrieved successfully")

	return stats, nil
}

// GetPopulationTrend returns the cumulative population and mortality
// series in chronological order of data entry
func (s *dashboardService) GetPopulationTrend() ([]response.TrendPointResponse, error) {
	residents, err := s.residentRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load residents for trend")
		return nil, err
	}

	sorted := make([]models.Resident, len(residents))
	copy(sorted, residents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	points := make([]response.TrendPointResponse, 0, len(sorted))
	count := 0
	deadCount := 0
	for _, r := range sorted {
		count++
		if r.Status == models.StatusDeceased {
			deadCount++
		}
		points = append(points, response.TrendPointResponse{
			Time:       utils.FormatDayMonthID(r.CreatedAt),
			Population: count,
			Mortality:  deadCount,
		})
	}

	return points, nil
}
