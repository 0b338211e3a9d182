package service

import (
	"errors"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/models/response"
)

// MenuService interface defines navigation menu service methods
type MenuService interface {
	GetMenusByRole(role models.UserRole) ([]response.MenuResponse, error)
}

// menuService implements MenuService interface
type menuService struct{}

// NewMenuService creates a new menu service
func NewMenuService() MenuService {
	return &menuService{}
}

// GetMenusByRole returns the application modules available to a role.
// All roles see every module; only admins get write access on the
// resident registry.
func (s *menuService) GetMenusByRole(role models.UserRole) ([]response.MenuResponse, error) {
	if !role.IsValid() {
		return nil, errors.New("invalid role")
	}

	isAdmin := role == models.RoleAdmin

	menus := []response.MenuResponse{
		{ID: "dashboard", Label: "Dashboard", Path: "/dashboard", CanWrite: false},
		{ID: "residents", Label: "Data Penduduk", Path: "/residents", CanWrite: isAdmin},
		{ID: "reports", Label: "Laporan Digital", Path: "/reports", CanWrite: false},
	}

	return menus, nil
}
