package response

// MenuResponse represents one navigation module available to a role
type MenuResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Path     string `json:"path"`
	CanWrite bool   `json:"can_write"`
}
