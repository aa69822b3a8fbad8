package catalogControllers

import "github.com/Iyedchebbi/SofaSteam2026/models"

// FilterByCategory is the pure catalog filter. "all" (or empty) is the
// identity; anything else is an exact match on the service's category.
func FilterByCategory(services []models.Service, category string) []models.Service {
	if category == "" || category == "all" {
		return services
	}
	filtered := make([]models.Service, 0, len(services))
	for _, s := range services {
		if string(s.Category) == category {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
