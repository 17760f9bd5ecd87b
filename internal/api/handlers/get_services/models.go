package get_services

import (
	"github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
)

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Categories []ServiceCategory `json:"categories"`
}

// ServiceCategory категория услуг с её услугами
type ServiceCategory struct {
	Name     string    `json:"name"`
	Services []Service `json:"services"`
}

// Service услуга филиала
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	ServiceImage    string   `json:"serviceImage,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// FromCategories конвертирует ответ API салона в HTTP response
func FromCategories(categories []salonapi.ServiceCategory) *ServiceListResponse {
	result := make([]ServiceCategory, len(categories))
	for i, c := range categories {
		services := make([]Service, len(c.Services))
		for j, s := range c.Services {
			services[j] = Service{
				ID:              s.ID,
				Name:            s.Name,
				Description:     s.Description,
				ServiceImage:    s.ServiceImage,
				DurationMinutes: s.DurationMin,
				Price:           s.Price,
			}
		}
		result[i] = ServiceCategory{
			Name:     c.Category.Name,
			Services: services,
		}
	}
	return &ServiceListResponse{Categories: result}
}
