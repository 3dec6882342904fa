package service

import (
	"github.com/dreamroute/travel-catalog/internal/core/domain"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

func userView(u *domain.User) *ports.UserView {
	cities := make([]string, 0, len(u.Destinations))
	for _, d := range u.Destinations {
		cities = append(cities, d.City)
	}
	return &ports.UserView{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Destinations: cities,
		Roles:        u.RoleNames(),
	}
}

func destinationView(d *domain.Destination) *ports.DestinationView {
	return &ports.DestinationView{
		ID:          d.ID,
		Country:     d.Country,
		City:        d.City,
		Description: d.Description,
		Image:       d.Image,
		Username:    d.OwnerUsername,
	}
}
