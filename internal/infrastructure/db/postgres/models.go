package postgres

import (
	"time"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

type roleModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:role_name;size:20;uniqueIndex;not null"`
}

func (roleModel) TableName() string { return "roles" }

type userModel struct {
	ID           int64              `gorm:"primaryKey;autoIncrement"`
	Username     string             `gorm:"size:20;uniqueIndex;not null"`
	Email        string             `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string             `gorm:"column:password;not null"`
	Roles        []roleModel        `gorm:"many2many:users_roles;joinForeignKey:UserID;joinReferences:RoleID"`
	Destinations []destinationModel `gorm:"foreignKey:UserID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type destinationModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Country     string     `gorm:"size:70;not null"`
	City        string     `gorm:"size:70;not null"`
	Description string     `gorm:"size:400;not null"`
	Image       string     `gorm:"size:512;not null"`
	UserID      int64      `gorm:"not null;index"`
	Owner       *userModel `gorm:"foreignKey:UserID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (destinationModel) TableName() string { return "destinations" }

func (m *roleModel) toDomain() *domain.Role {
	return &domain.Role{ID: m.ID, Name: m.Name}
}

func (m *userModel) toDomain() *domain.User {
	roles := make([]domain.Role, 0, len(m.Roles))
	for i := range m.Roles {
		roles = append(roles, *m.Roles[i].toDomain())
	}
	dests := make([]domain.Destination, 0, len(m.Destinations))
	for i := range m.Destinations {
		d := m.Destinations[i].toDomain()
		d.OwnerUsername = m.Username
		dests = append(dests, *d)
	}
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        roles,
		Destinations: dests,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (m *destinationModel) toDomain() *domain.Destination {
	d := &domain.Destination{
		ID:          m.ID,
		Country:     m.Country,
		City:        m.City,
		Description: m.Description,
		Image:       m.Image,
		OwnerID:     m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Owner != nil {
		d.OwnerUsername = m.Owner.Username
	}
	return d
}

func fromDomainRoles(roles []domain.Role) []roleModel {
	out := make([]roleModel, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleModel{ID: r.ID, Name: r.Name})
	}
	return out
}

func fromDomainDestination(d *domain.Destination) *destinationModel {
	return &destinationModel{
		ID:          d.ID,
		Country:     d.Country,
		City:        d.City,
		Description: d.Description,
		Image:       d.Image,
		UserID:      d.OwnerID,
	}
}
