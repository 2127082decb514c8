package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
)

type Place struct {
	ID          uuid.UUID
	Name        string
	Description string
	Location    valueobject.GeoPoint
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewPlace(name, description string, loc valueobject.GeoPoint, createdBy string) *Place {
	now := time.Now().UTC()
	return &Place{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Location:    loc,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *Place) Update(name, description string, loc valueobject.GeoPoint) {
	p.Name = name
	p.Description = description
	p.Location = loc
	p.UpdatedAt = time.Now().UTC()
}
