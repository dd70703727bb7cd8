package session

import (
	"context"

	"pet-health-tracker/internal/domain/activities"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/platform/metrics"
)

// Decoradores de repos: cuentan altas exitosas sin tocar el dominio.

type countingPets struct {
	pets.Repository
}

func (r countingPets) Append(ctx context.Context, p pets.Pet) error {
	if err := r.Repository.Append(ctx, p); err != nil {
		return err
	}
	metrics.PetsAdded.Inc()
	return nil
}

type countingActivities struct {
	activities.Repository
}

func (r countingActivities) Append(ctx context.Context, a activities.Activity) error {
	if err := r.Repository.Append(ctx, a); err != nil {
		return err
	}
	metrics.ActivitiesAdded.WithLabelValues(typeLabel(a.Type)).Inc()
	return nil
}

// typeLabel acota el label: el tipo es texto libre en la API.
func typeLabel(c activities.Category) string {
	switch c {
	case activities.CategoryExercise, activities.CategoryFood:
		return string(c)
	default:
		return "other"
	}
}
