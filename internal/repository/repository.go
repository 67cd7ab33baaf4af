package repository

import (
	"errors"
	"time"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

var (
	// ErrNotFound is returned when no observation has the requested ID
	ErrNotFound = errors.New("observation not found")
	// ErrDuplicate is returned when an observation ID is already stored
	ErrDuplicate = errors.New("observation already stored")
)

// Repository defines the contract for storing and replaying captured observations.
type Repository interface {
	AddObservation(obs model.Observation) (string, error)
	// Batch insert for imports
	AddObservations(observations []model.Observation) ([]string, error)

	GetObservation(id string) (*model.Observation, error)
	// Observations returns everything captured at or after since, oldest first
	Observations(since time.Time) ([]model.Observation, error)
	ObservationsByProtocol(protocol model.Protocol, since time.Time) ([]model.Observation, error)
	Count() (int, error)
	DeleteBefore(before time.Time) (int64, error)

	Close() error
}
