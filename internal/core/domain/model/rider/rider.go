// Package rider implements the delivery-agent aggregate and the rider
// location value object.
//
// A rider's "busy" state is intentionally not stored here: it is fully
// derivable from "does any non-terminal order carry this rider's id", so the
// dispatch layer computes it as a predicate over the order store instead of
// maintaining a second flag that could drift.
package rider

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrRiderIsNotConstructed is returned when a Rider instance was not created
// through the NewRider or RestoreRider factory methods.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")

// Rider represents a delivery agent. The profile carries the contact summary
// surfaced to customers and restaurants while an order is in flight, plus the
// availability flag consulted by automatic dispatch.
type Rider struct {
	id        kernel.UUID
	name      string
	phone     string
	available bool

	isConstructed bool
}

// NewRider creates a new available Rider with validation.
func NewRider(id kernel.UUID, name string, phone string) (*Rider, error) {
	r := &Rider{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider from persistence.
func RestoreRider(id kernel.UUID, name string, phone string, available bool) (*Rider, error) {
	r, err := NewRider(id, name, phone)
	if err != nil {
		return nil, err
	}

	r.available = available
	return r, nil
}

// Validate ensures the Rider instance was properly constructed.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}

	return nil
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact phone number.
func (r *Rider) Phone() string {
	return r.phone
}

// IsAvailable reports whether the rider accepts new assignments.
// This is a capability flag, distinct from the derived busy predicate.
func (r *Rider) IsAvailable() bool {
	return r.available
}

// SetAvailable toggles whether the rider accepts new assignments.
func (r *Rider) SetAvailable(available bool) {
	r.available = available
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = phone
	return nil
}
