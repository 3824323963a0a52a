package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotFilter is a domain-level filter for querying available time slots.
// Used by repository layer to avoid coupling with delivery DTOs.
// Zero values mean "no filter"; OnDate matches the slot's start instant's
// calendar date in UTC.
type SlotFilter struct {
	DoctorID   *uuid.UUID
	HospitalID *uuid.UUID
	OnDate     *time.Time
}
