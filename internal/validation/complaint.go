package validation

import (
	"errors"
	"strings"

	"fixmycity/internal/models"
)

// New-complaint rule failures, reported one at a time in the fixed priority
// order: service type, location, title, description.
var (
	ErrServiceTypeRequired = errors.New("please select a service type")
	ErrLocationRequired    = errors.New("please select a location")
	ErrTitleRequired       = errors.New("please enter a title")
	ErrDescriptionRequired = errors.New("please enter a description")
	ErrPriorityInvalid     = errors.New("please choose a valid priority")
)

var complaintErrors = []error{
	ErrServiceTypeRequired, ErrLocationRequired,
	ErrTitleRequired, ErrDescriptionRequired, ErrPriorityInvalid,
}

// IsComplaintValidationError reports whether err is one of the new-complaint
// rule failures.
func IsComplaintValidationError(err error) bool {
	for _, target := range complaintErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ValidateNewComplaint applies the new-complaint rules in priority order and
// returns the first failure. Service type and location must be members of
// their closed option sets.
func ValidateNewComplaint(in *models.NewComplaintInput) error {
	if _, ok := models.ServiceTypeLabel(in.ServiceType); !ok {
		return ErrServiceTypeRequired
	}
	if _, ok := models.LocationLabel(in.Location); !ok {
		return ErrLocationRequired
	}
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrDescriptionRequired
	}
	if in.Priority != "" && !models.ValidPriority(in.Priority) {
		return ErrPriorityInvalid
	}
	return nil
}
