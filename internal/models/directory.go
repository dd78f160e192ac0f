package models

import "time"

// ServiceType values form the closed set of civic service categories.
const (
	ServiceWaterSewerage  = "water-sewerage"
	ServiceElectricity    = "electricity"
	ServiceTransportation = "transportation"
	ServiceSocialWelfare  = "social-welfare"
	ServiceGarbage        = "garbage-collection"
	ServiceFire           = "fire-services"
	ServiceStreetLight    = "street-light-repair"
	ServiceRoads          = "road-maintenance"
	ServiceEnvironment    = "environment-sustainability"
)

// ServiceCategory is one entry of the service directory.
type ServiceCategory struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Services int    `json:"services"`
}

// ServiceCategories lists the full directory in display order.
var ServiceCategories = []ServiceCategory{
	{ServiceWaterSewerage, "Water & Sewerage", "💧", 12},
	{ServiceElectricity, "Electricity", "⚡", 8},
	{ServiceTransportation, "Transportation", "🚗", 7},
	{ServiceSocialWelfare, "Social Welfare", "🤝", 20},
	{ServiceGarbage, "Garbage Collection", "🗑️", 6},
	{ServiceFire, "Fire Services", "🚒", 4},
	{ServiceStreetLight, "Street Light Repair", "💡", 5},
	{ServiceRoads, "Road Maintenance", "🛣️", 8},
	{ServiceEnvironment, "Environment Sustainability", "🌱", 10},
}

// ServiceTypeLabel maps a service type value to its display label.
// The bool result reports membership in the closed set.
func ServiceTypeLabel(value string) (string, bool) {
	switch value {
	case ServiceWaterSewerage:
		return "Water & Sewerage", true
	case ServiceElectricity:
		return "Electricity", true
	case ServiceTransportation:
		return "Transportation", true
	case ServiceSocialWelfare:
		return "Social Welfare", true
	case ServiceGarbage:
		return "Garbage Collection", true
	case ServiceFire:
		return "Fire Services", true
	case ServiceStreetLight:
		return "Street Light Repair", true
	case ServiceRoads:
		return "Road Maintenance", true
	case ServiceEnvironment:
		return "Environment Sustainability", true
	}
	return "", false
}

// Location option used in complaint submission.
type Location struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Locations is the closed set of sectors and zones a complaint can reference.
var Locations = []Location{
	{"sector-1", "Sector 1"},
	{"sector-2", "Sector 2"},
	{"sector-3", "Sector 3"},
	{"sector-4", "Sector 4"},
	{"sector-5", "Sector 5"},
	{"city-center", "City Center"},
	{"industrial-area", "Industrial Area"},
	{"residential-zone-a", "Residential Zone A"},
	{"residential-zone-b", "Residential Zone B"},
	{"commercial-district", "Commercial District"},
	{"old-town", "Old Town"},
	{"new-development", "New Development Area"},
}

// LocationLabel maps a location value to its display label.
func LocationLabel(value string) (string, bool) {
	for _, l := range Locations {
		if l.Value == value {
			return l.Label, true
		}
	}
	return "", false
}

// EmergencyService is a directory entry for an emergency contact number.
type EmergencyService struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// EmergencyServices lists the national emergency numbers.
var EmergencyServices = []EmergencyService{
	{"Police", "100"},
	{"Fire Department", "101"},
	{"Ambulance", "102"},
}

// GovernmentScheme is a government program surfaced in the local info section.
type GovernmentScheme struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

// Announcement is a local service announcement.
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `json:"message"`
	Type      string    `gorm:"default:'info'" json:"type"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"-"`
}
