package asset

import "time"

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusAssigned    Status = "Assigned"
	StatusMaintenance Status = "Maintenance"
	StatusRetired     Status = "Retired"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusAvailable, StatusAssigned, StatusMaintenance, StatusRetired:
		return Status(s), true
	}
	return "", false
}

type Kind string

const (
	KindHardware Kind = "Hardware"
	KindSoftware Kind = "Software"
)

type Category string

const (
	CategoryLaptop       Category = "Laptop"
	CategoryDesktop      Category = "Desktop"
	CategoryMonitor      Category = "Monitor"
	CategoryPeripheral   Category = "Peripheral"
	CategoryLicense      Category = "License"
	CategorySubscription Category = "Subscription"
)

// Asset tracks a piece of company equipment or a license.
// Invariant: Status == Assigned iff AssignedTo is set.
type Asset struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Kind             Kind              `json:"type"`
	Category         Category          `json:"category"`
	SerialNumber     string            `json:"serialNumber,omitempty"`
	Status           Status            `json:"status"`
	PurchaseDate     *time.Time        `json:"purchaseDate,omitempty"`
	PurchasePrice    float64           `json:"purchasePrice"`
	WarrantyExpiry   *time.Time        `json:"warrantyExpiry,omitempty"`
	DepreciationRate *float64          `json:"depreciationRate,omitempty"` // annual percentage
	AssignedTo       string            `json:"assignedTo,omitempty"`       // employee id
	Specifications   map[string]string `json:"specifications,omitempty"`
}

type MaintenanceType string

const (
	MaintenanceRepair  MaintenanceType = "Repair"
	MaintenanceUpgrade MaintenanceType = "Upgrade"
	MaintenanceRoutine MaintenanceType = "Routine"
)

func ParseMaintenanceType(s string) (MaintenanceType, bool) {
	switch MaintenanceType(s) {
	case MaintenanceRepair, MaintenanceUpgrade, MaintenanceRoutine:
		return MaintenanceType(s), true
	}
	return "", false
}

// MaintenanceRecord is one service event against an asset.
type MaintenanceRecord struct {
	ID          string          `json:"id"`
	AssetID     string          `json:"assetId"`
	Date        string          `json:"date"`
	Type        MaintenanceType `json:"type"`
	Cost        float64         `json:"cost"`
	Description string          `json:"description"`
	Technician  string          `json:"technician,omitempty"`
}

// Assignment is one entry in an asset's assignment history. An open
// assignment has no ReturnDate.
type Assignment struct {
	ID           string `json:"id"`
	AssetID      string `json:"assetId"`
	EmployeeID   string `json:"employeeId"`
	AssignedDate string `json:"assignedDate"`
	ReturnDate   string `json:"returnDate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
