package asset

import "github.com/officeflow/officeflow-backend-go/internal/pkg/validator"

type CreateAssetRequest struct {
	Name             string            `json:"name"`
	Kind             string            `json:"type"`
	Category         string            `json:"category"`
	SerialNumber     string            `json:"serial_number"`
	PurchaseDate     string            `json:"purchase_date"`
	PurchasePrice    float64           `json:"purchase_price"`
	WarrantyExpiry   string            `json:"warranty_expiry"`
	DepreciationRate *float64          `json:"depreciation_rate,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
}

func (r *CreateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Kind != string(KindHardware) && r.Kind != string(KindSoftware) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Hardware or Software",
		})
	}

	switch Category(r.Category) {
	case CategoryLaptop, CategoryDesktop, CategoryMonitor, CategoryPeripheral, CategoryLicense, CategorySubscription:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "invalid category",
		})
	}

	if r.PurchasePrice < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "purchase_price",
			Message: "purchase_price must not be negative",
		})
	}

	if r.DepreciationRate != nil && *r.DepreciationRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "depreciation_rate",
			Message: "depreciation_rate must not be negative",
		})
	}

	if !validator.IsEmpty(r.PurchaseDate) {
		if _, ok := validator.IsValidDate(r.PurchaseDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "purchase_date",
				Message: "purchase_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssetRequest struct {
	Name           *string           `json:"name,omitempty"`
	Status         *string           `json:"status,omitempty"`
	SerialNumber   *string           `json:"serial_number,omitempty"`
	WarrantyExpiry *string           `json:"warranty_expiry,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

func (r *UpdateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Status != nil {
		if _, ok := ParseStatus(*r.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be Available, Assigned, Maintenance or Retired",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignAssetRequest struct {
	EmployeeID string `json:"employee_id"`
	Notes      string `json:"notes,omitempty"`
}

func (r *AssignAssetRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}
	return nil
}

type AddMaintenanceRequest struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
	Technician  string  `json:"technician,omitempty"`
}

func (r *AddMaintenanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if _, ok := ParseMaintenanceType(r.Type); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Repair, Upgrade or Routine",
		})
	}

	if r.Cost < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "cost",
			Message: "cost must not be negative",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
