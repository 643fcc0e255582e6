// Package vehicle implements the vehicle aggregate. License plates and VIN
// numbers are unique across the directory; that uniqueness is enforced by
// database constraints, with application-level pre-checks serving only as a
// fast, friendly error path.
package vehicle

import (
	"errors"
	"fmt"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly
	// initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New(
		"Vehicle must be created via NewVehicle or RestoreVehicle")
	// ErrBrandIsRequired is returned when the brand is empty.
	ErrBrandIsRequired = errs.NewValueIsRequiredError("brand")
	// ErrModelIsRequired is returned when the model is empty.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrLicensePlateIsRequired is returned when the license plate is empty.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("licensePlate")
	// ErrVINIsRequired is returned when the VIN is empty.
	ErrVINIsRequired = errs.NewValueIsRequiredError("vin")
)

// Vehicle is the aggregate root of the vehicle directory. Every vehicle
// belongs to exactly one customer and carries a monotonically non-decreasing
// odometer reading.
type Vehicle struct {
	id           kernel.UUID
	customer     kernel.UUID
	brand        string
	model        string
	year         int
	licensePlate string
	vin          string
	mileage      int

	guard guard.ConstructorGuard
}

// NewVehicle registers a vehicle under a customer. Brand, model, year,
// license plate, and VIN are required; mileage must be non-negative.
func NewVehicle(
	id kernel.UUID,
	customerID kernel.UUID,
	brand, model string,
	year int,
	licensePlate, vin string,
	mileage int,
) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCustomerID(customerID),
		v.setBrand(brand),
		v.setModel(model),
		v.setYear(year),
		v.setLicensePlate(licensePlate),
		v.setVIN(vin),
		v.setMileage(mileage),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistent storage.
func RestoreVehicle(
	id kernel.UUID,
	customerID kernel.UUID,
	brand, model string,
	year int,
	licensePlate, vin string,
	mileage int,
) (*Vehicle, error) {
	return NewVehicle(id, customerID, brand, model, year, licensePlate, vin, mileage)
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the aggregate identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// CustomerID returns the owning customer reference.
func (v *Vehicle) CustomerID() kernel.UUID {
	return v.customer
}

// Brand returns the vehicle make.
func (v *Vehicle) Brand() string {
	return v.brand
}

// Model returns the vehicle model.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the model year.
func (v *Vehicle) Year() int {
	return v.year
}

// LicensePlate returns the license plate, unique across the directory.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// VIN returns the vehicle identification number, unique across the directory.
func (v *Vehicle) VIN() string {
	return v.vin
}

// Mileage returns the latest recorded odometer reading.
func (v *Vehicle) Mileage() int {
	return v.mileage
}

// UpdateMileage records a new odometer reading. Mileage is monotonic
// non-decreasing: a reading at or below the stored value is silently ignored
// and the method reports whether the stored value changed. A negative
// reading is rejected.
func (v *Vehicle) UpdateMileage(mileage int) (bool, error) {
	if err := v.Validate(); err != nil {
		return false, err
	}
	if mileage < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"mileage",
			fmt.Errorf("%d is negative", mileage),
		)
	}

	if mileage <= v.mileage {
		return false, nil
	}

	v.mileage = mileage
	return true, nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.customer = id
	return nil
}

func (v *Vehicle) setBrand(brand string) error {
	if brand == "" {
		return ErrBrandIsRequired
	}
	v.brand = brand
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	if year <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"year",
			fmt.Errorf("%d is not a valid model year", year),
		)
	}
	v.year = year
	return nil
}

func (v *Vehicle) setLicensePlate(plate string) error {
	if plate == "" {
		return ErrLicensePlateIsRequired
	}
	v.licensePlate = plate
	return nil
}

func (v *Vehicle) setVIN(vin string) error {
	if vin == "" {
		return ErrVINIsRequired
	}
	v.vin = vin
	return nil
}

func (v *Vehicle) setMileage(mileage int) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mileage",
			fmt.Errorf("%d is negative", mileage),
		)
	}
	v.mileage = mileage
	return nil
}
