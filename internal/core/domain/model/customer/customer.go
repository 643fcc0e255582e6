// Package customer implements the customer aggregate: contact details,
// personal/business classification, and the list of vehicles the customer
// owns.
package customer

import (
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New(
		"Customer must be created via NewCustomer or RestoreCustomer")
	// ErrNameIsRequired is returned when the customer name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when the contact phone is empty.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCompanyNameIsRequired is returned when a business customer has no
	// company name.
	ErrCompanyNameIsRequired = errs.NewValueIsRequiredError("companyName")
)

// Type classifies a customer as a private person or a business account.
type Type string

const (
	// TypePersonal is a private customer. This is the default.
	TypePersonal Type = "personal"
	// TypeBusiness is a company account; it requires business details.
	TypeBusiness Type = "business"
)

// Validate checks the customer type value.
func (t Type) Validate() error {
	switch t {
	case TypePersonal, TypeBusiness:
		return nil
	default:
		return errs.NewValueIsInvalidError("customerType")
	}
}

// BusinessInfo carries the company details of a business customer.
// All fields except CompanyName are optional.
type BusinessInfo struct {
	CompanyName   string
	TaxNumber     string
	Industry      string
	ContactPerson string
}

// Customer is the aggregate root of the customer directory. It owns the
// contact details and the references to the vehicles registered under it;
// the vehicles themselves live in the vehicle directory.
type Customer struct {
	id           kernel.UUID
	name         string
	customerType Type
	business     BusinessInfo
	phone        string
	email        string
	address      string
	vehicles     []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomer creates a personal customer with no vehicles yet.
// Name and phone are required; email and address may be empty.
func NewCustomer(id kernel.UUID, name, phone, email, address string) (*Customer, error) {
	c := &Customer{
		customerType: TypePersonal,
		email:        email,
		address:      address,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// NewBusinessCustomer creates a business customer. In addition to the
// personal-customer requirements, the company name must be present.
func NewBusinessCustomer(
	id kernel.UUID,
	name, phone, email, address string,
	business BusinessInfo,
) (*Customer, error) {
	c, err := NewCustomer(id, name, phone, email, address)
	if err != nil {
		return nil, err
	}

	if business.CompanyName == "" {
		return nil, ErrCompanyNameIsRequired
	}
	c.customerType = TypeBusiness
	c.business = business
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistent storage, including
// the registered vehicle references.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	customerType Type,
	business BusinessInfo,
	phone, email, address string,
	vehicles []kernel.UUID,
) (*Customer, error) {
	c := &Customer{
		business: business,
		email:    email,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		customerType.Validate(),
	); err != nil {
		return nil, err
	}
	c.customerType = customerType

	if customerType == TypeBusiness && business.CompanyName == "" {
		return nil, ErrCompanyNameIsRequired
	}

	c.vehicles = make([]kernel.UUID, len(vehicles))
	copy(c.vehicles, vehicles)
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the aggregate identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer (or contact) name.
func (c *Customer) Name() string {
	return c.name
}

// CustomerType returns the personal/business classification.
func (c *Customer) CustomerType() Type {
	return c.customerType
}

// Business returns the company details, zero for personal customers.
func (c *Customer) Business() BusinessInfo {
	return c.business
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Email returns the contact email, empty when not recorded.
func (c *Customer) Email() string {
	return c.email
}

// Address returns the contact address, empty when not recorded.
func (c *Customer) Address() string {
	return c.address
}

// Vehicles returns the registered vehicle references. The returned slice is
// a copy.
func (c *Customer) Vehicles() []kernel.UUID {
	out := make([]kernel.UUID, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

// AddVehicle appends a vehicle reference to the customer. Adding the same
// vehicle twice is a no-op, so the intake flow can retry safely.
func (c *Customer) AddVehicle(vehicleID kernel.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	for _, existing := range c.vehicles {
		if existing.IsEqual(vehicleID) {
			return nil
		}
	}

	c.vehicles = append(c.vehicles, vehicleID)
	return nil
}

// UpdateContact replaces the customer's contact details. Name and phone stay
// required; email and address may be cleared.
func (c *Customer) UpdateContact(name, phone, email, address string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := errors.Join(
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return err
	}

	c.email = email
	c.address = address
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
