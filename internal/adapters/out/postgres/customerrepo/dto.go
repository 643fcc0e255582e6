// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. It implements the repository pattern for the
// customer aggregate, handling conversion between domain entities and their
// database representation.
package customerrepo

import (
	"autoshop/internal/core/domain/model/customer"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. Business fields are flattened into the same row; they are
// empty for personal customers.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:128;not null"`
	CustomerType  string    `gorm:"size:16;not null"`
	CompanyName   string    `gorm:"size:256"`
	TaxNumber     string    `gorm:"size:64"`
	Industry      string    `gorm:"size:64"`
	ContactPerson string    `gorm:"size:128"`
	Phone         string    `gorm:"size:32;not null;uniqueIndex"`
	Email         string    `gorm:"size:256"`
	Address       string    `gorm:"size:512"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
// Vehicle ownership is not mapped here; it lives on the vehicle rows.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	business := aggregate.Business()
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		CustomerType:  string(aggregate.CustomerType()),
		CompanyName:   business.CompanyName,
		TaxNumber:     business.TaxNumber,
		Industry:      business.Industry,
		ContactPerson: business.ContactPerson,
		Phone:         aggregate.Phone(),
		Email:         aggregate.Email(),
		Address:       aggregate.Address(),
	}
}

// toDomain converts a database DTO to a customer aggregate. The identifiers
// of vehicles registered under the customer are passed in separately.
func toDomain(dto CustomerDTO, vehicleIDs []kernel.UUID) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id, dto.Name, customer.Type(dto.CustomerType),
		customer.BusinessInfo{
			CompanyName:   dto.CompanyName,
			TaxNumber:     dto.TaxNumber,
			Industry:      dto.Industry,
			ContactPerson: dto.ContactPerson,
		},
		dto.Phone, dto.Email, dto.Address, vehicleIDs,
	)
}
