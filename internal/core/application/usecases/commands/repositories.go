// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"autoshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// RepairOrderRepoFactory provides access to the repair order repository within a transaction.
	RepairOrderRepoFactory interface {
		RepairOrderRepository() ports.RepairOrderRepository
	}

	// AppointmentRepoFactory provides access to the appointment repository within a transaction.
	AppointmentRepoFactory interface {
		AppointmentRepository() ports.AppointmentRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// IntakeUoW manages transactions for vehicle intake. Intake may create a
	// customer, a vehicle, and a repair order in one business transaction,
	// so all three repositories share it.
	IntakeUoW interface {
		TxManager
		CustomerRepoFactory
		VehicleRepoFactory
		RepairOrderRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// RepairOrderUoW manages transactions for repair-order-only operations.
	RepairOrderUoW interface {
		TxManager
		RepairOrderRepoFactory
	}

	// RepairOrderUoWFactory creates new repair order unit of work instances.
	RepairOrderUoWFactory interface {
		Create() RepairOrderUoW
	}

	// AppointmentUoW manages transactions for appointment operations.
	// Booking validates the referenced customer and vehicle, so their
	// repositories are available alongside the appointment repository.
	AppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
		CustomerRepoFactory
		VehicleRepoFactory
	}

	// AppointmentUoWFactory creates new appointment unit of work instances.
	AppointmentUoWFactory interface {
		Create() AppointmentUoW
	}

	// UserUoW manages transactions for user account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
