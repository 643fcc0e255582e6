package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction started by Begin().
	CustomerRepository() CustomerRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction started by Begin().
	VehicleRepository() VehicleRepository

	// RepairOrderRepository returns a RepairOrderRepository bound to the
	// current transaction started by Begin().
	RepairOrderRepository() RepairOrderRepository

	// AppointmentRepository returns an AppointmentRepository bound to the
	// current transaction started by Begin().
	AppointmentRepository() AppointmentRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction started by Begin().
	UserRepository() UserRepository
}
