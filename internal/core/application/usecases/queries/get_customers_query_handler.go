package queries

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler serves the customer directory with direct SQL.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for directory queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the directory query with an optional keyword filter on
// name and phone.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) (GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomersQueryResponse{}, err
	}

	pattern := "%" + query.Keyword() + "%"

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM customers
		WHERE (? = '' OR name LIKE ? OR phone LIKE ?)
	`, query.Keyword(), pattern, pattern).Scan(&total).Error
	if err != nil {
		return GetCustomersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.customer_type,
			c.company_name,
			c.phone,
			c.email,
			c.address,
			COUNT(v.id)
		FROM customers c
		LEFT JOIN vehicles v ON v.customer_id = c.id
		WHERE (? = '' OR c.name LIKE ? OR c.phone LIKE ?)
		GROUP BY c.id, c.name, c.customer_type, c.company_name, c.phone, c.email, c.address
		ORDER BY c.name
		LIMIT ? OFFSET ?
	`, query.Keyword(), pattern, pattern, query.Size(), query.Offset()).Rows()
	if err != nil {
		return GetCustomersQueryResponse{}, err
	}
	defer rows.Close()

	customers := make([]CustomerSummary, 0, query.Size())
	for rows.Next() {
		var (
			summary CustomerSummary
			id      uuid.UUID
		)
		err = rows.Scan(
			&id,
			&summary.Name,
			&summary.CustomerType,
			&summary.CompanyName,
			&summary.Phone,
			&summary.Email,
			&summary.Address,
			&summary.VehicleCount,
		)
		if err != nil {
			return GetCustomersQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetCustomersQueryResponse{}, err
		}
		customers = append(customers, summary)
	}
	if err = rows.Err(); err != nil {
		return GetCustomersQueryResponse{}, err
	}

	return GetCustomersQueryResponse{Total: total, Customers: customers}, nil
}
