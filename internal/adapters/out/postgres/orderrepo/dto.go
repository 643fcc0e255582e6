// Package orderrepo provides data transfer objects and mapping functions for
// repair-order persistence. The aggregate spans four tables: the order head,
// the inspection sheet rows, the quoted repair items, and the parts consumed
// by each item. Child rows are owned by the head and replaced wholesale on
// every update.
package orderrepo

import (
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/repairorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RepairOrderDTO represents the database structure for persisting the
// repair-order aggregate head. The monetary columns are derived values;
// the domain recomputes them from the repair items on restore.
type RepairOrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNo    string    `gorm:"size:32;not null;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	VehicleID  uuid.UUID `gorm:"type:uuid;index;not null"`

	Mileage   int    `gorm:"not null"`
	FaultDesc string `gorm:"size:1024"`
	Remark    string `gorm:"size:1024"`

	CustomerItems datatypes.JSON `gorm:"type:jsonb"`

	PartsAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LaborAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Status string `gorm:"size:16;not null;index"`

	MechanicID  *uuid.UUID `gorm:"type:uuid"`
	InspectorID *uuid.UUID `gorm:"type:uuid"`

	EstimatedCompletionTime *time.Time
	ActualCompletionTime    *time.Time
	DeliveryTime            *time.Time

	CustomerSignature string `gorm:"type:text"`

	Version   int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	InspectionItems []InspectionItemDTO `gorm:"foreignKey:RepairOrderID;references:ID"`
	RepairItems     []RepairItemDTO     `gorm:"foreignKey:RepairOrderID;references:ID"`
}

// TableName specifies the database table name for repair-order entities.
func (RepairOrderDTO) TableName() string {
	return "repair_orders"
}

// InspectionItemDTO represents one row of the persisted inspection sheet.
type InspectionItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	RepairOrderID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name          string    `gorm:"size:128;not null"`
	Result        string    `gorm:"size:256;not null"`
	Remark        string    `gorm:"size:512"`
}

// TableName specifies the database table name for inspection sheet rows.
func (InspectionItemDTO) TableName() string {
	return "inspection_items"
}

// RepairItemDTO represents one quoted repair task.
type RepairItemDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	RepairOrderID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name          string          `gorm:"size:128;not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Parts []RepairItemPartDTO `gorm:"foreignKey:RepairItemID;references:ID"`
}

// TableName specifies the database table name for quoted repair tasks.
func (RepairItemDTO) TableName() string {
	return "repair_items"
}

// RepairItemPartDTO represents one part consumed by a repair task. PartID is
// nil for free-text parts that are not linked to the catalog.
type RepairItemPartDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	RepairItemID int64           `gorm:"index;not null"`
	PartID       *uuid.UUID      `gorm:"type:uuid"`
	Name         string          `gorm:"size:128;not null"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for consumed parts.
func (RepairItemPartDTO) TableName() string {
	return "repair_item_parts"
}

// fromDomain converts a repair-order aggregate to its database representation,
// child rows included.
func fromDomain(aggregate *repairorder.RepairOrder) RepairOrderDTO {
	amounts := aggregate.Amounts()
	dto := RepairOrderDTO{
		ID:                      aggregate.ID().Bytes(),
		OrderNo:                 aggregate.OrderNo().String(),
		CustomerID:              aggregate.CustomerID().Bytes(),
		VehicleID:               aggregate.VehicleID().Bytes(),
		Mileage:                 aggregate.Mileage(),
		FaultDesc:               aggregate.FaultDesc(),
		Remark:                  aggregate.Remark(),
		CustomerItems:           datatypes.JSON(aggregate.CustomerItems()),
		PartsAmount:             amounts.Parts,
		LaborAmount:             amounts.Labor,
		TotalAmount:             amounts.Total,
		Status:                  aggregate.Status().String(),
		MechanicID:              optionalID(aggregate.MechanicID()),
		InspectorID:             optionalID(aggregate.InspectorID()),
		EstimatedCompletionTime: aggregate.EstimatedCompletionTime(),
		ActualCompletionTime:    aggregate.ActualCompletionTime(),
		DeliveryTime:            aggregate.DeliveryTime(),
		CustomerSignature:       aggregate.CustomerSignature(),
		Version:                 aggregate.Version(),
	}

	for _, item := range aggregate.InspectionItems() {
		dto.InspectionItems = append(dto.InspectionItems, InspectionItemDTO{
			RepairOrderID: dto.ID,
			Name:          item.Name(),
			Result:        item.Result(),
			Remark:        item.Remark(),
		})
	}

	for _, item := range aggregate.RepairItems() {
		itemDTO := RepairItemDTO{
			RepairOrderID: dto.ID,
			Name:          item.Name(),
			Price:         item.Price(),
		}
		for _, part := range item.Parts() {
			itemDTO.Parts = append(itemDTO.Parts, RepairItemPartDTO{
				PartID:    optionalID(part.PartID()),
				Name:      part.Name(),
				Quantity:  part.Quantity(),
				UnitPrice: part.UnitPrice(),
			})
		}
		dto.RepairItems = append(dto.RepairItems, itemDTO)
	}

	return dto
}

// toDomain converts a database DTO, with children preloaded, to a repair-order
// aggregate.
func toDomain(dto RepairOrderDTO) (*repairorder.RepairOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	orderNo, err := repairorder.OrderNoFromString(dto.OrderNo)
	if err != nil {
		return nil, err
	}
	status, err := repairorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	mechanicID, err := optionalKernelID(dto.MechanicID)
	if err != nil {
		return nil, err
	}
	inspectorID, err := optionalKernelID(dto.InspectorID)
	if err != nil {
		return nil, err
	}

	inspectionItems := make([]repairorder.InspectionItem, 0, len(dto.InspectionItems))
	for _, itemDTO := range dto.InspectionItems {
		item, itemErr := repairorder.NewInspectionItem(itemDTO.Name, itemDTO.Result, itemDTO.Remark)
		if itemErr != nil {
			return nil, itemErr
		}
		inspectionItems = append(inspectionItems, item)
	}

	repairItems := make([]repairorder.RepairItem, 0, len(dto.RepairItems))
	for _, itemDTO := range dto.RepairItems {
		parts := make([]repairorder.Part, 0, len(itemDTO.Parts))
		for _, partDTO := range itemDTO.Parts {
			partID, idErr := optionalKernelID(partDTO.PartID)
			if idErr != nil {
				return nil, idErr
			}
			part, partErr := repairorder.NewPart(partID, partDTO.Name, partDTO.Quantity, partDTO.UnitPrice)
			if partErr != nil {
				return nil, partErr
			}
			parts = append(parts, part)
		}
		item, itemErr := repairorder.NewRepairItem(itemDTO.Name, itemDTO.Price, parts)
		if itemErr != nil {
			return nil, itemErr
		}
		repairItems = append(repairItems, item)
	}

	return repairorder.RestoreRepairOrder(
		id, orderNo, customerID, vehicleID,
		dto.Mileage, dto.FaultDesc, dto.Remark,
		inspectionItems, []byte(dto.CustomerItems), repairItems,
		status, mechanicID, inspectorID,
		dto.EstimatedCompletionTime, dto.ActualCompletionTime, dto.DeliveryTime,
		dto.CustomerSignature, dto.Version,
	)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
