package repairorder

import (
	"errors"

	"autoshop/internal/pkg/errs"
)

// InspectionItem is one row of the inspection sheet: what was checked, what
// was found, and an optional note. Items are value objects; the inspection
// update replaces the whole sheet rather than merging rows.
type InspectionItem struct {
	name   string
	result string
	remark string
}

// NewInspectionItem creates an inspection row. Name and result are required;
// remark may be empty.
func NewInspectionItem(name, result, remark string) (InspectionItem, error) {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("inspection item name"))
	}
	if result == "" {
		errList = append(errList, errs.NewValueIsRequiredError("inspection item result"))
	}
	if err := errors.Join(errList...); err != nil {
		return InspectionItem{}, err
	}

	return InspectionItem{name: name, result: result, remark: remark}, nil
}

// Name returns the name of the checked item.
func (i InspectionItem) Name() string {
	return i.name
}

// Result returns the inspection finding.
func (i InspectionItem) Result() string {
	return i.result
}

// Remark returns the optional note, empty when none was recorded.
func (i InspectionItem) Remark() string {
	return i.remark
}
