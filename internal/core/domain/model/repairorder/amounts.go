package repairorder

import "github.com/shopspring/decimal"

// Amounts holds the monetary totals derived from a repair order's items.
// They are never set by a caller; CalculateAmounts recomputes them at the
// boundary of every mutation that touches the repair items, so the invariant
//
//	Total = Parts + Labor
//	Parts = Σ over items, parts of (unitPrice × quantity)
//	Labor = Σ over items of price
//
// holds after every write.
type Amounts struct {
	Parts decimal.Decimal
	Labor decimal.Decimal
	Total decimal.Decimal
}

// ZeroAmounts returns the totals of an order with no repair items.
func ZeroAmounts() Amounts {
	return Amounts{Parts: decimal.Zero, Labor: decimal.Zero, Total: decimal.Zero}
}

// CalculateAmounts derives the totals from a list of repair items.
// It is a pure function: same items in, same totals out.
func CalculateAmounts(items []RepairItem) Amounts {
	parts := decimal.Zero
	labor := decimal.Zero

	for _, item := range items {
		parts = parts.Add(item.PartsSubtotal())
		labor = labor.Add(item.Price())
	}

	return Amounts{
		Parts: parts,
		Labor: labor,
		Total: parts.Add(labor),
	}
}

// IsEqual compares two Amounts value-wise.
func (a Amounts) IsEqual(other Amounts) bool {
	return a.Parts.Equal(other.Parts) &&
		a.Labor.Equal(other.Labor) &&
		a.Total.Equal(other.Total)
}
