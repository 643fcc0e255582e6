// Package repairorder implements the repair-order aggregate: the order
// number value object and its generator, the lifecycle state machine, the
// inspection sheet, the quoted repair items with nested parts, and the
// monetary totals derived from them.
//
// The aggregate enforces the workflow pending → inspecting → quoted →
// repairing → completed → delivered with explicit transition validation, and
// recomputes partsAmount/laborAmount/totalAmount from the repair items on
// every mutation so the totals can never drift from the line items.
package repairorder
