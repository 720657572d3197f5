package order

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a fulfillment order in the warehouse. It is the aggregate
// root that manages the order lifecycle from creation through shipment to
// delivery, together with its set of line items.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid owner
//   - Status transitions follow the explicit transition table in Status
//   - The item set may only be replaced while the order is Pending
//   - Items are replaced wholesale, never patched individually
//
// The aggregate holds no product state: whether the claimed stock exists is
// checked by the lifecycle use cases against the product ledger, softly at
// creation/edit time and authoritatively at ship time.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerUserID identifies the user the order belongs to
	ownerUserID kernel.UUID

	// orderDate is the creation timestamp, set once at creation
	orderDate time.Time

	// status is the current state in the order lifecycle
	status Status

	// items is the wholesale-replaceable set of line items
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with an empty item set.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - ownerUserID: The owning user's identifier (must be valid UUID)
//   - orderDate: Creation timestamp (must not be zero)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id, ownerUserID kernel.UUID, orderDate time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerUserID(ownerUserID),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, including its
// status and item set. Intended for use by repository implementations only.
func RestoreOrder(id, ownerUserID kernel.UUID, orderDate time.Time, status Status, items []Item) (*Order, error) {
	order, err := NewOrder(id, ownerUserID, orderDate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	order.items = append([]Item(nil), items...)

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user who owns the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerUserID
}

// OrderDate returns the creation timestamp of the order.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ReplaceItems swaps the entire item set of the order.
//
// Business rules:
//   - The order must be in Pending status; otherwise InvalidStateError
//   - Every item must be a properly constructed Item
//
// The previous item set is discarded entirely. Whether the referenced
// products exist, belong to the owner, and have sufficient stock is validated
// by the lifecycle use cases before calling this method.
func (o *Order) ReplaceItems(items []Item) error {
	if o.status != Pending {
		return errs.NewInvalidStateErrorWithCause("order status",
			errors.New("only pending orders can be edited"))
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = append([]Item(nil), items...)
	return nil
}

// ChangeStatus transitions the order to the target status.
//
// The transition is validated against the status transition table:
// Pending -> Shipped/Cancelled, Shipped -> Delivered. Illegal transitions
// fail with InvalidStateError and leave the order unchanged.
//
// Stock side effects of the Pending -> Shipped transition are performed by
// the lifecycle use case, not by the aggregate.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RequiresStockRestore reports whether deleting the order must restore stock.
// True for Shipped and Delivered orders, whose stock has already left the
// ledger; false for Pending and Cancelled orders, which never decremented it.
func (o *Order) RequiresStockRestore() bool {
	return o.status == Shipped || o.status == Delivered
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerUserID(ownerUserID kernel.UUID) error {
	if err := ownerUserID.Validate(); err != nil {
		return err
	}
	o.ownerUserID = ownerUserID
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}
