package services

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Ownable is any resource that belongs to exactly one user.
// Product and Order aggregates implement it through their OwnerID accessors.
type Ownable interface {
	ID() kernel.UUID
	OwnerID() kernel.UUID
}

// OwnershipGuard is a domain service that enforces per-user tenant isolation.
// A resource is authorized for an acting user iff its stored owner equals the
// acting user's identifier; a resource without an owner is never authorized.
//
// The guard has no side effects beyond the pass/fail signal and is applied
// uniformly before any item read or mutation of products and orders.
//
// Example usage:
//
//	guard := services.NewOwnershipGuard()
//	if err := guard.Authorize("order", someOrder, actingUserID); err != nil {
//	    // errors.Is(err, errs.ErrUnauthorized) == true
//	    return err
//	}
type OwnershipGuard struct{}

// NewOwnershipGuard creates a new OwnershipGuard instance.
func NewOwnershipGuard() OwnershipGuard {
	return OwnershipGuard{}
}

// Authorize checks that resource belongs to the acting user.
//
// Parameters:
//   - resourceName: Name used in the error message (e.g. "product", "order")
//   - resource: The owned resource under access
//   - actingUserID: The identifier of the user performing the operation
//
// Returns nil when the stored owner equals actingUserID; an UnauthorizedError
// otherwise. A resource with a zero owner always fails.
func (g OwnershipGuard) Authorize(resourceName string, resource Ownable, actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	owner := resource.OwnerID()
	if owner.IsZero() {
		return errs.NewUnauthorizedErrorWithCause(resourceName, resource.ID().String(), actingUserID.String(),
			errors.New("resource has no owner"))
	}

	if !owner.IsEqual(actingUserID) {
		return errs.NewUnauthorizedError(resourceName, resource.ID().String(), actingUserID.String())
	}

	return nil
}
