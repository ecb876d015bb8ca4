package services

import (
	"fmt"

	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/errs"
)

// Rejection reasons returned in a Verdict.
const (
	ReasonCompleted        = "order is already completed"
	ReasonCancelled        = "order is already cancelled"
	ReasonAlreadyConfirmed = "order is already confirmed"
	ReasonNoProducts       = "order has no products"
	ReasonProductsLocked   = "products are locked once the order is sent without automatic inventory deduction"
	ReasonProductConfirmed = "product is already confirmed to the kitchen"
	ReasonKitchenUpToDate  = "every product is already confirmed to the kitchen"
	ReasonUnknownAction    = "action is unknown"
	ReasonUnknownMode      = "mode is unknown"
	ReasonNotPermitted     = "%s is not permitted while the order is %s"
)

// Verdict is the outcome of validating a single action. A rejection is data,
// not an error, so callers can render Reason directly.
type Verdict struct {
	Action  Action `json:"action"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow(a Action) Verdict {
	return Verdict{Action: a, Allowed: true}
}

func reject(a Action, reason string) Verdict {
	return Verdict{Action: a, Reason: reason}
}

// Err returns nil for an allowed verdict and an errs.ActionIsNotAllowedError
// carrying the reason otherwise.
func (v Verdict) Err() error {
	if v.Allowed {
		return nil
	}
	return errs.NewActionIsNotAllowedError(v.Action.String(), v.Reason)
}

// ActionAuthorizer decides which actions an order permits. It reads the status
// through order.ResolveStatus only and holds no state, so the zero value is
// ready to use and safe for concurrent callers.
//
// Example usage:
//
//	authorizer := services.NewActionAuthorizer()
//	actions := authorizer.PermittedActions(o, services.ModeUpdate, items)
//	if !actions.Send {
//	    // hide the send button
//	}
//
//	verdict := authorizer.CanExecute(o, services.ModeUpdate, items, services.ActionPayment)
//	if !verdict.Allowed {
//	    // show verdict.Reason
//	}
type ActionAuthorizer struct{}

// NewActionAuthorizer creates a new ActionAuthorizer instance.
func NewActionAuthorizer() ActionAuthorizer {
	return ActionAuthorizer{}
}

// PermittedActions returns the order-level actions for o. Product-level flags
// are never set here; see ProductButtonVisibility.
//
// Rules:
//   - completed and cancelled orders permit nothing
//   - create mode permits cancel, save and printKitchen once there is a line item
//   - new orders permit cancel, send, delete, payment and printTemporary, plus
//     printKitchen while a line item is not confirmed to the kitchen
//   - confirmed orders permit the same set without printKitchen
//   - sent orders permit cancel, confirm, delete, payment and printTemporary
func (a ActionAuthorizer) PermittedActions(o order.Order, mode Mode, items order.LineItems) ActionSet {
	status := o.Status()
	if status.IsTerminal() {
		return ActionSet{}
	}

	switch mode {
	case ModeCreate:
		if len(items) == 0 {
			return ActionSet{}
		}
		return newActionSet(ActionCancel, ActionSave, ActionPrintKitchen)
	case ModeUpdate:
		return a.permittedForStatus(status, items)
	default:
		return ActionSet{}
	}
}

func (a ActionAuthorizer) permittedForStatus(status order.Status, items order.LineItems) ActionSet {
	//nolint:exhaustive // terminal and unknown statuses permit nothing
	switch status {
	case order.New:
		set := newActionSet(ActionCancel, ActionSend, ActionDelete, ActionPayment, ActionPrintTemporary)
		set.PrintKitchen = items.HasUnconfirmed()
		return set
	case order.Confirmed:
		return newActionSet(ActionCancel, ActionSend, ActionDelete, ActionPayment, ActionPrintTemporary)
	case order.Sent:
		return newActionSet(ActionCancel, ActionConfirm, ActionDelete, ActionPayment, ActionPrintTemporary)
	default:
		return ActionSet{}
	}
}

// CanAddProduct reports whether line items may be added or requantified.
// Terminal orders are frozen, and so are sent orders whose inventory is not
// deducted automatically on send. Otherwise allowAddProduct decides; callers
// without an explicit override pass true.
func (a ActionAuthorizer) CanAddProduct(o order.Order, allowAddProduct bool) bool {
	status := o.Status()
	if status.IsTerminal() {
		return false
	}
	if status == order.Sent && !o.AutoDeductInventoryOnSend {
		return false
	}
	return allowAddProduct
}

// ProductButtonVisibility returns the product-level actions for one line item
// of o. Only AddProduct, RemoveProduct and UpdateQuantity are ever set.
func (a ActionAuthorizer) ProductButtonVisibility(item order.LineItem, o order.Order, allowAddProduct bool) ActionSet {
	canAdd := a.CanAddProduct(o, allowAddProduct)
	return ActionSet{
		AddProduct:     canAdd,
		UpdateQuantity: canAdd,
		RemoveProduct:  !o.Status().IsTerminal() && !item.ConfirmedToKitchen,
	}
}

// CanExecute validates one action against o and explains a rejection.
// Product-level actions are checked at order level here; use
// CanExecuteOnProduct when the line item is known.
func (a ActionAuthorizer) CanExecute(o order.Order, mode Mode, items order.LineItems, action Action) Verdict {
	if !action.IsKnown() {
		return reject(action, ReasonUnknownAction)
	}

	status := o.Status()
	if v, terminal := terminalVerdict(status, action); terminal {
		return v
	}

	if action.IsProductLevel() {
		if action != ActionRemoveProduct && !a.CanAddProduct(o, true) {
			return reject(action, ReasonProductsLocked)
		}
		return allow(action)
	}

	if mode != ModeCreate && mode != ModeUpdate {
		return reject(action, ReasonUnknownMode)
	}
	if len(items) == 0 && (mode == ModeCreate || action == ActionPayment) {
		return reject(action, ReasonNoProducts)
	}

	if a.PermittedActions(o, mode, items).Has(action) {
		return allow(action)
	}

	switch {
	case mode == ModeUpdate && action == ActionConfirm && status == order.Confirmed:
		return reject(action, ReasonAlreadyConfirmed)
	case mode == ModeUpdate && action == ActionPrintKitchen && status == order.New:
		return reject(action, ReasonKitchenUpToDate)
	default:
		return reject(action, fmt.Sprintf(ReasonNotPermitted, action, status))
	}
}

// CanExecuteOnProduct validates a product-level action against a specific
// line item, applying the same rules as ProductButtonVisibility.
func (a ActionAuthorizer) CanExecuteOnProduct(
	item order.LineItem,
	o order.Order,
	action Action,
	allowAddProduct bool,
) Verdict {
	if !action.IsProductLevel() {
		return reject(action, fmt.Sprintf(ReasonNotPermitted, action, "being edited line by line"))
	}

	if v, terminal := terminalVerdict(o.Status(), action); terminal {
		return v
	}

	buttons := a.ProductButtonVisibility(item, o, allowAddProduct)
	if buttons.Has(action) {
		return allow(action)
	}

	if action == ActionRemoveProduct {
		return reject(action, ReasonProductConfirmed)
	}
	if !a.CanAddProduct(o, true) {
		return reject(action, ReasonProductsLocked)
	}
	return reject(action, fmt.Sprintf(ReasonNotPermitted, action, o.Status()))
}

func terminalVerdict(status order.Status, action Action) (Verdict, bool) {
	//nolint:exhaustive // only terminal statuses short-circuit
	switch status {
	case order.Completed:
		return reject(action, ReasonCompleted), true
	case order.Cancelled:
		return reject(action, ReasonCancelled), true
	default:
		return Verdict{}, false
	}
}
