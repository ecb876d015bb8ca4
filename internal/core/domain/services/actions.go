package services

import (
	"fmt"

	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/pkg/errs"
)

// Action is a user-triggered operation on an order or one of its products.
type Action string

const (
	ActionCancel         Action = "cancel"
	ActionSave           Action = "save"
	ActionConfirm        Action = "confirm"
	ActionSend           Action = "send"
	ActionPayment        Action = "payment"
	ActionDelete         Action = "delete"
	ActionPrintKitchen   Action = "printKitchen"
	ActionPrintTemporary Action = "printTemporary"
	ActionAddProduct     Action = "addProduct"
	ActionRemoveProduct  Action = "removeProduct"
	ActionUpdateQuantity Action = "updateQuantity"
)

// AllActions lists every action in a stable order.
func AllActions() []Action {
	return []Action{
		ActionCancel,
		ActionSave,
		ActionConfirm,
		ActionSend,
		ActionPayment,
		ActionDelete,
		ActionPrintKitchen,
		ActionPrintTemporary,
		ActionAddProduct,
		ActionRemoveProduct,
		ActionUpdateQuantity,
	}
}

// ParseAction converts an external action name. "receive" is accepted as an
// alias of payment.
func ParseAction(s string) (Action, error) {
	if s == "receive" {
		return ActionPayment, nil
	}
	a := Action(s)
	if !a.IsKnown() {
		return "", errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%q is not a known action", s))
	}
	return a, nil
}

// IsKnown reports whether a is one of AllActions.
func (a Action) IsKnown() bool {
	switch a {
	case ActionCancel, ActionSave, ActionConfirm, ActionSend, ActionPayment, ActionDelete,
		ActionPrintKitchen, ActionPrintTemporary, ActionAddProduct, ActionRemoveProduct, ActionUpdateQuantity:
		return true
	default:
		return false
	}
}

// IsProductLevel reports whether the action targets a single line item.
func (a Action) IsProductLevel() bool {
	return a == ActionAddProduct || a == ActionRemoveProduct || a == ActionUpdateQuantity
}

func (a Action) String() string {
	return string(a)
}

// Mode tells whether the order being edited is already persisted.
type Mode string

const (
	// ModeCreate is an in-memory order that has never been saved.
	ModeCreate Mode = "create"
	// ModeUpdate is an order loaded from the order store.
	ModeUpdate Mode = "update"
)

// ParseMode converts an external mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeCreate, ModeUpdate:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("mode is invalid",
			fmt.Errorf("%q is not create or update", s))
	}
}

// ActionSet holds one flag per action. The zero value permits nothing.
type ActionSet struct {
	Cancel         bool `json:"cancel"`
	Save           bool `json:"save"`
	Confirm        bool `json:"confirm"`
	Send           bool `json:"send"`
	Payment        bool `json:"payment"`
	Delete         bool `json:"delete"`
	PrintKitchen   bool `json:"printKitchen"`
	PrintTemporary bool `json:"printTemporary"`
	AddProduct     bool `json:"addProduct"`
	RemoveProduct  bool `json:"removeProduct"`
	UpdateQuantity bool `json:"updateQuantity"`
}

func newActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		if flag := s.flag(a); flag != nil {
			*flag = true
		}
	}
	return s
}

// Has reports whether a is permitted.
func (s ActionSet) Has(a Action) bool {
	if flag := s.flag(a); flag != nil {
		return *flag
	}
	return false
}

// Actions returns the permitted actions in AllActions order.
func (s ActionSet) Actions() []Action {
	var actions []Action
	for _, a := range AllActions() {
		if s.Has(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// IsEmpty reports whether nothing is permitted.
func (s ActionSet) IsEmpty() bool {
	return s == ActionSet{}
}

func (s *ActionSet) flag(a Action) *bool {
	switch a {
	case ActionCancel:
		return &s.Cancel
	case ActionSave:
		return &s.Save
	case ActionConfirm:
		return &s.Confirm
	case ActionSend:
		return &s.Send
	case ActionPayment:
		return &s.Payment
	case ActionDelete:
		return &s.Delete
	case ActionPrintKitchen:
		return &s.PrintKitchen
	case ActionPrintTemporary:
		return &s.PrintTemporary
	case ActionAddProduct:
		return &s.AddProduct
	case ActionRemoveProduct:
		return &s.RemoveProduct
	case ActionUpdateQuantity:
		return &s.UpdateQuantity
	default:
		return nil
	}
}

// ActionLabel returns the button label of an action for the given F&B
// configuration. Only the wording depends on cfg: when guests pay at the
// counter, sending the order is shown as completing it.
func ActionLabel(cfg fnb.Config, a Action) string {
	switch a {
	case ActionCancel:
		return "Cancel order"
	case ActionSave:
		return "Save"
	case ActionConfirm:
		return "Confirm"
	case ActionSend:
		if cfg.SendCompletesOrder() {
			return "Complete"
		}
		return "Send"
	case ActionPayment:
		return "Payment"
	case ActionDelete:
		return "Delete"
	case ActionPrintKitchen:
		return "Send to kitchen"
	case ActionPrintTemporary:
		return "Print bill"
	case ActionAddProduct:
		return "Add product"
	case ActionRemoveProduct:
		return "Remove"
	case ActionUpdateQuantity:
		return "Change quantity"
	default:
		return string(a)
	}
}
