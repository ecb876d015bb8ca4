package order

import (
	"fmt"

	"fnbpos/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It is never stored: ResolveStatus
// derives it from the order's timestamps every time it is needed.
type Status int

const (
	// Unknown is the zero value. ResolveStatus never returns it.
	Unknown Status = iota
	New
	Confirmed
	Sent
	// Completed means the order was received (paid). Terminal.
	Completed
	// Cancelled is reachable from every non-terminal status. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Confirmed: "confirmed",
		Sent:      "sent",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ResolveStatus maps an order's timestamps to its status. The first match wins:
//
//	cancelledAt > receivedAt > sentAt > confirmedAt > new
//
// Well-formed orders never carry both cancelledAt and receivedAt, but the
// precedence is applied regardless so malformed records still classify.
func ResolveStatus(o Order) Status {
	switch {
	case o.CancelledAt != nil:
		return Cancelled
	case o.ReceivedAt != nil:
		return Completed
	case o.SentAt != nil:
		return Sent
	case o.ConfirmedAt != nil:
		return Confirmed
	default:
		return New
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further action is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MarshalText renders the lowercase name used by the API.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
