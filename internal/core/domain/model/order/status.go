package order

import (
	"fmt"

	"salesdesk/internal/pkg/errs"
)

// Kind is the product an order is about. It never changes after creation.
type Kind string

const (
	KindUSB    Kind = "usb"
	KindCourse Kind = "course"
)

// Validate accepts usb and course only.
func (k Kind) Validate() error {
	switch k {
	case KindUSB, KindCourse:
		return nil
	case "":
		return errs.NewValueIsRequiredError("type")
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid order type", string(k)))
	}
}

// Label is the human readable product name used in notifications.
func (k Kind) Label() string {
	if k == KindUSB {
		return "USB"
	}
	return "course"
}

// ConfirmationStatus is the outcome of the confirmer's latest call.
//
// There is no transition table: any status may follow any other. Entering
// CallNotResponse is the only transition with a side effect (see
// Order.SetConfirmationStatus).
type ConfirmationStatus string

const (
	CallConfirmed   ConfirmationStatus = "call_confirmed"
	CallNotResponse ConfirmationStatus = "call_not_response"
	PhoneClosed     ConfirmationStatus = "phone_closed"
)

func (s ConfirmationStatus) Validate() error {
	switch s {
	case CallConfirmed, CallNotResponse, PhoneClosed:
		return nil
	case "":
		return errs.NewValueIsRequiredError("status")
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid confirmation status", string(s)))
	}
}

// FulfillmentStatus tracks the buyer's progress with the client.
type FulfillmentStatus string

const (
	NotProcessedYet FulfillmentStatus = "not_processed_yet"
	UserResponse    FulfillmentStatus = "user_response"
	UserPhoneClosed FulfillmentStatus = "user_phone_closed"
	Retrying        FulfillmentStatus = "retrying"
)

func (s FulfillmentStatus) Validate() error {
	switch s {
	case NotProcessedYet, UserResponse, UserPhoneClosed, Retrying:
		return nil
	case "":
		return errs.NewValueIsRequiredError("status")
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid buyer status", string(s)))
	}
}
