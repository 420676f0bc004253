package order

import (
	"fmt"

	"salesdesk/internal/pkg/errs"
)

// Response is the buyer's conclusion about the sale.
type Response string

const (
	Sold            Response = "sold"
	InterestedLater Response = "interested_later"
	NotSold         Response = "not_sold"
)

// PaymentMethod is required for sold orders.
type PaymentMethod string

const (
	OnlinePayment  PaymentMethod = "online_payment"
	CashOnDelivery PaymentMethod = "cash_on_delivery"
)

// ReasonNotSold is required for not_sold orders.
type ReasonNotSold string

const (
	ReasonPriceHigh     ReasonNotSold = "price_high"
	ReasonNeedsTime     ReasonNotSold = "needs_time"
	ReasonAfraidScam    ReasonNotSold = "afraid_scam"
	ReasonNotInterested ReasonNotSold = "not_interested"
	ReasonNoDecision    ReasonNotSold = "no_decision"
	ReasonOther         ReasonNotSold = "other"
)

// Outcome is the buyer's recorded result. Only the fields matching the
// response are kept: a sold outcome carries a payment method and a not_sold
// outcome carries a reason with an optional free-text explanation.
type Outcome struct {
	response      Response
	paymentMethod PaymentMethod
	reasonNotSold ReasonNotSold
	customReason  string
}

// NewOutcome validates the combination of fields for the given response and
// drops the ones that do not apply to it.
func NewOutcome(
	response Response,
	paymentMethod PaymentMethod,
	reason ReasonNotSold,
	customReason string,
) (Outcome, error) {
	switch response {
	case Sold:
		if err := validatePaymentMethod(paymentMethod); err != nil {
			return Outcome{}, err
		}
		return Outcome{response: Sold, paymentMethod: paymentMethod}, nil
	case NotSold:
		if err := validateReason(reason); err != nil {
			return Outcome{}, err
		}
		return Outcome{response: NotSold, reasonNotSold: reason, customReason: customReason}, nil
	case InterestedLater:
		return Outcome{response: InterestedLater}, nil
	case "":
		return Outcome{}, errs.NewValueIsRequiredError("buyerResponse")
	default:
		return Outcome{}, errs.NewValueIsInvalidErrorWithCause(
			"buyerResponse",
			fmt.Errorf("%q is not a valid buyer response", string(response)),
		)
	}
}

func validatePaymentMethod(m PaymentMethod) error {
	switch m {
	case OnlinePayment, CashOnDelivery:
		return nil
	case "":
		return errs.NewValueIsRequiredError("paymentMethod")
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

func validateReason(r ReasonNotSold) error {
	switch r {
	case ReasonPriceHigh, ReasonNeedsTime, ReasonAfraidScam, ReasonNotInterested, ReasonNoDecision, ReasonOther:
		return nil
	case "":
		return errs.NewValueIsRequiredError("reasonNotSold")
	default:
		return errs.NewValueIsInvalidErrorWithCause("reasonNotSold", fmt.Errorf("%q is not a valid reason", string(r)))
	}
}

func (o Outcome) Response() Response {
	return o.response
}

func (o Outcome) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o Outcome) ReasonNotSold() ReasonNotSold {
	return o.reasonNotSold
}

func (o Outcome) CustomReason() string {
	return o.customReason
}

// Validate rejects the zero Outcome.
func (o Outcome) Validate() error {
	if o.response == "" {
		return errs.NewValueIsRequiredError("buyerResponse")
	}
	return nil
}
