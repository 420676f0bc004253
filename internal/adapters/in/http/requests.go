package http

import (
	"strings"

	"salesdesk/internal/core/application/usecases/commands"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

type slotRequest struct {
	Day  string `json:"day"`
	Hour string `json:"hour"`
}

type createOrderRequest struct {
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	PhoneNumber string          `json:"phoneNumber"`
	FullName    string          `json:"fullName"`
	Time        slotRequest     `json:"time"`
	Photo       *string         `json:"photo"`
	Description string          `json:"description"`
	ConfirmerID *string         `json:"confirmerId"`
	BuyerID     *string         `json:"buyerId"`
}

func (r createOrderRequest) toInput() (commands.CreateOrderInput, error) {
	confirmerID, err := optionalUUID("confirmerId", r.ConfirmerID)
	if err != nil {
		return commands.CreateOrderInput{}, err
	}
	buyerID, err := optionalUUID("buyerId", r.BuyerID)
	if err != nil {
		return commands.CreateOrderInput{}, err
	}

	photo := ""
	if r.Photo != nil {
		photo = *r.Photo
	}

	return commands.CreateOrderInput{
		Kind:        r.Type,
		Price:       r.Price,
		PhoneNumber: r.PhoneNumber,
		FullName:    r.FullName,
		Day:         r.Time.Day,
		Hour:        r.Time.Hour,
		Photo:       photo,
		Description: r.Description,
		ConfirmerID: confirmerID,
		BuyerID:     buyerID,
	}, nil
}

type rendezvousRequest struct {
	Date string `json:"date"`
	Hour string `json:"hour"`
}

type confirmationRequest struct {
	Status           *string            `json:"status"`
	Rendezvous       *rendezvousRequest `json:"rendezvous"`
	CurrentConfirmer *string            `json:"currentConfirmer"`
	Buyer            *string            `json:"buyer"`
	AdditionalNotes  *string            `json:"additionalNotes"`
}

func (r confirmationRequest) toPatch() (commands.ConfirmationPatch, error) {
	patch := commands.ConfirmationPatch{
		AdditionalNotes: r.AdditionalNotes,
	}
	if r.Status != nil {
		status := order.ConfirmationStatus(*r.Status)
		patch.Status = &status
	}

	var err error
	if patch.ConfirmerID, err = optionalUUID("currentConfirmer", r.CurrentConfirmer); err != nil {
		return commands.ConfirmationPatch{}, err
	}
	if patch.BuyerID, err = optionalUUID("buyer", r.Buyer); err != nil {
		return commands.ConfirmationPatch{}, err
	}

	if r.Rendezvous != nil && r.Rendezvous.Date != "" {
		slot, err := kernel.ParseSlot(r.Rendezvous.Date, r.Rendezvous.Hour)
		if err != nil {
			return commands.ConfirmationPatch{}, errs.NewValueIsInvalidErrorWithCause("rendezvous", err)
		}
		patch.Rendezvous = &slot
	}

	return patch, nil
}

type fulfillmentRequest struct {
	Status        string `json:"status"`
	IsRetrying    *bool  `json:"isRetrying"`
	BuyerResponse string `json:"buyerResponse"`
	PaymentMethod string `json:"paymentMethod"`
	ReasonNotSold string `json:"reasonNotSold"`
	CustomReason  string `json:"customReason"`
	FollowUpDate  string `json:"followUpDate"`
	FollowUpTime  string `json:"followUpTime"`
}

// toPatch builds the buyer patch. The outcome is only present when a response
// was given, the follow-up only when a date was given.
func (r fulfillmentRequest) toPatch() (commands.FulfillmentPatch, error) {
	patch := commands.FulfillmentPatch{
		Status:     order.FulfillmentStatus(r.Status),
		IsRetrying: r.IsRetrying,
	}

	if r.BuyerResponse != "" {
		outcome, err := order.NewOutcome(
			order.Response(r.BuyerResponse),
			order.PaymentMethod(r.PaymentMethod),
			order.ReasonNotSold(r.ReasonNotSold),
			r.CustomReason,
		)
		if err != nil {
			return commands.FulfillmentPatch{}, err
		}
		patch.Outcome = &outcome
	}

	if strings.TrimSpace(r.FollowUpDate) != "" {
		slot, err := kernel.ParseSlot(r.FollowUpDate, r.FollowUpTime)
		if err != nil {
			return commands.FulfillmentPatch{}, errs.NewValueIsInvalidErrorWithCause("followUp", err)
		}
		patch.FollowUp = &slot
	}

	return patch, nil
}

func optionalUUID(name string, raw *string) (*kernel.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

// bindBody decodes the JSON body. Decoding failures are reported as invalid
// input instead of echo's default message.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// orderIDParam reads the :id path parameter.
func orderIDParam(c echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromGoogle(id)
}
