package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrBuyerIsNotAssigned is the cause reported when an outcome is recorded
	// on an order that has no buyer yet.
	ErrBuyerIsNotAssigned = errors.New("order has no assigned buyer")

	// ErrFollowUpIsNotApplicable is the cause reported when a follow-up is
	// scheduled while the buyer is neither retrying nor waiting on an
	// interested_later client.
	ErrFollowUpIsNotApplicable = errors.New("follow-up requires retrying status or interested_later response")
)

// Contact is the client's phone number and full name.
type Contact struct {
	phoneNumber string
	fullName    string
}

// NewContact requires both fields.
func NewContact(phoneNumber, fullName string) (Contact, error) {
	var errPhone, errName error
	if strings.TrimSpace(phoneNumber) == "" {
		errPhone = errs.NewValueIsRequiredError("phoneNumber")
	}
	if strings.TrimSpace(fullName) == "" {
		errName = errs.NewValueIsRequiredError("fullName")
	}
	if err := errors.Join(errPhone, errName); err != nil {
		return Contact{}, err
	}

	return Contact{phoneNumber: phoneNumber, fullName: fullName}, nil
}

func (c Contact) PhoneNumber() string {
	return c.phoneNumber
}

func (c Contact) FullName() string {
	return c.fullName
}

// Details are the client supplied fields of a new order.
type Details struct {
	Kind          Kind
	Price         decimal.Decimal
	Contact       Contact
	ScheduledTime kernel.Slot
	Photo         string
	Description   string
}

// Confirmation is the confirmer's part of the order.
type Confirmation struct {
	confirmerID  *kernel.UUID
	status       ConfirmationStatus
	callAttempts int
	rendezvous   *kernel.Slot
	buyerID      *kernel.UUID
}

// Confirmer returns the assigned confirmer, or nil while the order sits in the pool.
func (c Confirmation) Confirmer() *kernel.UUID {
	return c.confirmerID
}

func (c Confirmation) Status() ConfirmationStatus {
	return c.status
}

// CallAttempts counts how many times the call was recorded as not answered.
func (c Confirmation) CallAttempts() int {
	return c.callAttempts
}

func (c Confirmation) Rendezvous() *kernel.Slot {
	return c.rendezvous
}

// Buyer returns the assigned buyer, or nil until one is assigned.
func (c Confirmation) Buyer() *kernel.UUID {
	return c.buyerID
}

// Fulfillment is the buyer's part of the order.
type Fulfillment struct {
	status     FulfillmentStatus
	isRetrying bool
	outcome    *Outcome
	followUp   *kernel.Slot
}

func (f Fulfillment) Status() FulfillmentStatus {
	return f.status
}

func (f Fulfillment) IsRetrying() bool {
	return f.isRetrying
}

// Outcome returns the recorded sale outcome, or nil if the buyer has not concluded.
func (f Fulfillment) Outcome() *Outcome {
	return f.outcome
}

func (f Fulfillment) FollowUp() *kernel.Slot {
	return f.followUp
}

// Order is the aggregate root of the sales workflow.
//
// Order follows these invariants:
//   - Identifier, kind, price, contact, scheduled time and description never
//     change after creation (price and description are client data)
//   - Call attempts only grow
//   - An outcome exists only on orders with an assigned buyer
//
// Which principal may call which mutator is decided by the visibility policy
// in the domain services package, not by the aggregate.
type Order struct {
	id              kernel.UUID
	kind            Kind
	price           decimal.Decimal
	contact         Contact
	scheduledTime   kernel.Slot
	photo           string
	description     string
	additionalNotes string
	confirmation    Confirmation
	fulfillment     Fulfillment
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates an unassigned order with the initial statuses of a client
// submission: call_not_response with zero attempts for the confirmer and
// user_response for the buyer.
//
// Example:
//
//	slot, _ := kernel.ParseSlot("2024-01-01", "10:00")
//	contact, _ := order.NewContact("0500000000", "Ali")
//	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
//	    Kind:          order.KindUSB,
//	    Price:         decimal.NewFromInt(100),
//	    Contact:       contact,
//	    ScheduledTime: slot,
//	    Description:   "x",
//	}, clk.Now())
func NewOrder(id kernel.UUID, details Details, createdAt time.Time) (*Order, error) {
	o := &Order{
		photo: details.Photo,
		confirmation: Confirmation{
			status:       CallNotResponse,
			callAttempts: 0,
		},
		fulfillment: Fulfillment{
			status: UserResponse,
		},
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setKind(details.Kind),
		o.setPrice(details.Price),
		o.setContact(details.Contact),
		o.setScheduledTime(details.ScheduledTime),
		o.setDescription(details.Description),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	ID              kernel.UUID
	Kind            Kind
	Price           decimal.Decimal
	Contact         Contact
	ScheduledTime   kernel.Slot
	Photo           string
	Description     string
	AdditionalNotes string

	ConfirmerID        *kernel.UUID
	ConfirmationStatus ConfirmationStatus
	CallAttempts       int
	Rendezvous         *kernel.Slot
	BuyerID            *kernel.UUID

	FulfillmentStatus FulfillmentStatus
	IsRetrying        bool
	Outcome           *Outcome
	FollowUp          *kernel.Slot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder rebuilds an order loaded from storage. It checks enum values
// and the call counter but does not re-run creation rules.
func RestoreOrder(p RestoreParams) (*Order, error) {
	var errAttempts error
	if p.CallAttempts < 0 {
		errAttempts = errs.NewValueIsInvalidErrorWithCause("callAttempts", fmt.Errorf("%d is negative", p.CallAttempts))
	}

	if err := errors.Join(
		p.ID.Validate(),
		p.Kind.Validate(),
		p.ConfirmationStatus.Validate(),
		p.FulfillmentStatus.Validate(),
		errAttempts,
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              p.ID,
		kind:            p.Kind,
		price:           p.Price,
		contact:         p.Contact,
		scheduledTime:   p.ScheduledTime,
		photo:           p.Photo,
		description:     p.Description,
		additionalNotes: p.AdditionalNotes,
		confirmation: Confirmation{
			confirmerID:  p.ConfirmerID,
			status:       p.ConfirmationStatus,
			callAttempts: p.CallAttempts,
			rendezvous:   p.Rendezvous,
			buyerID:      p.BuyerID,
		},
		fulfillment: Fulfillment{
			status:     p.FulfillmentStatus,
			isRetrying: p.IsRetrying,
			outcome:    p.Outcome,
			followUp:   p.FollowUp,
		},
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Kind() Kind {
	return o.kind
}

func (o *Order) Price() decimal.Decimal {
	return o.price
}

func (o *Order) Contact() Contact {
	return o.contact
}

func (o *Order) ScheduledTime() kernel.Slot {
	return o.scheduledTime
}

func (o *Order) Photo() string {
	return o.photo
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) AdditionalNotes() string {
	return o.additionalNotes
}

func (o *Order) Confirmation() Confirmation {
	return o.confirmation
}

func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsUnassigned reports whether the order is in the confirmer pool.
func (o *Order) IsUnassigned() bool {
	return o.confirmation.confirmerID == nil
}

// AssignConfirmer sets or replaces the confirmer. The caller is responsible for
// checking that id belongs to a user with the confirmer role.
func (o *Order) AssignConfirmer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.confirmation.confirmerID = &id
	return nil
}

// AssignBuyer sets or replaces the buyer. The caller is responsible for
// checking that id belongs to a user with the buyer role.
func (o *Order) AssignBuyer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.confirmation.buyerID = &id
	return nil
}

// SetConfirmationStatus assigns status unconditionally. Every call that sets
// call_not_response adds one call attempt, even if the status was already
// call_not_response.
func (o *Order) SetConfirmationStatus(status ConfirmationStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.confirmation.status = status
	if status == CallNotResponse {
		o.confirmation.callAttempts++
	}
	return nil
}

// ScheduleRendezvous replaces the rendezvous.
func (o *Order) ScheduleRendezvous(slot kernel.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	o.confirmation.rendezvous = &slot
	return nil
}

// SetAdditionalNotes overwrites the notes; an empty string clears them.
func (o *Order) SetAdditionalNotes(notes string) {
	o.additionalNotes = notes
}

// SetFulfillmentStatus assigns status unconditionally.
func (o *Order) SetFulfillmentStatus(status FulfillmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.fulfillment.status = status
	return nil
}

// SetRetrying sets the retrying flag independently of the status.
func (o *Order) SetRetrying(retrying bool) {
	o.fulfillment.isRetrying = retrying
}

// RecordOutcome stores the buyer's conclusion. It fails while no buyer is assigned.
func (o *Order) RecordOutcome(outcome Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	if o.confirmation.buyerID == nil {
		return errs.NewValueIsInvalidErrorWithCause("buyerResponse", ErrBuyerIsNotAssigned)
	}

	o.fulfillment.outcome = &outcome
	return nil
}

// ScheduleFollowUp records when the buyer will contact the client again. Only
// valid while retrying or after an interested_later outcome.
func (o *Order) ScheduleFollowUp(slot kernel.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	interestedLater := o.fulfillment.outcome != nil && o.fulfillment.outcome.Response() == InterestedLater
	if o.fulfillment.status != Retrying && !interestedLater {
		return errs.NewValueIsInvalidErrorWithCause("followUp", ErrFollowUpIsNotApplicable)
	}

	o.fulfillment.followUp = &slot
	return nil
}

// NormalizeFulfillment resets the buyer status to not_processed_yet and clears
// the retrying flag. Used by the bulk normalisation of client submissions.
func (o *Order) NormalizeFulfillment() {
	o.fulfillment.status = NotProcessedYet
	o.fulfillment.isRetrying = false
}

// Touch records the instant of the latest modification.
func (o *Order) Touch(at time.Time) {
	o.updatedAt = at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

func (o *Order) setPrice(price decimal.Decimal) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setContact(contact Contact) error {
	if contact.phoneNumber == "" || contact.fullName == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	o.contact = contact
	return nil
}

func (o *Order) setScheduledTime(slot kernel.Slot) error {
	if err := slot.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("time", err)
	}
	o.scheduledTime = slot
	return nil
}

func (o *Order) setDescription(description string) error {
	if err := ValidateDescription(description); err != nil {
		return err
	}
	o.description = description
	return nil
}

// ValidatePrice requires a strictly positive amount.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price.String()))
	}
	return nil
}

// ValidateDescription requires a non-blank description.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	return nil
}
