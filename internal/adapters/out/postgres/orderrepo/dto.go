// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// The aggregate is flattened into a single "orders" table; optional value
// objects (rendezvous, outcome, follow-up) map to nullable columns.
package orderrepo

import (
	"time"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps come from the domain clock, so GORM's automatic tracking is off.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind               string          `gorm:"type:varchar(16);not null"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PhoneNumber        string          `gorm:"not null"`
	FullName           string          `gorm:"not null"`
	Scheduled          SlotDTO         `gorm:"embedded;embeddedPrefix:scheduled_"`
	Photo              string
	Description        string `gorm:"not null"`
	AdditionalNotes    string
	ConfirmerID        *uuid.UUID  `gorm:"type:uuid;index"`
	ConfirmationStatus string      `gorm:"type:varchar(32);not null"`
	CallAttempts       int         `gorm:"not null;default:0"`
	Rendezvous         NullSlotDTO `gorm:"embedded;embeddedPrefix:rendezvous_"`
	BuyerID            *uuid.UUID  `gorm:"type:uuid;index"`
	FulfillmentStatus  string      `gorm:"type:varchar(32);not null"`
	IsRetrying         bool        `gorm:"not null;default:false"`
	BuyerResponse      *string     `gorm:"type:varchar(32)"`
	PaymentMethod      *string     `gorm:"type:varchar(32)"`
	ReasonNotSold      *string     `gorm:"type:varchar(32)"`
	CustomReason       *string
	FollowUp           NullSlotDTO `gorm:"embedded;embeddedPrefix:follow_up_"`
	CreatedAt          time.Time   `gorm:"index;autoCreateTime:false"`
	UpdatedAt          time.Time   `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// SlotDTO stores a required day and hour.
type SlotDTO struct {
	Day  time.Time `gorm:"type:date"`
	Hour string
}

// NullSlotDTO stores an optional day and hour.
type NullSlotDTO struct {
	Day  *time.Time `gorm:"type:date"`
	Hour *string
}

func slotFromDomain(s kernel.Slot) SlotDTO {
	return SlotDTO{Day: s.Day(), Hour: s.Hour()}
}

func nullSlotFromDomain(s *kernel.Slot) NullSlotDTO {
	if s == nil {
		return NullSlotDTO{}
	}
	day := s.Day()
	hour := s.Hour()
	return NullSlotDTO{Day: &day, Hour: &hour}
}

func (s NullSlotDTO) toDomain() (*kernel.Slot, error) {
	if s.Day == nil || s.Hour == nil {
		return nil, nil
	}
	slot, err := kernel.NewSlot(*s.Day, *s.Hour)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func stringPtr[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	c := o.Confirmation()
	f := o.Fulfillment()

	dto := OrderDTO{
		ID:                 o.ID().Bytes(),
		Kind:               string(o.Kind()),
		Price:              o.Price(),
		PhoneNumber:        o.Contact().PhoneNumber(),
		FullName:           o.Contact().FullName(),
		Scheduled:          slotFromDomain(o.ScheduledTime()),
		Photo:              o.Photo(),
		Description:        o.Description(),
		AdditionalNotes:    o.AdditionalNotes(),
		ConfirmerID:        uuidPtr(c.Confirmer()),
		ConfirmationStatus: string(c.Status()),
		CallAttempts:       c.CallAttempts(),
		Rendezvous:         nullSlotFromDomain(c.Rendezvous()),
		BuyerID:            uuidPtr(c.Buyer()),
		FulfillmentStatus:  string(f.Status()),
		IsRetrying:         f.IsRetrying(),
		FollowUp:           nullSlotFromDomain(f.FollowUp()),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}

	if outcome := f.Outcome(); outcome != nil {
		dto.BuyerResponse = stringPtr(outcome.Response())
		dto.PaymentMethod = stringPtr(outcome.PaymentMethod())
		dto.ReasonNotSold = stringPtr(outcome.ReasonNotSold())
		dto.CustomReason = stringPtr(outcome.CustomReason())
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewContact(dto.PhoneNumber, dto.FullName)
	if err != nil {
		return nil, err
	}

	scheduled, err := kernel.NewSlot(dto.Scheduled.Day, dto.Scheduled.Hour)
	if err != nil {
		return nil, err
	}

	confirmerID, err := kernelPtr(dto.ConfirmerID)
	if err != nil {
		return nil, err
	}

	buyerID, err := kernelPtr(dto.BuyerID)
	if err != nil {
		return nil, err
	}

	rendezvous, err := dto.Rendezvous.toDomain()
	if err != nil {
		return nil, err
	}

	followUp, err := dto.FollowUp.toDomain()
	if err != nil {
		return nil, err
	}

	var outcome *order.Outcome
	if dto.BuyerResponse != nil {
		restored, outcomeErr := order.NewOutcome(
			order.Response(*dto.BuyerResponse),
			order.PaymentMethod(deref(dto.PaymentMethod)),
			order.ReasonNotSold(deref(dto.ReasonNotSold)),
			deref(dto.CustomReason),
		)
		if outcomeErr != nil {
			return nil, outcomeErr
		}
		outcome = &restored
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                 id,
		Kind:               order.Kind(dto.Kind),
		Price:              dto.Price,
		Contact:            contact,
		ScheduledTime:      scheduled,
		Photo:              dto.Photo,
		Description:        dto.Description,
		AdditionalNotes:    dto.AdditionalNotes,
		ConfirmerID:        confirmerID,
		ConfirmationStatus: order.ConfirmationStatus(dto.ConfirmationStatus),
		CallAttempts:       dto.CallAttempts,
		Rendezvous:         rendezvous,
		BuyerID:            buyerID,
		FulfillmentStatus:  order.FulfillmentStatus(dto.FulfillmentStatus),
		IsRetrying:         dto.IsRetrying,
		Outcome:            outcome,
		FollowUp:           followUp,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}
