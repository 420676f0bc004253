// Package views renders order aggregates into the JSON documents returned by
// the API and carried by notifications, with assigned users resolved to their
// display names.
package views

import (
	"context"
	"time"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// UserRef is an assigned user as shown on an order. Username and role are
// empty when the user no longer exists in the directory.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

type TimeView struct {
	Day  time.Time `json:"day"`
	Hour string    `json:"hour"`
}

type RendezvousView struct {
	Date time.Time `json:"date"`
	Hour string    `json:"hour"`
}

type ConfirmerView struct {
	CurrentConfirmer *UserRef                 `json:"currentConfirmer"`
	Status           order.ConfirmationStatus `json:"status"`
	CallAttempts     int                      `json:"callAttempts"`
	Rendezvous       *RendezvousView          `json:"rendezvous,omitempty"`
	Buyer            *UserRef                 `json:"buyer"`
}

type BuyerView struct {
	Status        order.FulfillmentStatus `json:"status"`
	IsRetrying    bool                    `json:"isRetrying"`
	BuyerResponse order.Response          `json:"buyerResponse,omitempty"`
	PaymentMethod order.PaymentMethod     `json:"paymentMethod,omitempty"`
	ReasonNotSold order.ReasonNotSold     `json:"reasonNotSold,omitempty"`
	CustomReason  string                  `json:"customReason,omitempty"`
	FollowUpDate  *time.Time              `json:"followUpDate,omitempty"`
	FollowUpTime  string                  `json:"followUpTime,omitempty"`
}

// OrderView is the external representation of an order.
type OrderView struct {
	ID              string          `json:"id"`
	Type            order.Kind      `json:"type"`
	Price           decimal.Decimal `json:"price"`
	PhoneNumber     string          `json:"phoneNumber"`
	FullName        string          `json:"fullName"`
	Time            TimeView        `json:"time"`
	Photo           *string         `json:"photo"`
	Description     string          `json:"description"`
	AdditionalNotes *string         `json:"additionalNotes"`
	Confirmer       ConfirmerView   `json:"confirmer"`
	Buyer           BuyerView       `json:"buyer"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// UserLookup resolves assigned users. ports.UserRepository satisfies it.
type UserLookup interface {
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*user.User, error)
}

// ResolveOrder renders a single order.
func ResolveOrder(ctx context.Context, lookup UserLookup, o *order.Order) (OrderView, error) {
	rendered, err := ResolveOrders(ctx, lookup, []*order.Order{o})
	if err != nil {
		return OrderView{}, err
	}
	return rendered[0], nil
}

// ResolveOrders renders orders in their given order, loading every
// referenced user with a single lookup.
func ResolveOrders(ctx context.Context, lookup UserLookup, orders []*order.Order) ([]OrderView, error) {
	ids := referencedUsers(orders)

	directory := make(map[kernel.UUID]*user.User, len(ids))
	if len(ids) > 0 {
		users, err := lookup.GetMany(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			directory[u.ID()] = u
		}
	}

	rendered := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		rendered = append(rendered, NewOrderView(o, directory))
	}
	return rendered, nil
}

// NewOrderView renders o using an already loaded user directory.
func NewOrderView(o *order.Order, directory map[kernel.UUID]*user.User) OrderView {
	c := o.Confirmation()
	f := o.Fulfillment()

	v := OrderView{
		ID:          o.ID().String(),
		Type:        o.Kind(),
		Price:       o.Price(),
		PhoneNumber: o.Contact().PhoneNumber(),
		FullName:    o.Contact().FullName(),
		Time: TimeView{
			Day:  o.ScheduledTime().Day(),
			Hour: o.ScheduledTime().Hour(),
		},
		Photo:           optional(o.Photo()),
		Description:     o.Description(),
		AdditionalNotes: optional(o.AdditionalNotes()),
		Confirmer: ConfirmerView{
			CurrentConfirmer: userRef(c.Confirmer(), directory),
			Status:           c.Status(),
			CallAttempts:     c.CallAttempts(),
			Buyer:            userRef(c.Buyer(), directory),
		},
		Buyer: BuyerView{
			Status:     f.Status(),
			IsRetrying: f.IsRetrying(),
		},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}

	if r := c.Rendezvous(); r != nil {
		v.Confirmer.Rendezvous = &RendezvousView{Date: r.Day(), Hour: r.Hour()}
	}
	if out := f.Outcome(); out != nil {
		v.Buyer.BuyerResponse = out.Response()
		v.Buyer.PaymentMethod = out.PaymentMethod()
		v.Buyer.ReasonNotSold = out.ReasonNotSold()
		v.Buyer.CustomReason = out.CustomReason()
	}
	if fu := f.FollowUp(); fu != nil {
		day := fu.Day()
		v.Buyer.FollowUpDate = &day
		v.Buyer.FollowUpTime = fu.Hour()
	}

	return v
}

func referencedUsers(orders []*order.Order) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	ids := make([]kernel.UUID, 0)
	for _, o := range orders {
		for _, ref := range []*kernel.UUID{o.Confirmation().Confirmer(), o.Confirmation().Buyer()} {
			if ref == nil {
				continue
			}
			if _, ok := seen[*ref]; ok {
				continue
			}
			seen[*ref] = struct{}{}
			ids = append(ids, *ref)
		}
	}
	return ids
}

func userRef(id *kernel.UUID, directory map[kernel.UUID]*user.User) *UserRef {
	if id == nil {
		return nil
	}
	ref := &UserRef{ID: id.String()}
	if u, ok := directory[*id]; ok {
		ref.Username = u.Username()
		ref.Role = u.Role().String()
	}
	return ref
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
