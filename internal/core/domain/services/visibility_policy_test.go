package services_test

import (
	"testing"
	"time"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/core/domain/services"
	"salesdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principal(t *testing.T, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	contact, _ := order.NewContact("0500000000", "Ali")
	slot, _ := kernel.ParseSlot("2024-01-01", "10:00")
	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Kind:          order.KindUSB,
		Price:         decimal.NewFromInt(100),
		Contact:       contact,
		ScheduledTime: slot,
		Description:   "x",
	}, time.Now())
	require.NoError(t, err)
	return o
}

func TestVisibilityPolicy_ReadWrite(t *testing.T) {
	policy := services.NewVisibilityPolicy()

	admin := principal(t, kernel.RoleAdmin)
	confirmer := principal(t, kernel.RoleConfirmer)
	otherConfirmer := principal(t, kernel.RoleConfirmer)
	buyer := principal(t, kernel.RoleBuyer)
	otherBuyer := principal(t, kernel.RoleBuyer)
	client := principal(t, kernel.RoleClient)

	pool := newOrder(t)
	owned := newOrder(t)
	require.NoError(t, owned.AssignConfirmer(confirmer.ID()))
	require.NoError(t, owned.AssignBuyer(buyer.ID()))

	tests := []struct {
		name      string
		principal kernel.Principal
		o         *order.Order
		read      bool
		write     bool
	}{
		{"admin on pool", admin, pool, true, true},
		{"admin on owned", admin, owned, true, true},
		{"confirmer on pool", confirmer, pool, true, false},
		{"confirmer on own", confirmer, owned, true, true},
		{"confirmer on foreign", otherConfirmer, owned, false, false},
		{"buyer on own", buyer, owned, true, true},
		{"buyer on foreign", otherBuyer, owned, false, false},
		{"buyer on pool", buyer, pool, false, false},
		{"client", client, owned, false, false},
		{"anonymous", kernel.Anonymous(), pool, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.read, policy.CanRead(tt.principal, tt.o))
			assert.Equal(t, tt.write, policy.CanWrite(tt.principal, tt.o))
		})
	}
}

func TestVisibilityPolicy_AuthorizeUpdates(t *testing.T) {
	policy := services.NewVisibilityPolicy()

	admin := principal(t, kernel.RoleAdmin)
	confirmer := principal(t, kernel.RoleConfirmer)
	buyer := principal(t, kernel.RoleBuyer)

	pool := newOrder(t)
	owned := newOrder(t)
	require.NoError(t, owned.AssignConfirmer(confirmer.ID()))
	require.NoError(t, owned.AssignBuyer(buyer.ID()))

	t.Run("confirmation", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeConfirmationUpdate(admin, pool))
		require.NoError(t, policy.AuthorizeConfirmationUpdate(confirmer, owned))
		require.ErrorIs(t, policy.AuthorizeConfirmationUpdate(confirmer, pool), errs.ErrAccessDenied)
		require.ErrorIs(t, policy.AuthorizeConfirmationUpdate(buyer, owned), errs.ErrAccessDenied)
	})

	t.Run("fulfillment", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeFulfillmentUpdate(admin, pool))
		require.NoError(t, policy.AuthorizeFulfillmentUpdate(buyer, owned))
		require.ErrorIs(t, policy.AuthorizeFulfillmentUpdate(buyer, pool), errs.ErrAccessDenied)
		require.ErrorIs(t, policy.AuthorizeFulfillmentUpdate(confirmer, owned), errs.ErrAccessDenied)
	})

	t.Run("admin", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeAdmin(admin))
		require.ErrorIs(t, policy.AuthorizeAdmin(confirmer), errs.ErrAccessDenied)
		require.ErrorIs(t, policy.AuthorizeAdmin(kernel.Anonymous()), errs.ErrAccessDenied)
	})

	t.Run("read", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeRead(confirmer, pool))
		require.ErrorIs(t, policy.AuthorizeRead(buyer, pool), errs.ErrAccessDenied)
	})
}

func TestVisibilityPolicy_CriteriaFor(t *testing.T) {
	policy := services.NewVisibilityPolicy()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	since := now.Add(-5 * time.Minute)

	admin := principal(t, kernel.RoleAdmin)
	confirmer := principal(t, kernel.RoleConfirmer)
	buyer := principal(t, kernel.RoleBuyer)
	confirmerID := confirmer.ID()
	buyerID := buyer.ID()

	allowed := []struct {
		name      string
		principal kernel.Principal
		scope     services.Scope
		want      order.Criteria
	}{
		{"admin recent", admin, services.ScopeRecent, order.Criteria{CreatedSince: &since}},
		{"confirmer recent", confirmer, services.ScopeRecent, order.Criteria{ConfirmerID: &confirmerID, CreatedSince: &since}},
		{"admin all", admin, services.ScopeAll, order.Criteria{}},
		{"confirmer own", confirmer, services.ScopeConfirmer, order.Criteria{ConfirmerID: &confirmerID}},
		{"confirmer pool", confirmer, services.ScopeUnassigned, order.Criteria{UnassignedOnly: true}},
		{"buyer own", buyer, services.ScopeBuyer, order.Criteria{BuyerID: &buyerID}},
	}
	for _, tt := range allowed {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.CriteriaFor(tt.principal, tt.scope, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	denied := []struct {
		name      string
		principal kernel.Principal
		scope     services.Scope
	}{
		{"buyer recent", buyer, services.ScopeRecent},
		{"confirmer all", confirmer, services.ScopeAll},
		{"admin unassigned", admin, services.ScopeUnassigned},
		{"admin buyer", admin, services.ScopeBuyer},
		{"buyer confirmer", buyer, services.ScopeConfirmer},
		{"anonymous all", kernel.Anonymous(), services.ScopeAll},
	}
	for _, tt := range denied {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policy.CriteriaFor(tt.principal, tt.scope, now)
			require.ErrorIs(t, err, errs.ErrAccessDenied)
		})
	}

	t.Run("unknown scope", func(t *testing.T) {
		_, err := policy.CriteriaFor(admin, "everything", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
