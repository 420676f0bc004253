package order_test

import (
	"testing"
	"time"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func validDetails(t *testing.T) order.Details {
	t.Helper()

	contact, err := order.NewContact("0500000000", "Ali")
	require.NoError(t, err)
	slot, err := kernel.ParseSlot("2024-01-01", "10:00")
	require.NoError(t, err)

	return order.Details{
		Kind:          order.KindUSB,
		Price:         decimal.NewFromInt(100),
		Contact:       contact,
		ScheduledTime: slot,
		Description:   "x",
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), validDetails(t), createdAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start unassigned with initial statuses", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, validDetails(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.KindUSB, o.Kind())
		assert.True(t, decimal.NewFromInt(100).Equal(o.Price()))
		assert.Equal(t, "Ali", o.Contact().FullName())
		assert.True(t, o.IsUnassigned())
		assert.Nil(t, o.Confirmation().Buyer())
		assert.Equal(t, order.CallNotResponse, o.Confirmation().Status())
		assert.Equal(t, 0, o.Confirmation().CallAttempts())
		assert.Equal(t, order.UserResponse, o.Fulfillment().Status())
		assert.False(t, o.Fulfillment().IsRetrying())
		assert.Nil(t, o.Fulfillment().Outcome())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.UpdatedAt())
	})

	t.Run("should accept course orders", func(t *testing.T) {
		details := validDetails(t)
		details.Kind = order.KindCourse

		o, err := order.NewOrder(kernel.NewUUID(), details, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.KindCourse, o.Kind())
	})

	t.Run("should report every missing field at once", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Details{}, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, field := range []string{"type", "price", "contact", "time", "description"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		details := validDetails(t)
		details.Kind = "book"

		_, err := order.NewOrder(kernel.NewUUID(), details, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non positive price", func(t *testing.T) {
		details := validDetails(t)
		details.Price = decimal.NewFromInt(-5)

		_, err := order.NewOrder(kernel.NewUUID(), details, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, validDetails(t), createdAt)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewContact(t *testing.T) {
	_, err := order.NewContact("", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "phoneNumber")
	assert.Contains(t, err.Error(), "fullName")
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_SetConfirmationStatus(t *testing.T) {
	t.Run("each call_not_response adds exactly one attempt", func(t *testing.T) {
		o := newOrder(t)

		for i := 0; i < 3; i++ {
			require.NoError(t, o.SetConfirmationStatus(order.CallNotResponse))
		}

		assert.Equal(t, 3, o.Confirmation().CallAttempts())
	})

	t.Run("other statuses leave the counter alone", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetConfirmationStatus(order.CallNotResponse))

		require.NoError(t, o.SetConfirmationStatus(order.CallConfirmed))
		require.NoError(t, o.SetConfirmationStatus(order.PhoneClosed))

		assert.Equal(t, order.PhoneClosed, o.Confirmation().Status())
		assert.Equal(t, 1, o.Confirmation().CallAttempts())
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		o := newOrder(t)
		sequence := []order.ConfirmationStatus{
			order.CallConfirmed, order.PhoneClosed, order.CallConfirmed, order.CallNotResponse, order.CallConfirmed,
		}

		for _, s := range sequence {
			require.NoError(t, o.SetConfirmationStatus(s))
			assert.Equal(t, s, o.Confirmation().Status())
		}
	})

	t.Run("unknown status is rejected without side effects", func(t *testing.T) {
		o := newOrder(t)

		err := o.SetConfirmationStatus("maybe")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.CallNotResponse, o.Confirmation().Status())
		assert.Equal(t, 0, o.Confirmation().CallAttempts())
	})
}

func TestOrder_Assignments(t *testing.T) {
	o := newOrder(t)
	confirmer := kernel.NewUUID()
	buyer := kernel.NewUUID()

	require.NoError(t, o.AssignConfirmer(confirmer))
	require.NoError(t, o.AssignBuyer(buyer))

	assert.False(t, o.IsUnassigned())
	assert.True(t, o.Confirmation().Confirmer().IsEqual(confirmer))
	assert.True(t, o.Confirmation().Buyer().IsEqual(buyer))

	require.ErrorIs(t, o.AssignConfirmer(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
	assert.True(t, o.Confirmation().Confirmer().IsEqual(confirmer))
}

func TestOrder_ScheduleRendezvous(t *testing.T) {
	o := newOrder(t)
	slot, err := kernel.ParseSlot("2024-02-01T00:00:00.000Z", "14:00")
	require.NoError(t, err)

	require.NoError(t, o.ScheduleRendezvous(slot))

	require.NotNil(t, o.Confirmation().Rendezvous())
	assert.Equal(t, "2024-02-01 14:00", o.Confirmation().Rendezvous().String())
	require.ErrorIs(t, o.ScheduleRendezvous(kernel.Slot{}), kernel.ErrSlotIsNotConstructed)
}

func TestOrder_Fulfillment(t *testing.T) {
	t.Run("status and retrying flag are independent", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.SetFulfillmentStatus(order.UserPhoneClosed))
		o.SetRetrying(true)

		assert.Equal(t, order.UserPhoneClosed, o.Fulfillment().Status())
		assert.True(t, o.Fulfillment().IsRetrying())
	})

	t.Run("outcome requires an assigned buyer", func(t *testing.T) {
		o := newOrder(t)
		outcome, err := order.NewOutcome(order.Sold, order.CashOnDelivery, "", "")
		require.NoError(t, err)

		err = o.RecordOutcome(outcome)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), order.ErrBuyerIsNotAssigned.Error())
		assert.Nil(t, o.Fulfillment().Outcome())
	})

	t.Run("outcome is recorded once a buyer exists", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AssignBuyer(kernel.NewUUID()))
		outcome, err := order.NewOutcome(order.Sold, order.OnlinePayment, "", "")
		require.NoError(t, err)

		require.NoError(t, o.RecordOutcome(outcome))

		require.NotNil(t, o.Fulfillment().Outcome())
		assert.Equal(t, order.Sold, o.Fulfillment().Outcome().Response())
		assert.Equal(t, order.OnlinePayment, o.Fulfillment().Outcome().PaymentMethod())
	})

	t.Run("follow-up needs retrying or interested_later", func(t *testing.T) {
		o := newOrder(t)
		slot, _ := kernel.ParseSlot("2024-03-01", "09:00")

		require.ErrorIs(t, o.ScheduleFollowUp(slot), errs.ErrValueIsInvalid)

		require.NoError(t, o.SetFulfillmentStatus(order.Retrying))
		require.NoError(t, o.ScheduleFollowUp(slot))
		assert.True(t, o.Fulfillment().FollowUp().IsEqual(slot))
	})

	t.Run("follow-up after interested_later", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AssignBuyer(kernel.NewUUID()))
		outcome, _ := order.NewOutcome(order.InterestedLater, "", "", "")
		require.NoError(t, o.RecordOutcome(outcome))
		slot, _ := kernel.ParseSlot("2024-03-01", "09:00")

		require.NoError(t, o.ScheduleFollowUp(slot))
	})

	t.Run("normalize resets buyer status", func(t *testing.T) {
		o := newOrder(t)
		o.SetRetrying(true)

		o.NormalizeFulfillment()

		assert.Equal(t, order.NotProcessedYet, o.Fulfillment().Status())
		assert.False(t, o.Fulfillment().IsRetrying())
	})
}

func TestRestoreOrder(t *testing.T) {
	contact, _ := order.NewContact("0500000000", "Ali")
	slot, _ := kernel.ParseSlot("2024-01-01", "10:00")
	confirmer := kernel.NewUUID()
	params := order.RestoreParams{
		ID:                 kernel.NewUUID(),
		Kind:               order.KindCourse,
		Price:              decimal.RequireFromString("49.90"),
		Contact:            contact,
		ScheduledTime:      slot,
		Description:        "desc",
		ConfirmerID:        &confirmer,
		ConfirmationStatus: order.CallConfirmed,
		CallAttempts:       4,
		FulfillmentStatus:  order.NotProcessedYet,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt.Add(time.Hour),
	}

	t.Run("should restore persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(params)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, 4, o.Confirmation().CallAttempts())
		assert.True(t, o.Confirmation().Confirmer().IsEqual(confirmer))
		assert.Equal(t, createdAt.Add(time.Hour), o.UpdatedAt())
	})

	t.Run("should reject negative call attempts", func(t *testing.T) {
		bad := params
		bad.CallAttempts = -1

		_, err := order.RestoreOrder(bad)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		bad := params
		bad.FulfillmentStatus = "lost"

		_, err := order.RestoreOrder(bad)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
