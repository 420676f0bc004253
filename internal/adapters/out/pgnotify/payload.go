// Package pgnotify spreads order notifications across service instances
// through PostgreSQL LISTEN/NOTIFY.
//
// NOTIFY payloads are limited to 8000 bytes, so only the event kind and the
// order identifier travel through the database. Every instance, including
// the one that produced the event, reloads the order and broadcasts it to its
// own listeners.
package pgnotify

import (
	"encoding/json"
	"fmt"

	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/pkg/errs"
)

// Payload is the NOTIFY body.
type Payload struct {
	Kind    notifications.Kind `json:"kind"`
	OrderID kernel.UUID        `json:"orderId"`
}

// Encode serialises the payload after checking it.
func (p Payload) Encode() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p Payload) Validate() error {
	if err := p.Kind.Validate(); err != nil {
		return err
	}
	return p.OrderID.Validate()
}

// DecodePayload parses and checks a NOTIFY body.
func DecodePayload(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, errs.NewValueIsInvalidErrorWithCause("payload", fmt.Errorf("decode %q: %w", raw, err))
	}
	if err := p.Validate(); err != nil {
		return Payload{}, err
	}
	return p, nil
}
