package commands

import (
	"errors"

	"salesdesk/internal/pkg/guard"
)

var ErrNormalizeFulfillmentCommandIsNotConstructed = errors.New(
	"NormalizeFulfillmentCommand must be created via NewNormalizeFulfillmentCommand constructor",
)

// NormalizeFulfillmentCommand resets the buyer status of every order to
// not_processed_yet and clears the retrying flag. It is an operator task run
// from the command line, not an API operation.
type NormalizeFulfillmentCommand struct {
	guard guard.ConstructorGuard
}

func NewNormalizeFulfillmentCommand() NormalizeFulfillmentCommand {
	return NormalizeFulfillmentCommand{guard: guard.NewConstructorGuard()}
}

func (c NormalizeFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrNormalizeFulfillmentCommandIsNotConstructed)
}
