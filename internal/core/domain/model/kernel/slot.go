package kernel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"salesdesk/internal/pkg/errs"
)

// DayLayout is the wire and display format of Slot days.
const DayLayout = "2006-01-02"

// ErrSlotIsNotConstructed is returned when validating a zero-value Slot.
var ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot or ParseSlot")

// Slot is a calendar day with a free-form hour label ("10:00", "evening").
// The day is normalised to midnight UTC so that two slots on the same date
// compare equal regardless of how the date was written.
type Slot struct {
	day  time.Time
	hour string
}

// NewSlot truncates day to its UTC calendar date and keeps hour verbatim.
func NewSlot(day time.Time, hour string) (Slot, error) {
	if day.IsZero() {
		return Slot{}, errs.NewValueIsRequiredError("day")
	}
	if strings.TrimSpace(hour) == "" {
		return Slot{}, errs.NewValueIsRequiredError("hour")
	}

	y, m, d := day.UTC().Date()
	return Slot{
		day:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		hour: hour,
	}, nil
}

// ParseSlot accepts either a plain date ("2024-01-01") or an RFC 3339
// timestamp for day, which is what browsers send for date pickers.
func ParseSlot(day, hour string) (Slot, error) {
	if strings.TrimSpace(day) == "" {
		return Slot{}, errs.NewValueIsRequiredError("day")
	}

	parsed, err := time.Parse(DayLayout, day)
	if err != nil {
		var rfcErr error
		parsed, rfcErr = time.Parse(time.RFC3339, day)
		if rfcErr != nil {
			return Slot{}, errs.NewValueIsInvalidErrorWithCause("day", fmt.Errorf("%q is not a date", day))
		}
	}

	return NewSlot(parsed, hour)
}

// Day returns the normalised date at midnight UTC.
func (s Slot) Day() time.Time {
	return s.day
}

// Hour returns the hour label as supplied.
func (s Slot) Hour() string {
	return s.hour
}

// Validate returns ErrSlotIsNotConstructed for the zero value.
func (s Slot) Validate() error {
	if s.day.IsZero() || s.hour == "" {
		return ErrSlotIsNotConstructed
	}
	return nil
}

// IsEqual compares day and hour.
func (s Slot) IsEqual(other Slot) bool {
	return s.day.Equal(other.day) && s.hour == other.hour
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %s", s.day.Format(DayLayout), s.hour)
}
