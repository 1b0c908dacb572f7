package appointment

import "github.com/cannaconscious/booking-api/internal/models"

// SlotTemplate is the fixed ordered list of bookable times in a business day.
var SlotTemplate = []string{
	"9:00 AM", "10:00 AM", "11:00 AM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
}

func IsValidSlot(slot string) bool {
	for _, s := range SlotTemplate {
		if s == slot {
			return true
		}
	}
	return false
}

// Partition splits the slot template into open and taken slots given the
// non-canceled appointments already on a date. Both lists keep template
// order; taken slots are reported once even if the store holds duplicates.
func Partition(existing []models.Appointment) (available, booked []string) {
	taken := make(map[string]bool, len(existing))
	for _, ap := range existing {
		taken[ap.TimeSlot] = true
	}

	available = make([]string, 0, len(SlotTemplate))
	booked = make([]string, 0, len(existing))

	for _, slot := range SlotTemplate {
		if taken[slot] {
			booked = append(booked, slot)
		} else {
			available = append(available, slot)
		}
	}

	return available, booked
}
