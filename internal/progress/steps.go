package progress

// Status is a booking status tag as reported by the lookup API.
type Status string

// Recognized booking statuses, in lifecycle order.
const (
	StatusAwaitingReview      Status = "awaiting-review"
	StatusUnderReview         Status = "under-review"
	StatusReservationAccepted Status = "reservation-accepted"
	StatusRoomAssigned        Status = "room-assigned"
	StatusCancelled           Status = "cancelled"
)

// Step is one entry of the ordered step catalog.
type Step struct {
	Key   Status
	Label string
}

// The canonical catalog. Cancellation is only recognized as the last entry.
var canonicalSteps = [...]Step{
	{Key: StatusAwaitingReview, Label: "รอตรวจ"},
	{Key: StatusUnderReview, Label: "กำลังตรวจสอบ"},
	{Key: StatusReservationAccepted, Label: "ได้รับการจอง"},
	{Key: StatusRoomAssigned, Label: "ได้ห้องแล้ว"},
	{Key: StatusCancelled, Label: "ยกเลิก"},
}

// Steps returns a copy of the canonical step catalog.
func Steps() []Step {
	steps := make([]Step, len(canonicalSteps))
	copy(steps, canonicalSteps[:])
	return steps
}

// IsKnown reports whether s is one of the recognized statuses.
func IsKnown(s string) bool {
	for _, step := range canonicalSteps {
		if string(step.Key) == s {
			return true
		}
	}
	return false
}
