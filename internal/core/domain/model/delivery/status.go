package delivery

// Status represents the lifecycle state of a delivery.
//
// Unlike a closed enum, Status is deliberately an open string: the status
// endpoint accepts any caller-supplied value verbatim for backward
// compatibility, including transitions that make no business sense. The
// constants below are the values the system itself assigns or reacts to.
//
// Observed lifecycle:
//
//	created ──(location submitted)──> location_received ──(status set externally)──> any caller string
//
// Only StatusCompleted and StatusFailed trigger a customer notification;
// every other value is persisted silently.
type Status string

const (
	// StatusCreated is assigned when a delivery is first registered.
	StatusCreated Status = "created"

	// StatusLocationReceived is assigned when the customer shares a GPS position.
	StatusLocationReceived Status = "location_received"

	// StatusCompleted marks a successful delivery; triggers a confirmation SMS.
	StatusCompleted Status = "completed"

	// StatusFailed marks a failed delivery; triggers a support SMS.
	StatusFailed Status = "failed"
)

// String returns the raw status value.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}
