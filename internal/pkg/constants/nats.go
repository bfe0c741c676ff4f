package constants

// NATS Subjects
const (
	// Order events consumed by the notification pipeline
	SubjectOrderPlaced = "orders.placed"

	// Profile events
	SubjectProfileVerified = "profile.verified"
)
