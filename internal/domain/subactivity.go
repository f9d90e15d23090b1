package domain

import "github.com/google/uuid"

// SubActivity is a nested item within an activity (e.g. individual rides at
// a theme park). It belongs to exactly one TimedActivity or UntimedActivity.
// Ownership lives in the parent's slice — there is no back-pointer, so
// deletion is always driven top-down from the owning collection.
type SubActivity struct {
	ID       uuid.UUID
	What     string
	Context  string
	Priority Priority
	Place    *string
}
