package constants

// ContextKeyUserID is the Gin context key under which the authentication
// middleware stores the current user's ID.
const ContextKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// DefaultWeeklyTarget is applied when a habit is created without an explicit
// weekly target.
const DefaultWeeklyTarget = 1

// Weekly targets are bounded by the number of days in a week.
const (
	MinWeeklyTarget = 1
	MaxWeeklyTarget = 7
)

// MaxTitleLength bounds habit titles.
const MaxTitleLength = 100
