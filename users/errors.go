package users

import "fmt"

// UserNotFound is the failure of a profile lookup for an unknown user.
// It is a comparable value, so errors.Is matches it through any wrapping.
type UserNotFound struct {
	UserID UserID
}

func (e UserNotFound) Error() string {
	return fmt.Sprintf("user with ID %s does not exist", e.UserID)
}
