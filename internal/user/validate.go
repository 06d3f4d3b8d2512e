package user

import "regexp"

// emailPattern mirrors the signup/login rule: at least one @, at least one
// dot after it, no embedded @ in either segment.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const minPasswordLength = 6
