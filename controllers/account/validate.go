package accountControllers

import "regexp"

const minPasswordLength = 6

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{7,15}$`)
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// validateRegistration returns the offending field and a message, or
// empty strings when the input is acceptable.
func validateRegistration(input registerInput) (field, message string) {
	if !validEmail(input.Email) {
		return "email", "Please enter a valid email address"
	}
	if input.PhoneNumber != "" && !validPhone(input.PhoneNumber) {
		return "phoneNumber", "Please enter a valid phone number"
	}
	if len(input.Password) < minPasswordLength {
		return "password", "Password must be at least 6 characters"
	}
	if input.Password != input.ConfirmPassword {
		return "confirmPassword", "Passwords do not match"
	}
	return "", ""
}
