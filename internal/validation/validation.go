package validation

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxContentLength bounds chat messages and forum posts, in characters.
const MaxContentLength = 2000

// DateLayout is the form/API layout for appointment dates.
const DateLayout = "2006-01-02"

// PhonePattern allows digits with common separators.
var PhonePattern = regexp.MustCompile(`^\+?[0-9()\-.\s]+$`)

// ValidateEmail checks that email is a bare address.
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false, "Please enter a valid email address"
	}
	return true, ""
}

// ValidatePhone checks the phone has an allowed shape and 7-15 digits.
func ValidatePhone(phone string) (bool, string) {
	if phone == "" {
		return false, "Phone number is required"
	}
	if !PhonePattern.MatchString(phone) {
		return false, "Phone number may only contain digits, spaces, and + ( ) - ."
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 || digits > 15 {
		return false, "Phone number must have between 7 and 15 digits"
	}
	return true, ""
}

// ParseAppointmentDate parses a YYYY-MM-DD date in loc.
func ParseAppointmentDate(value string, loc *time.Location) (time.Time, bool, string) {
	if value == "" {
		return time.Time{}, false, "Please choose a date"
	}
	d, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, false, "Date must be in YYYY-MM-DD format"
	}
	return d, true, ""
}

// ValidateAppointmentDate rejects dates before today. Today itself is allowed.
func ValidateAppointmentDate(date, now time.Time) (bool, string) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return false, "Appointment date cannot be in the past"
	}
	return true, ""
}

// ValidateContent checks user-written text is present and not too long.
func ValidateContent(content string) (bool, string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return false, "Message cannot be empty"
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return false, "Message is too long"
	}
	return true, ""
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateResourceLink allows the "#" placeholder or a safe http(s) URL.
func ValidateResourceLink(link string) (bool, string) {
	if link == "#" {
		return true, ""
	}
	return ValidateURL(link)
}

// AppointmentInput is the raw booking form.
type AppointmentInput struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Date     string `json:"date" form:"date"`
}

// ValidateAppointment checks every field and returns the parsed date plus
// one message per invalid field. An empty map means the input is valid.
func ValidateAppointment(in AppointmentInput, now time.Time) (time.Time, map[string]string) {
	errs := make(map[string]string)

	if strings.TrimSpace(in.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	if ok, msg := ValidateEmail(strings.TrimSpace(in.Email)); !ok {
		errs["email"] = msg
	}
	if ok, msg := ValidatePhone(strings.TrimSpace(in.Phone)); !ok {
		errs["phone"] = msg
	}

	date, ok, msg := ParseAppointmentDate(strings.TrimSpace(in.Date), now.Location())
	if !ok {
		errs["date"] = msg
	} else if ok, msg := ValidateAppointmentDate(date, now); !ok {
		errs["date"] = msg
	}

	return date, errs
}
