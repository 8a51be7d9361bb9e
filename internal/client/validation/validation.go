// Package validation holds the client-side form and file checks that run
// before any network call. Validation is sequential; callers surface the
// first failing check.
package validation

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidUsername = errors.New("username must be 3-20 characters long and contain only letters and numbers")
	ErrWeakPassword    = errors.New("password must be at least 8 characters, include uppercase, lowercase, number, and special character")
	ErrInvalidEmail    = errors.New("please enter a valid email address")

	ErrFileType     = errors.New("file type is not allowed")
	ErrFileTooLarge = errors.New("file exceeds the maximum size of 10 MiB")
)

// MaxFileSize is the upload limit in bytes.
const MaxFileSize = 10 << 20

const passwordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// allowedExtensions lists the upload types the backend accepts, without the
// leading dot.
var allowedExtensions = map[string]struct{}{
	"doc": {}, "docx": {}, "ppt": {}, "pptx": {}, "txt": {},
	"jpg": {}, "xlsx": {}, "xls": {}, "pdf": {},
}

// Username checks the 3-20 alphanumeric rule.
func Username(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// Password requires at least 8 characters with a lowercase letter, an
// uppercase letter, a digit, and a special character. Go's regexp has no
// lookahead, so the four classes are checked explicitly; the accepted
// language matches the form's pattern.
func Password(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !lower || !upper || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}

// Email checks the usual "something@domain.tld" shape.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Registration runs the checks in form order: username, then password,
// then email. The first failure wins.
func Registration(username, password, email string) error {
	if err := Username(username); err != nil {
		return err
	}
	if err := Password(password); err != nil {
		return err
	}
	return Email(email)
}

// Upload verifies a file's extension and size before it leaves the client.
func Upload(filename string, size int64) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrFileType
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}
