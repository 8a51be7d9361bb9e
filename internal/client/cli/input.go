package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetInt prompts for a whole number and re-prompts until one is entered.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(w, "Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

// Confirm asks a yes/no question and returns true only for an explicit
// "y" or "yes" (case-insensitive). Anything else, including an empty line,
// counts as no.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	s, err := GetSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// InlineEdit shows the current value and prompts for a replacement. An empty
// line cancels the edit: the returned value is exactly the snapshot passed
// in, and changed is false. This is what makes cancel restore the pre-edit
// value verbatim.
func InlineEdit(reader *bufio.Reader, label, current string, w io.Writer) (value string, changed bool, err error) {
	prompt := fmt.Sprintf("%s [%s] (empty line keeps current)", label, current)
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return current, false, err
	}
	if s == "" {
		return current, false, nil
	}
	return s, true, nil
}
