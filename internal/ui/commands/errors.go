package commands

import (
	"errors"
	"fmt"

	"icsselect/internal/calendar"
)

// loadErrorBody turns a load failure into the text of the warning dialog
func loadErrorBody(name string, err error) string {
	var (
		parseErr *calendar.ParseError
		emptyErr *calendar.EmptyInputError
		ioErr    *calendar.IOError
	)
	switch {
	case errors.As(err, &emptyErr):
		return fmt.Sprintf("%s does not contain any events.\n\nPress any key to pick another file.", name)
	case errors.As(err, &parseErr):
		return fmt.Sprintf("%s is not a valid calendar file:\n%v\n\nPress any key to pick another file.", name, parseErr.Err)
	case errors.As(err, &ioErr):
		return fmt.Sprintf("%s could not be read:\n%v\n\nPress any key to pick another file.", name, ioErr.Err)
	default:
		return fmt.Sprintf("%s could not be opened:\n%v\n\nPress any key to pick another file.", name, err)
	}
}
