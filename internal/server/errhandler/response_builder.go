package errhandler

import (
	"fmt"
)

var ResponseBuilder = func(code int, msg string, details string) string {
	if details == "" {
		return fmt.Sprintf("%d %s\n", code, msg)
	}
	return fmt.Sprintf("%d %s\n%s\n", code, msg, details)
}
