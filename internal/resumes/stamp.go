package resumes

import (
	"fmt"
	"time"
)

// Stamp renders t as "DD-MM-YYYY, HH:MM" in local time with zero-padded
// fields. The web client displays this string verbatim, so the format is part
// of the contract.
func Stamp(t time.Time) string {
	return fmt.Sprintf("%02d-%02d-%02d, %02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute())
}
