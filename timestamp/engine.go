// Package timestamp converts a date/time/timezone selection into Discord
// timestamp markup: an epoch-seconds value plus labeled previews of how
// each format code renders.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrNoDate is returned by Resolve when no date was selected. Callers
// show an empty preview table rather than an error.
var ErrNoDate = errors.New("no date selected")

const dateLayout = "2006-01-02"

// Selection is the user-facing input triple. It is ephemeral state and
// never persisted.
type Selection struct {
	Date      string // calendar date, "2006-01-02"; empty means nothing selected
	TimeOfDay string // 24-hour "HH:MM"; malformed components count as 0
	Zone      string // IANA identifier; empty defaults to UTC
}

// Preview is one row of the format table. Syntax is the copyable chat
// string: "<t:EPOCH:CODE>" for coded entries, the bare decimal epoch
// for the UNIX row.
type Preview struct {
	Label   string `json:"label"`
	Code    string `json:"code"`
	Example string `json:"example"`
	Syntax  string `json:"syntax"`
}

// The six absolute Discord formats, in display order. Rendering is
// locale-independent: 24-hour clock, weekday and month spelled out for
// the long variants.
var formatters = []struct {
	label  string
	code   string
	layout string
}{
	{"Short Time", "t", "15:04"},
	{"Long Time", "T", "15:04:05"},
	{"Short Date", "d", "01/02/2006"},
	{"Long Date", "D", "Monday, January 2, 2006"},
	{"Short Date & Time", "f", "January 2, 2006 15:04"},
	{"Long Date & Time", "F", "Monday, January 2, 2006 15:04"},
}

// Resolve interprets the selection's wall-clock fields in its timezone
// and returns the described instant. ErrNoDate when no date is set; an
// unknown timezone is an error.
func Resolve(sel Selection) (time.Time, error) {
	if sel.Date == "" {
		return time.Time{}, ErrNoDate
	}

	zone := sel.Zone
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown timezone %q: %w", zone, err)
	}

	date, err := time.ParseInLocation(dateLayout, sel.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", sel.Date, err)
	}

	hour, minute := parseTimeOfDay(sel.TimeOfDay)

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}

// EpochSeconds is the floor of t's seconds since the Unix epoch,
// negative for instants before 1970.
func EpochSeconds(t time.Time) int64 {
	return t.Unix()
}

// Previews returns the ordered format table for target: the six
// absolute formats, the relative entry (worded against anchor), and the
// raw UNIX entry. The anchor is supplied by the caller so the relative
// wording is deterministic; it is captured once per recomputation, not
// continuously.
func Previews(target, anchor time.Time) []Preview {
	epoch := EpochSeconds(target)

	previews := make([]Preview, 0, len(formatters)+2)
	for _, f := range formatters {
		previews = append(previews, Preview{
			Label:   f.label,
			Code:    f.code,
			Example: target.Format(f.layout),
			Syntax:  Syntax(epoch, f.code),
		})
	}

	previews = append(previews, Preview{
		Label:   "Relative",
		Code:    "R",
		Example: Relative(target, anchor),
		Syntax:  Syntax(epoch, "R"),
	})
	previews = append(previews, Preview{
		Label:   "UNIX Timestamp",
		Code:    "",
		Example: strconv.FormatInt(epoch, 10),
		Syntax:  Syntax(epoch, ""),
	})

	return previews
}

// Syntax builds the copyable string for a format code. An empty code
// yields the bare epoch decimal.
func Syntax(epoch int64, code string) string {
	if code == "" {
		return strconv.FormatInt(epoch, 10)
	}
	return fmt.Sprintf("<t:%d:%s>", epoch, code)
}

// Relative words the distance between target and anchor, e.g.
// "3 hours from now" or "2 days ago".
func Relative(target, anchor time.Time) string {
	return humanize.RelTime(target, anchor, "ago", "from now")
}

// parseTimeOfDay splits "HH:MM"; missing or non-numeric components
// become 0.
func parseTimeOfDay(s string) (hour, minute int) {
	parts := strings.Split(s, ":")
	if len(parts) > 0 {
		hour, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return hour, minute
}
