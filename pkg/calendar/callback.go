package calendar

import (
	"strings"
	"time"

	"github.com/nikmy/labforms/pkg/errors"
)

type Action int

const (
	// Ignore is sent by decorative cells.
	Ignore Action = iota

	// Show asks to redraw the widget for another month.
	Show

	// Pick reports a chosen day.
	Pick
)

func encode(cmd string, date time.Time) string {
	return cmd + "/" + date.Format(dateFormat)
}

// Parse decodes the callback payload of a widget button.
func Parse(data string) (Action, time.Time, error) {
	cmd, raw, ok := strings.Cut(data, "/")
	if !ok {
		return Ignore, time.Time{}, errors.Errorf("calendar: wrong callback data %q", data)
	}

	date, err := time.Parse(dateFormat, raw)
	if err != nil {
		return Ignore, time.Time{}, errors.WrapFailf(err, "parse calendar date %q", raw)
	}

	switch cmd {
	case cmdNoop:
		return Ignore, date, nil
	case cmdPrev, cmdNext:
		return Show, date, nil
	case cmdDay:
		return Pick, date, nil
	default:
		return Ignore, time.Time{}, errors.Errorf("calendar: wrong command %q", cmd)
	}
}
