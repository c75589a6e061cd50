package models

import "time"

// DateLayout is the calendar-date format accepted from forms and used
// to repopulate date inputs. HTML date inputs submit exactly this shape.
const DateLayout = "2006-01-02"

// dateMedium matches the medium locale date style the views render,
// e.g. "Mar 15, 2024".
const dateMedium = "Jan 2, 2006"

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateMedium)
}

func formatDateISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
