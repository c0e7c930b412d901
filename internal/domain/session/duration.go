package session

import "fmt"

// FormatDuration renders a minute count the way parking receipts show it:
// "45 minutos", "1 hora", "2 horas", "1 hora 30 min". Hours pluralize,
// minutes never do. Callers pass already-absolute values for elapsed time.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutos", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	suffix := ""
	if hours > 1 {
		suffix = "s"
	}
	if mins == 0 {
		return fmt.Sprintf("%d hora%s", hours, suffix)
	}
	return fmt.Sprintf("%d hora%s %d min", hours, suffix, mins)
}
