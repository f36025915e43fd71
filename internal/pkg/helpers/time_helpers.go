package helpers

import (
	"fmt"
	"time"
)

// RelativeTime renders t relative to now in Brazilian Portuguese ("há 3 horas").
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "agora"
	}

	switch {
	case d < time.Minute:
		return "agora mesmo"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minuto", "minutos")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hora", "horas")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "dia", "dias")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "mês", "meses")
	default:
		return plural(int(d/(365*24*time.Hour)), "ano", "anos")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("há 1 %s", one)
	}
	return fmt.Sprintf("há %d %s", n, many)
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
