package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now é o relógio padrão dos casos de uso.
func Now() time.Time {
	return time.Now().In(Location())
}

// Format exibe data e hora no fuso do consultório, no formato brasileiro.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location()).Format("02/01/2006 15:04")
}
