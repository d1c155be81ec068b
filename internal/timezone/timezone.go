package timezone

import "time"

// Timezone único da barbearia, definido por configuração na subida.
// Todos os horários do sistema são locais a ele.

const DefaultTimezone = "America/Sao_Paulo"

var current = DefaultTimezone

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Set troca o timezone corrente; entradas inválidas são ignoradas.
func Set(tz string) {
	if IsValid(tz) {
		current = tz
	}
}

func Location() *time.Location {
	if loc, err := time.LoadLocation(current); err == nil {
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
