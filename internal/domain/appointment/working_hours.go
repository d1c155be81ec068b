package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const hhmmLayout = "15:04"

// ValidateWindow rejeita janela malformada antes de qualquer escrita.
func ValidateWindow(open, close string) error {
	o, err := time.Parse(hhmmLayout, open)
	if err != nil {
		return ErrValidation("invalid_open_time", "Horário de abertura inválido.")
	}

	c, err := time.Parse(hhmmLayout, close)
	if err != nil {
		return ErrValidation("invalid_close_time", "Horário de fechamento inválido.")
	}

	if !o.Before(c) {
		return ErrValidation("open_after_close", "Abertura deve ser antes do fechamento.")
	}

	return nil
}

// WindowOnDate projeta o expediente (HH:MM) no dia informado.
// ok=false quando o dia não tem expediente utilizável.
func WindowOnDate(wh *models.WorkingHours, date time.Time) (time.Time, time.Time, bool) {
	if wh == nil || !wh.Active || wh.OpenTime == "" || wh.CloseTime == "" {
		return time.Time{}, time.Time{}, false
	}

	loc := date.Location()

	onDate := func(hm string) (time.Time, bool) {
		t, err := time.Parse(hhmmLayout, hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	open, ok := onDate(wh.OpenTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	close, ok := onDate(wh.CloseTime)
	if !ok || !close.After(open) {
		return time.Time{}, time.Time{}, false
	}

	return open, close, true
}
