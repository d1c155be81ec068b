package appointment

import "time"

// Passo fixo do cursor de geração, independente da duração do serviço.
// Candidatos mutuamente exclusivos são aceitáveis: cada um é revalidado
// pela constraint de exclusão no commit.
const SlotStepMinutes = 15

type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps testa sobreposição de intervalos semiabertos [start, end).
// Encostar (end == Start) não é conflito.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return start.Before(iv.End) && end.After(iv.Start)
}

// BuildSlots percorre a janela [open, close] em passos de SlotStepMinutes
// e devolve, em ordem crescente, os inícios cujo intervalo [t, t+duration):
//
//   - termina até o fechamento;
//   - não sobrepõe nenhum intervalo ocupado;
//   - não começa antes de now.
//
// O resultado é um snapshot: nada garante que o horário continue livre
// até o commit.
func BuildSlots(
	open time.Time,
	close time.Time,
	duration time.Duration,
	busy []Interval,
	now time.Time,
) []time.Time {

	slots := []time.Time{}

	if duration <= 0 || !close.After(open) {
		return slots
	}

	step := SlotStepMinutes * time.Minute

	for cur := open; ; cur = cur.Add(step) {
		end := cur.Add(duration)
		if end.After(close) {
			break
		}

		if cur.Before(now) {
			continue
		}

		if overlapsAny(cur, end, busy) {
			continue
		}

		slots = append(slots, cur)
	}

	return slots
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, iv := range busy {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}
