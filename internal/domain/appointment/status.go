package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusBlocked   Status = "blocked"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled, StatusBlocked:
		return true
	}
	return false
}

// Occupies diz se o status ainda consome o intervalo na agenda.
// Cancelado libera o horário; todos os outros continuam ocupando.
func Occupies(s Status) bool {
	return s != StatusCancelled
}

// ===============================
// Transições
// ===============================

// CanTransition valida a máquina de estados:
//
//	confirmed → completed | cancelled
//	blocked   → cancelled (remoção explícita do bloqueio)
//
// Nenhum estado volta para confirmed.
func CanTransition(from, to Status) error {
	switch from {
	case StatusConfirmed:
		if to == StatusCompleted || to == StatusCancelled {
			return nil
		}
	case StatusBlocked:
		if to == StatusCancelled {
			return nil
		}
	}
	return ErrValidation("invalid_state", "Transição de status não permitida.")
}

func InitialStatus() Status {
	return StatusConfirmed
}
