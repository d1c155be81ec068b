package appointment

import "github.com/google/uuid"

// ===============================
// Actor
// ===============================
//
// Identidade explícita de quem executa a operação, carregada pelo
// caller em vez de estado global de sessão.

const (
	RoleAdmin  = "admin"
	RoleBarber = "barber"
)

type Actor struct {
	ID   uuid.UUID
	Role string
}

// CanManage: admin gerencia qualquer agenda; barbeiro só a própria.
func (a Actor) CanManage(barberID uuid.UUID) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.ID == barberID
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
