package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

// FromDomain traduz a taxonomia do core para HTTP.
// Nenhum erro cru de storage chega aqui — o repositório já traduziu.
func FromDomain(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrSlotTaken) {
		Conflict(c, "slot_taken", "Este horário acabou de ser reservado. Escolha outro.")
		return
	}

	var ve domain.ValidationError
	if errors.As(err, &ve) {
		if ve.Code == "forbidden" {
			Forbidden(c, ve.Code, ve.Message)
			return
		}
		BadRequest(c, ve.Code, ve.Message)
		return
	}

	var nf domain.NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, nf.Error(), "Registro não encontrado.")
		return
	}

	if domain.IsTransient(err) {
		Unavailable(c, "transient", "Instabilidade temporária. Tente novamente.")
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
