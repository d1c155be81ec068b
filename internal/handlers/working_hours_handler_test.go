package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

// db nulo de propósito: os casos abaixo precisam ser rejeitados antes
// de qualquer acesso ao banco.
func workingHoursTestContext(t *testing.T, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	c.Set(middleware.ContextActorID, uuid.New())
	c.Set(middleware.ContextActorRole, domain.RoleBarber)

	return c, rec
}

func TestWorkingHoursUpdate_RejectsMalformedInactiveDay(t *testing.T) {
	h := NewWorkingHoursHandler(nil)

	// dia inativo com abertura depois do fechamento: inválido mesmo assim
	c, rec := workingHoursTestContext(t, http.MethodPut, `{
		"days": [
			{"weekday": 1, "active": false, "open_time": "10:00", "close_time": "09:00"}
		]
	}`)

	h.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWorkingHoursUpsertDay_RejectsMalformedInactiveDay(t *testing.T) {
	h := NewWorkingHoursHandler(nil)

	barberID := uuid.New()

	c, rec := workingHoursTestContext(t, http.MethodPut, `{
		"active": false, "open_time": "9am", "close_time": "18:00"
	}`)
	c.Params = gin.Params{
		{Key: "id", Value: barberID.String()},
		{Key: "weekday", Value: "1"},
	}
	c.Set(middleware.ContextActorID, barberID) // própria agenda

	h.UpsertDay(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
