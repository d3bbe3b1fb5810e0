package folio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

func TestScopes(t *testing.T) {
	at := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	general := GeneralScope(42, at)
	assert.True(t, general.IsGeneral())
	assert.Equal(t, int64(42), general.CampusID)
	assert.Equal(t, 2026, general.Year)
	assert.Equal(t, time.January, general.Month)

	method := MethodScope(42, models.PaymentCash, at)
	assert.False(t, method.IsGeneral())
	assert.Equal(t, models.PaymentCash, method.Method)

	// Same campus and month, different method: distinct scopes.
	assert.NotEqual(t, general, method)
	assert.NotEqual(t, method, MethodScope(42, models.PaymentTransfer, at))

	// Month rollover produces a new scope.
	assert.NotEqual(t, general, GeneralScope(42, at.AddDate(0, 1, 0)))
}

func TestScopeString(t *testing.T) {
	at := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "campus=7 method=general period=2026-03", GeneralScope(7, at).String())
	assert.Equal(t, "campus=7 method=cash period=2026-03", MethodScope(7, models.PaymentCash, at).String())
}
