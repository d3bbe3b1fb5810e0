package folio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestShouldGenerateSpecific(t *testing.T) {
	satCard := &models.Card{ID: 1, Code: "BV", SAT: true}
	normalCard := &models.Card{ID: 2, Code: "TC", SAT: false}

	tests := []struct {
		name     string
		method   models.PaymentMethod
		card     *models.Card
		expected bool
	}{
		{"cash without card", models.PaymentCash, nil, true},
		{"cash with sat card", models.PaymentCash, satCard, true},
		{"transfer without card", models.PaymentTransfer, nil, true},
		{"transfer with normal card", models.PaymentTransfer, normalCard, true},
		{"transfer with sat card", models.PaymentTransfer, satCard, false},
		{"card without card config", models.PaymentCard, nil, false},
		{"card with normal card", models.PaymentCard, normalCard, true},
		{"card with sat card", models.PaymentCard, satCard, false},
		{"unknown method", models.PaymentMethod("voucher"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldGenerateSpecific(tt.method, tt.card))
		})
	}
}

func TestColumn(t *testing.T) {
	col, err := Column(models.PaymentCash)
	assert.NoError(t, err)
	assert.Equal(t, "folio_cash", col)

	col, err = Column(models.PaymentTransfer)
	assert.NoError(t, err)
	assert.Equal(t, "folio_transfer", col)

	col, err = Column(models.PaymentCard)
	assert.NoError(t, err)
	assert.Equal(t, "folio_card", col)

	_, err = Column(models.PaymentMethod("voucher"))
	assert.Error(t, err)
}

func TestDisplayFolio(t *testing.T) {
	at := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "E-032026-7", DisplayFolio(models.PaymentCash, nil, at, 7))
	assert.Equal(t, "T-032026-12", DisplayFolio(models.PaymentTransfer, nil, at, 12))

	card := &models.Card{ID: 3, Code: "BX"}
	assert.Equal(t, "BX-032026-1", DisplayFolio(models.PaymentCard, card, at, 1))

	// Card payment without a card code falls back to the TA prefix.
	assert.Equal(t, "TA-032026-4", DisplayFolio(models.PaymentCard, &models.Card{ID: 4}, at, 4))
}

func TestPlanCreate(t *testing.T) {
	t.Run("unpaid gets no folios", func(t *testing.T) {
		assert.True(t, PlanCreate(false, models.PaymentCash, nil).Empty())
	})

	t.Run("paid cash draws specific", func(t *testing.T) {
		p := PlanCreate(true, models.PaymentCash, nil)
		assert.True(t, p.AssignSpecific)
		assert.False(t, p.AssignGeneral)
		assert.True(t, p.RecomputeDisplay)
	})

	t.Run("paid sat transfer draws general", func(t *testing.T) {
		p := PlanCreate(true, models.PaymentTransfer, &models.Card{ID: 1, SAT: true})
		assert.True(t, p.AssignGeneral)
		assert.False(t, p.AssignSpecific)
	})
}

func TestPlanUpdate(t *testing.T) {
	t.Run("paid to unpaid clears everything", func(t *testing.T) {
		prev := &models.Transaction{Paid: true, PaymentMethod: models.PaymentCash}
		p := PlanUpdate(prev, false, models.PaymentCash, nil, prev.PaymentDate)
		assert.True(t, p.ClearAll)
		assert.False(t, p.AssignSpecific)
		assert.False(t, p.AssignGeneral)
	})

	t.Run("unpaid stays unpaid is a no-op", func(t *testing.T) {
		prev := &models.Transaction{Paid: false, PaymentMethod: models.PaymentCash}
		assert.True(t, PlanUpdate(prev, false, models.PaymentTransfer, nil, prev.PaymentDate).Empty())
	})

	t.Run("unrelated change on paid row is a no-op", func(t *testing.T) {
		prev := &models.Transaction{Paid: true, PaymentMethod: models.PaymentCash, FolioCash: int64Ptr(9)}
		assert.True(t, PlanUpdate(prev, true, models.PaymentCash, nil, prev.PaymentDate).Empty())
	})

	t.Run("becoming paid draws fresh folios", func(t *testing.T) {
		prev := &models.Transaction{Paid: false, PaymentMethod: models.PaymentCash}
		p := PlanUpdate(prev, true, models.PaymentCash, nil, prev.PaymentDate)
		assert.True(t, p.AssignSpecific)
		assert.True(t, p.RecomputeDisplay)
		assert.False(t, p.ClearSpecific)
	})

	t.Run("payment date change recomputes display only", func(t *testing.T) {
		jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
		prev := &models.Transaction{
			Paid:          true,
			PaymentMethod: models.PaymentCash,
			FolioCash:     int64Ptr(7),
			PaymentDate:   &jan,
		}
		p := PlanUpdate(prev, true, models.PaymentCash, nil, &feb)
		assert.True(t, p.RecomputeDisplay)
		// The numeric folio is kept; only the composite moves to the new period.
		assert.False(t, p.AssignSpecific)
		assert.False(t, p.ClearSpecific)
		assert.False(t, p.AssignGeneral)
	})

	t.Run("method change clears specific and reassigns", func(t *testing.T) {
		prev := &models.Transaction{Paid: true, PaymentMethod: models.PaymentCash, FolioCash: int64Ptr(3)}
		p := PlanUpdate(prev, true, models.PaymentTransfer, nil, prev.PaymentDate)
		assert.True(t, p.ClearSpecific)
		assert.True(t, p.AssignSpecific)
		assert.True(t, p.RecomputeDisplay)
	})

	t.Run("switch to sat card falls back to general", func(t *testing.T) {
		// Was specific-eligible transfer, becomes SAT-suppressed: the stale
		// specific folio goes and a general number is drawn since the row
		// never carried one.
		prev := &models.Transaction{Paid: true, PaymentMethod: models.PaymentTransfer, FolioTransfer: int64Ptr(5)}
		sat := &models.Card{ID: 9, SAT: true}
		p := PlanUpdate(prev, true, models.PaymentTransfer, sat, prev.PaymentDate)
		assert.True(t, p.ClearSpecific)
		assert.False(t, p.AssignSpecific)
		assert.True(t, p.AssignGeneral)
	})

	t.Run("card change between eligible cards reassigns", func(t *testing.T) {
		prev := &models.Transaction{
			Paid:          true,
			PaymentMethod: models.PaymentCard,
			CardID:        int64Ptr(1),
			FolioCard:     int64Ptr(2),
		}
		next := &models.Card{ID: 2, Code: "BX"}
		p := PlanUpdate(prev, true, models.PaymentCard, next, prev.PaymentDate)
		assert.True(t, p.ClearSpecific)
		assert.True(t, p.AssignSpecific)
	})

	t.Run("general row gaining eligibility drops its general folio", func(t *testing.T) {
		prev := &models.Transaction{
			Paid:          true,
			PaymentMethod: models.PaymentCard,
			Folio:         int64Ptr(14),
		}
		card := &models.Card{ID: 5, Code: "TC"}
		p := PlanUpdate(prev, true, models.PaymentCard, card, prev.PaymentDate)
		assert.True(t, p.AssignSpecific)
		assert.True(t, p.ClearGeneral)
	})
}
