package document

import (
	"testing"
	"time"

	"market/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferMapping_RoundTripKeepsOnlyPresentDays(t *testing.T) {
	reviewed := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	offer := &entity.Offer{
		ProducerID:   "p1",
		ProducerName: "Green Acres",
		WeekNumber:   35,
		Status:       entity.OfferStatusApproved,
		Products: []entity.OfferProduct{{
			ProductID:     "tomatoes",
			Price:         decimal.RequireFromString("2.50"),
			TotalQuantity: decimal.NewFromInt(150),
			DailyQuantities: entity.DailyQuantities{
				"Monday":    decimal.NewFromInt(100),
				"Wednesday": decimal.NewFromInt(50),
			},
		}},
		DeliveryAllocations: entity.DeliveryAllocations{
			"store-1": {"Monday": decimal.NewFromInt(30)},
		},
		CreatedAt:  time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC),
		ReviewedAt: &reviewed,
	}

	d := fromOfferDomain(offer)
	assert.Equal(t, 2.5, d.Products[0].Price)
	assert.Equal(t, map[string]float64{"Monday": 100, "Wednesday": 50}, d.Products[0].DailyQuantities)
	assert.Equal(t, offer.CreatedAt, d.Timestamp)

	got := toOfferDomain("o1", d)
	assert.Equal(t, "o1", got.ID)
	require.Len(t, got.Products, 1)
	assert.True(t, got.Products[0].Price.Equal(offer.Products[0].Price))
	assert.Len(t, got.Products[0].DailyQuantities, 2)
	assert.True(t, got.DeliveryAllocations["store-1"]["Monday"].Equal(decimal.NewFromInt(30)))
	assert.Equal(t, &reviewed, got.ReviewedAt)
}

func TestOfferMapping_NoProducts(t *testing.T) {
	got := toOfferDomain("o1", &offerDoc{ProducerID: "p1"})

	assert.NotNil(t, got.Products)
	assert.Empty(t, got.Products)
	assert.Nil(t, got.DeliveryAllocations)
}

func TestUserMapping(t *testing.T) {
	user := &entity.User{
		Email: "grower@example.com",
		Role:  entity.RoleProducer,
		Address: &entity.Address{
			City:     "Murcia",
			Location: &orb.Point{-1.13, 37.98},
		},
		Certifications: map[entity.CertificationType]*entity.Certification{
			entity.CertificationGrasp: {Number: "GR-1", ValidUntil: "2027-03-01"},
			entity.CertificationEco:   nil,
		},
	}

	d := fromUserDomain(user)
	require.NotNil(t, d.Address.Latitude)
	assert.InDelta(t, 37.98, *d.Address.Latitude, 1e-9)
	assert.Len(t, d.Certifications, 1, "nil certificates are dropped")

	got := toUserDomain("u1", d)
	assert.Equal(t, "u1", got.ID)
	require.NotNil(t, got.Address.Location)
	assert.InDelta(t, -1.13, got.Address.Location.Lon(), 1e-9)
	assert.Equal(t, "GR-1", got.Certifications[entity.CertificationGrasp].Number)
}

func TestSortAlertsNewestFirst(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	alerts := []*entity.Alert{
		{ID: "a", Timestamp: base},
		{ID: "c", Timestamp: base.Add(2 * time.Hour)},
		{ID: "b", Timestamp: base.Add(time.Hour)},
	}

	sortAlertsNewestFirst(alerts)

	assert.Equal(t, "c", alerts[0].ID)
	assert.Equal(t, "b", alerts[1].ID)
	assert.Equal(t, "a", alerts[2].ID)
}
