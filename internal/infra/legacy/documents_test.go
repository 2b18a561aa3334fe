package legacy

import (
	"testing"
	"time"

	"verdeluxe/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestLegacyIDIsStable(t *testing.T) {
	assert.Equal(t, LegacyID("plants", "abc"), LegacyID("plants", "abc"))
	assert.NotEqual(t, LegacyID("plants", "abc"), LegacyID("categories", "abc"))
}

func TestPlantDocToEntity(t *testing.T) {
	inactive := false
	doc := plantDoc{
		Name:       "Fiddle Leaf Fig",
		Price:      49.999,
		CategoryID: "cat-1",
		Stock:      -3,
		Tags:       []string{"Indoor", "indoor ", "tree"},
		IsActive:   &inactive,
	}

	plant := doc.toEntity("p1", importTime)

	assert.Equal(t, LegacyID("plants", "p1"), plant.ID)
	assert.Equal(t, "fiddle-leaf-fig-p1", plant.Slug)
	assert.Equal(t, "50", plant.Price.String())
	require.NotNil(t, plant.CategoryID)
	assert.Equal(t, LegacyID("categories", "cat-1"), *plant.CategoryID)
	assert.Equal(t, 0, plant.Stock)
	assert.Equal(t, []string{"indoor", "tree"}, plant.Tags)
	assert.False(t, plant.IsActive)
	assert.Equal(t, []string{}, plant.ImageURLs)
	assert.Equal(t, importTime, plant.CreatedAt)
}

func TestPlantDocDefaultsToActive(t *testing.T) {
	plant := plantDoc{Name: "Pothos", Slug: "pothos"}.toEntity("p2", importTime)

	assert.True(t, plant.IsActive)
	assert.Equal(t, "pothos", plant.Slug)
	assert.Nil(t, plant.CategoryID)
}

func TestOrderDocToEntity(t *testing.T) {
	doc := orderDoc{
		UserID:      "firebase-uid",
		Status:      "Shipped",
		Items:       []orderItemDoc{{PlantID: "p1", Name: "Fig", Quantity: 2, Price: 10}},
		TotalAmount: 21.6,
		ShippingAddress: shippingAddressDoc{
			FullName: "Ada", Email: "ada@example.com", Address: "1 Loop", City: "Austin", ZipCode: "73301", Country: "US",
		},
	}

	order := doc.toEntity("o1", importTime)

	assert.Equal(t, LegacyID("users", "firebase-uid"), order.UserID)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, "VL-LEGACY-O1", order.OrderNumber)
	assert.Equal(t, "21.6", order.TotalAmount.String())
	assert.True(t, order.Subtotal.Equal(order.TotalAmount))
	require.Len(t, order.Items, 1)
	assert.Equal(t, LegacyID("plants", "p1"), order.Items[0].PlantID)
	assert.Equal(t, "Austin", order.ShippingAddress.City)
}

func TestOrderDocUnknownStatusFallsBackToPending(t *testing.T) {
	order := orderDoc{Status: "lost-in-transit", PaymentStatus: "PENDING"}.toEntity("o2", importTime)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
}

func TestContentDocPrefersBody(t *testing.T) {
	assert.Equal(t, "new", contentDoc{Body: "new", Content: "old"}.toEntity("about", importTime).Body)
	assert.Equal(t, "old", contentDoc{Content: "old"}.toEntity("about", importTime).Body)
}

func TestUserDocToEntity(t *testing.T) {
	user := userDoc{Email: "ada@example.com", DisplayName: "Ada"}.toEntity("uid-1", importTime)

	assert.Equal(t, "uid-1", user.FirebaseUID)
	assert.Equal(t, LegacyID("users", "uid-1"), user.ID)
	assert.Equal(t, importTime, user.CreatedAt)
}
