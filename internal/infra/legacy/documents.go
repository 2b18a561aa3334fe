package legacy

import (
	"strings"
	"time"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type categoryDoc struct {
	Name        string `firestore:"name"`
	Slug        string `firestore:"slug"`
	Description string `firestore:"description"`
	ImageURL    string `firestore:"imageUrl"`
}

func (d categoryDoc) toEntity(id string, now time.Time) *entity.Category {
	slug := d.Slug
	if slug == "" {
		slug = entity.Slugify(d.Name)
	}

	return &entity.Category{
		ID:          LegacyID(collectionCategories, id),
		Name:        d.Name,
		Slug:        slug,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type plantDoc struct {
	Name              string    `firestore:"name"`
	Slug              string    `firestore:"slug"`
	Description       string    `firestore:"description"`
	Price             float64   `firestore:"price"`
	CategoryID        string    `firestore:"categoryId"`
	ImageURLs         []string  `firestore:"imageUrls"`
	Stock             int       `firestore:"stock"`
	Featured          bool      `firestore:"featured"`
	Tags              []string  `firestore:"tags"`
	IsActive          *bool     `firestore:"isActive"`
	CareLevel         string    `firestore:"careLevel"`
	LightRequirement  string    `firestore:"lightRequirement"`
	WateringFrequency string    `firestore:"wateringFrequency"`
	Size              string    `firestore:"size"`
	CreatedAt         time.Time `firestore:"createdAt"`
	UpdatedAt         time.Time `firestore:"updatedAt"`
}

func (d plantDoc) toEntity(id string, now time.Time) *entity.Plant {
	slug := d.Slug
	if slug == "" {
		// Suffixing the document id keeps slugs unique across same-named plants.
		slug = entity.Slugify(d.Name + " " + id)
	}

	var categoryID *uuid.UUID
	if d.CategoryID != "" {
		mapped := LegacyID(collectionCategories, d.CategoryID)
		categoryID = &mapped
	}

	// Documents written before the flag existed were live.
	isActive := d.IsActive == nil || *d.IsActive

	imageURLs := d.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return &entity.Plant{
		ID:                LegacyID(collectionPlants, id),
		Name:              d.Name,
		Slug:              slug,
		Description:       d.Description,
		Price:             decimal.NewFromFloat(d.Price).Round(2),
		CategoryID:        categoryID,
		ImageURLs:         imageURLs,
		Stock:             max(d.Stock, 0),
		Featured:          d.Featured,
		Tags:              entity.NormalizeTags(d.Tags),
		IsActive:          isActive,
		CareLevel:         d.CareLevel,
		LightRequirement:  d.LightRequirement,
		WateringFrequency: d.WateringFrequency,
		Size:              d.Size,
		CreatedAt:         orNow(d.CreatedAt, now),
		UpdatedAt:         orNow(d.UpdatedAt, orNow(d.CreatedAt, now)),
	}
}

// userDoc is keyed by Firebase UID.
type userDoc struct {
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

func (d userDoc) toEntity(uid string, now time.Time) *entity.User {
	createdAt := orNow(d.CreatedAt, now)

	return &entity.User{
		ID:          LegacyID(collectionUsers, uid),
		FirebaseUID: uid,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

type orderItemDoc struct {
	PlantID  string  `firestore:"plantId"`
	Name     string  `firestore:"name"`
	Quantity int     `firestore:"quantity"`
	Price    float64 `firestore:"price"`
}

type shippingAddressDoc struct {
	FullName string `firestore:"fullName"`
	Email    string `firestore:"email"`
	Phone    string `firestore:"phone"`
	Address  string `firestore:"address"`
	City     string `firestore:"city"`
	State    string `firestore:"state"`
	ZipCode  string `firestore:"zipCode"`
	Country  string `firestore:"country"`
}

type orderDoc struct {
	UserID          string             `firestore:"userId"`
	OrderNumber     string             `firestore:"orderNumber"`
	Status          string             `firestore:"status"`
	PaymentStatus   string             `firestore:"paymentStatus"`
	Items           []orderItemDoc     `firestore:"items"`
	Subtotal        float64            `firestore:"subtotal"`
	Tax             float64            `firestore:"tax"`
	TotalAmount     float64            `firestore:"totalAmount"`
	ShippingAddress shippingAddressDoc `firestore:"shippingAddress"`
	CreatedAt       time.Time          `firestore:"createdAt"`
	UpdatedAt       time.Time          `firestore:"updatedAt"`
}

func (d orderDoc) toEntity(id string, now time.Time) *entity.Order {
	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, entity.OrderItem{
			PlantID:  LegacyID(collectionPlants, item.PlantID),
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    decimal.NewFromFloat(item.Price).Round(2),
		})
	}

	status := entity.OrderStatus(strings.ToLower(d.Status))
	if !status.IsValid() {
		status = entity.OrderStatusPending
	}

	paymentStatus := entity.PaymentStatus(strings.ToLower(d.PaymentStatus))
	switch paymentStatus {
	case entity.PaymentStatusPending, entity.PaymentStatusPaid, entity.PaymentStatusFailed, entity.PaymentStatusRefunded:
	default:
		paymentStatus = entity.PaymentStatusPaid
	}

	orderNumber := d.OrderNumber
	if orderNumber == "" {
		orderNumber = "VL-LEGACY-" + strings.ToUpper(id)
	}

	total := decimal.NewFromFloat(d.TotalAmount).Round(2)
	subtotal := decimal.NewFromFloat(d.Subtotal).Round(2)
	tax := decimal.NewFromFloat(d.Tax).Round(2)
	if subtotal.IsZero() && tax.IsZero() {
		// Old orders only stored the total.
		subtotal = total
	}

	createdAt := orNow(d.CreatedAt, now)

	return &entity.Order{
		ID:          LegacyID(collectionOrders, id),
		UserID:      LegacyID(collectionUsers, d.UserID),
		OrderNumber: orderNumber,
		Status:      status,
		Items:       items,
		Subtotal:    subtotal,
		Tax:         tax,
		TotalAmount: total,
		ShippingAddress: entity.ShippingAddress{
			FullName: d.ShippingAddress.FullName,
			Email:    d.ShippingAddress.Email,
			Phone:    d.ShippingAddress.Phone,
			Address:  d.ShippingAddress.Address,
			City:     d.ShippingAddress.City,
			State:    d.ShippingAddress.State,
			ZipCode:  d.ShippingAddress.ZipCode,
			Country:  d.ShippingAddress.Country,
		},
		PaymentStatus: paymentStatus,
		CreatedAt:     createdAt,
		UpdatedAt:     orNow(d.UpdatedAt, createdAt),
	}
}

type wishlistDoc struct {
	UserID    string    `firestore:"userId"`
	PlantID   string    `firestore:"plantId"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func (d wishlistDoc) toEntity(id string, now time.Time) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:        LegacyID(collectionWishlist, id),
		UserID:    LegacyID(collectionUsers, d.UserID),
		PlantID:   LegacyID(collectionPlants, d.PlantID),
		CreatedAt: orNow(d.CreatedAt, now),
	}
}

type subscriberDoc struct {
	Email string `firestore:"email"`
}

// contentDoc is keyed by content key. Older documents used "content"
// instead of "body".
type contentDoc struct {
	Title     string    `firestore:"title"`
	Body      string    `firestore:"body"`
	Content   string    `firestore:"content"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func (d contentDoc) toEntity(key string, now time.Time) *entity.SiteContent {
	body := d.Body
	if body == "" {
		body = d.Content
	}

	return &entity.SiteContent{
		Key:       key,
		Title:     d.Title,
		Body:      body,
		UpdatedAt: orNow(d.UpdatedAt, now),
	}
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}

	return t
}
