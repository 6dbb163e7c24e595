package document

import (
	"sort"
	"time"

	"market/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// Collection names.
const (
	usersCollection          = "users"
	productsCollection       = "products"
	offersCollection         = "offers"
	authorizationsCollection = "authorizations"
	alertsCollection         = "alerts"
	newsCollection           = "news"
)

type addressDoc struct {
	Street     string   `firestore:"street"`
	City       string   `firestore:"city"`
	State      string   `firestore:"state"`
	Country    string   `firestore:"country"`
	PostalCode string   `firestore:"postalCode"`
	Latitude   *float64 `firestore:"latitude,omitempty"`
	Longitude  *float64 `firestore:"longitude,omitempty"`
}

type userDoc struct {
	Email          string                          `firestore:"email"`
	Role           string                          `firestore:"role"`
	Name           string                          `firestore:"name"`
	CompanyName    string                          `firestore:"companyName"`
	VATNumber      string                          `firestore:"vatNumber"`
	Address        *addressDoc                     `firestore:"address,omitempty"`
	Certifications map[string]entity.Certification `firestore:"certifications,omitempty"`
	CreatedAt      time.Time                       `firestore:"createdAt"`
	UpdatedAt      *time.Time                      `firestore:"updatedAt,omitempty"`
	LastLogin      *time.Time                      `firestore:"lastLogin,omitempty"`
}

type productDoc struct {
	Name      string     `firestore:"name"`
	Category  string     `firestore:"category"`
	Unit      string     `firestore:"unit"`
	BoxSize   string     `firestore:"boxSize,omitempty"`
	Varieties []string   `firestore:"varieties,omitempty"`
	CreatedAt time.Time  `firestore:"createdAt"`
	UpdatedAt *time.Time `firestore:"updatedAt,omitempty"`
}

type offerProductDoc struct {
	ProductID       string             `firestore:"productId"`
	ProductName     string             `firestore:"productName,omitempty"`
	Variety         string             `firestore:"variety,omitempty"`
	Price           float64            `firestore:"price"`
	TotalQuantity   float64            `firestore:"totalQuantity"`
	DailyQuantities map[string]float64 `firestore:"dailyQuantities"`
}

// offerDoc embeds its line items; the document is the whole aggregate.
type offerDoc struct {
	ProducerID          string                        `firestore:"producerId"`
	ProducerName        string                        `firestore:"producerName,omitempty"`
	WeekNumber          int                           `firestore:"weekNumber"`
	Description         string                        `firestore:"description"`
	Status              string                        `firestore:"status"`
	Feedback            string                        `firestore:"feedback,omitempty"`
	Products            []offerProductDoc             `firestore:"products"`
	DeliveryAllocations map[string]map[string]float64 `firestore:"deliveryAllocations,omitempty"`
	Timestamp           time.Time                     `firestore:"timestamp"`
	ReviewedAt          *time.Time                    `firestore:"reviewedAt,omitempty"`
	LastModified        *time.Time                    `firestore:"lastModified,omitempty"`
}

type authorizationDoc struct {
	UserID       string    `firestore:"userId"`
	ProductID    string    `firestore:"productId"`
	AuthorizedAt time.Time `firestore:"authorizedAt"`
}

type alertDoc struct {
	Type              string     `firestore:"type"`
	Title             string     `firestore:"title"`
	Message           string     `firestore:"message"`
	UserID            string     `firestore:"userId"`
	CertificationType string     `firestore:"certificationType,omitempty"`
	ExpiryDate        string     `firestore:"expiryDate,omitempty"`
	Status            string     `firestore:"status"`
	Timestamp         time.Time  `firestore:"timestamp"`
	LastModified      *time.Time `firestore:"lastModified,omitempty"`
}

type newsDoc struct {
	Title     string     `firestore:"title"`
	Content   string     `firestore:"content"`
	Active    bool       `firestore:"active"`
	CreatedBy string     `firestore:"createdBy"`
	Timestamp time.Time  `firestore:"timestamp"`
	UpdatedAt *time.Time `firestore:"updatedAt,omitempty"`
}

// --- Mapper Functions ---

func toUserDomain(id string, d *userDoc) *entity.User {
	user := &entity.User{
		ID:          id,
		Email:       d.Email,
		Role:        entity.Role(d.Role),
		Name:        d.Name,
		CompanyName: d.CompanyName,
		VATNumber:   d.VATNumber,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		LastLogin:   d.LastLogin,
	}

	if a := d.Address; a != nil {
		user.Address = &entity.Address{
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			Country:    a.Country,
			PostalCode: a.PostalCode,
		}
		if a.Latitude != nil && a.Longitude != nil {
			user.Address.Location = &orb.Point{*a.Longitude, *a.Latitude}
		}
	}

	if len(d.Certifications) > 0 {
		user.Certifications = make(map[entity.CertificationType]*entity.Certification, len(d.Certifications))
		for certType, cert := range d.Certifications {
			c := cert
			user.Certifications[entity.CertificationType(certType)] = &c
		}
	}

	return user
}

func fromUserDomain(u *entity.User) *userDoc {
	return &userDoc{
		Email:          u.Email,
		Role:           string(u.Role),
		Name:           u.Name,
		CompanyName:    u.CompanyName,
		VATNumber:      u.VATNumber,
		Address:        fromAddressDomain(u.Address),
		Certifications: fromCertificationsDomain(u.Certifications),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		LastLogin:      u.LastLogin,
	}
}

func fromAddressDomain(a *entity.Address) *addressDoc {
	if a == nil {
		return nil
	}

	d := &addressDoc{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
	if a.Location != nil {
		lat, lng := a.Location.Lat(), a.Location.Lon()
		d.Latitude = &lat
		d.Longitude = &lng
	}

	return d
}

func fromCertificationsDomain(certs map[entity.CertificationType]*entity.Certification) map[string]entity.Certification {
	if len(certs) == 0 {
		return nil
	}

	out := make(map[string]entity.Certification, len(certs))
	for certType, cert := range certs {
		if cert != nil {
			out[string(certType)] = *cert
		}
	}

	return out
}

func toProductDomain(id string, d *productDoc) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      d.Name,
		Category:  d.Category,
		Unit:      d.Unit,
		BoxSize:   d.BoxSize,
		Varieties: d.Varieties,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *productDoc {
	return &productDoc{
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
		BoxSize:   p.BoxSize,
		Varieties: p.Varieties,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toOfferDomain(id string, d *offerDoc) *entity.Offer {
	offer := &entity.Offer{
		ID:           id,
		ProducerID:   d.ProducerID,
		ProducerName: d.ProducerName,
		WeekNumber:   d.WeekNumber,
		Description:  d.Description,
		Status:       entity.OfferStatus(d.Status),
		Feedback:     d.Feedback,
		Products:     make([]entity.OfferProduct, 0, len(d.Products)),
		CreatedAt:    d.Timestamp,
		ReviewedAt:   d.ReviewedAt,
		LastModified: d.LastModified,
	}

	for _, p := range d.Products {
		offer.Products = append(offer.Products, entity.OfferProduct{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			Variety:         p.Variety,
			Price:           decimal.NewFromFloat(p.Price),
			TotalQuantity:   decimal.NewFromFloat(p.TotalQuantity),
			DailyQuantities: toDailyQuantities(p.DailyQuantities),
		})
	}

	if len(d.DeliveryAllocations) > 0 {
		offer.DeliveryAllocations = make(entity.DeliveryAllocations, len(d.DeliveryAllocations))
		for store, days := range d.DeliveryAllocations {
			offer.DeliveryAllocations[store] = toDailyQuantities(days)
		}
	}

	return offer
}

func fromOfferDomain(o *entity.Offer) *offerDoc {
	return &offerDoc{
		ProducerID:          o.ProducerID,
		ProducerName:        o.ProducerName,
		WeekNumber:          o.WeekNumber,
		Description:         o.Description,
		Status:              string(o.Status),
		Feedback:            o.Feedback,
		Products:            fromOfferProductsDomain(o.Products),
		DeliveryAllocations: fromAllocationsDomain(o.DeliveryAllocations),
		Timestamp:           o.CreatedAt,
		ReviewedAt:          o.ReviewedAt,
		LastModified:        o.LastModified,
	}
}

func fromOfferProductsDomain(products []entity.OfferProduct) []offerProductDoc {
	out := make([]offerProductDoc, 0, len(products))
	for _, p := range products {
		out = append(out, offerProductDoc{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			Variety:         p.Variety,
			Price:           p.Price.InexactFloat64(),
			TotalQuantity:   p.TotalQuantity.InexactFloat64(),
			DailyQuantities: fromDailyQuantities(p.DailyQuantities),
		})
	}

	return out
}

func fromAllocationsDomain(a entity.DeliveryAllocations) map[string]map[string]float64 {
	if a == nil {
		return nil
	}

	out := make(map[string]map[string]float64, len(a))
	for store, days := range a {
		out[store] = fromDailyQuantities(days)
	}

	return out
}

func toDailyQuantities(m map[string]float64) entity.DailyQuantities {
	out := make(entity.DailyQuantities, len(m))
	for day, qty := range m {
		out[day] = decimal.NewFromFloat(qty)
	}

	return out
}

func fromDailyQuantities(d entity.DailyQuantities) map[string]float64 {
	out := make(map[string]float64, len(d))
	for day, qty := range d {
		out[day] = qty.InexactFloat64()
	}

	return out
}

func toAuthorizationDomain(id string, d *authorizationDoc) *entity.Authorization {
	return &entity.Authorization{
		ID:           id,
		UserID:       d.UserID,
		ProductID:    d.ProductID,
		AuthorizedAt: d.AuthorizedAt,
	}
}

func toAlertDomain(id string, d *alertDoc) *entity.Alert {
	return &entity.Alert{
		ID:                id,
		Type:              entity.AlertType(d.Type),
		Title:             d.Title,
		Message:           d.Message,
		UserID:            d.UserID,
		CertificationType: entity.CertificationType(d.CertificationType),
		ExpiryDate:        d.ExpiryDate,
		Status:            entity.AlertStatus(d.Status),
		Timestamp:         d.Timestamp,
		LastModified:      d.LastModified,
	}
}

func fromAlertDomain(a *entity.Alert) *alertDoc {
	return &alertDoc{
		Type:              string(a.Type),
		Title:             a.Title,
		Message:           a.Message,
		UserID:            a.UserID,
		CertificationType: string(a.CertificationType),
		ExpiryDate:        a.ExpiryDate,
		Status:            string(a.Status),
		Timestamp:         a.Timestamp,
		LastModified:      a.LastModified,
	}
}

func toNewsDomain(id string, d *newsDoc) *entity.News {
	return &entity.News{
		ID:        id,
		Title:     d.Title,
		Content:   d.Content,
		Active:    d.Active,
		CreatedBy: d.CreatedBy,
		Timestamp: d.Timestamp,
		UpdatedAt: d.UpdatedAt,
	}
}

// Documents carry no server-side ordering guarantees for filtered queries without a composite
// index, so listings are ordered in memory.

func sortOffersNewestFirst(offers []*entity.Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})
}

func sortAlertsNewestFirst(alerts []*entity.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
}
