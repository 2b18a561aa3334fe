// Package legacy reads the storefront's former Firestore collections so they
// can be imported into Postgres.
package legacy

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"verdeluxe/internal/domain/service"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	collectionCategories  = "categories"
	collectionPlants      = "plants"
	collectionUsers       = "users"
	collectionOrders      = "orders"
	collectionWishlist    = "wishlistItems"
	collectionSubscribers = "newsletter_subscribers"
	collectionContent     = "site_content"
)

// idNamespace scopes the UUIDs derived from Firestore document ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://verdeluxe/firestore"))

// LegacyID maps a Firestore document id to the UUID it is imported under.
// The mapping is stable so references between collections survive and
// re-running the import finds already imported rows.
func LegacyID(collection, docID string) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte(collection+"/"+docID))
}

type firestoreSource struct {
	client *firestore.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewFirestoreSource(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.LegacySource, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error initializing firestore")
	}

	return &firestoreSource{client: client, logger: logger, now: time.Now}, nil
}

func (s *firestoreSource) Close() error {
	return errors.WithStack(s.client.Close())
}

func (s *firestoreSource) Snapshot(ctx context.Context) (*service.LegacySnapshot, error) {
	snapshot := &service.LegacySnapshot{}

	categories, err := readCollection[categoryDoc](ctx, s.client, collectionCategories)
	if err != nil {
		return nil, err
	}
	for id, doc := range categories {
		snapshot.Categories = append(snapshot.Categories, doc.toEntity(id, s.now()))
	}

	plants, err := readCollection[plantDoc](ctx, s.client, collectionPlants)
	if err != nil {
		return nil, err
	}
	for id, doc := range plants {
		snapshot.Plants = append(snapshot.Plants, doc.toEntity(id, s.now()))
	}

	users, err := readCollection[userDoc](ctx, s.client, collectionUsers)
	if err != nil {
		return nil, err
	}
	for id, doc := range users {
		snapshot.Users = append(snapshot.Users, doc.toEntity(id, s.now()))
	}

	orders, err := readCollection[orderDoc](ctx, s.client, collectionOrders)
	if err != nil {
		return nil, err
	}
	for id, doc := range orders {
		snapshot.Orders = append(snapshot.Orders, doc.toEntity(id, s.now()))
	}

	wishlist, err := readCollection[wishlistDoc](ctx, s.client, collectionWishlist)
	if err != nil {
		return nil, err
	}
	for id, doc := range wishlist {
		if doc.UserID == "" || doc.PlantID == "" {
			s.logger.WarnContext(ctx, "Skipping incomplete wishlist document", slog.String("doc_id", id))

			continue
		}
		snapshot.WishlistItems = append(snapshot.WishlistItems, doc.toEntity(id, s.now()))
	}

	subscribers, err := readCollection[subscriberDoc](ctx, s.client, collectionSubscribers)
	if err != nil {
		return nil, err
	}
	for _, doc := range subscribers {
		if email := strings.ToLower(strings.TrimSpace(doc.Email)); email != "" {
			snapshot.Subscribers = append(snapshot.Subscribers, email)
		}
	}

	content, err := readCollection[contentDoc](ctx, s.client, collectionContent)
	if err != nil {
		return nil, err
	}
	for id, doc := range content {
		snapshot.Content = append(snapshot.Content, doc.toEntity(id, s.now()))
	}

	s.logger.InfoContext(ctx, "Read legacy Firestore collections",
		slog.Int("categories", len(snapshot.Categories)),
		slog.Int("plants", len(snapshot.Plants)),
		slog.Int("users", len(snapshot.Users)),
		slog.Int("orders", len(snapshot.Orders)),
		slog.Int("wishlist_items", len(snapshot.WishlistItems)),
		slog.Int("subscribers", len(snapshot.Subscribers)),
		slog.Int("content", len(snapshot.Content)),
	)

	return snapshot, nil
}

// readCollection decodes every document of a collection, keyed by document id.
func readCollection[T any](ctx context.Context, client *firestore.Client, name string) (map[string]T, error) {
	docs, err := client.Collection(name).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read collection %s", name)
	}

	out := make(map[string]T, len(docs))
	for _, doc := range docs {
		var value T
		if err := doc.DataTo(&value); err != nil {
			return nil, errors.Wrapf(err, "decode %s/%s", name, doc.Ref.ID)
		}
		out[doc.Ref.ID] = value
	}

	return out, nil
}
