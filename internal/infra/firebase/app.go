// Package firebase builds the shared Firebase Admin SDK app used for ID
// token verification, push messaging and the Firestore import.
package firebase

import (
	"context"

	"verdeluxe/config"
	"verdeluxe/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initialises the Firebase app. Credentials come from the configured
// service account file, or Application Default Credentials when unset.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
