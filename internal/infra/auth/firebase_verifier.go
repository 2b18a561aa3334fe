package auth

import (
	"context"

	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the subset of *auth.Client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier verifies customer ID tokens with Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	if idToken == "" {
		return nil, domainerrors.ErrIdentityTokenInvalid
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrIdentityTokenInvalid.WrapMessage(err.Error())
	}

	return identityFromToken(token), nil
}

func identityFromToken(token *firebaseauth.Token) *service.Identity {
	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}

	return identity
}
