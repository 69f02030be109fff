package admin

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
)

type staticAuthenticator struct {
	username string
	password string
}

// NewStaticAuthenticator authenticates against a single configured
// credential pair.
func NewStaticAuthenticator(username string, password string) Authenticator {
	return &staticAuthenticator{
		username: username,
		password: password,
	}
}

func (a staticAuthenticator) Authenticate(c context.Context, username string, password string) error {
	usernameOK := subtle.ConstantTimeCompare([]byte(a.username), []byte(username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) == 1
	if !usernameOK || !passwordOK {
		return myerrors.NewAuthenticationError(fmt.Errorf("invalid credentials"))
	}

	return nil
}
