package admin

import "context"

// Authenticator decides whether a credential pair belongs to the shop
// admin. It is a collaborator so deployments can plug in something better
// than static credentials.
//
//go:generate mockgen -source=api.go -package admin -destination admin_mock.go Authenticator,SessionVerifier
type Authenticator interface {
	Authenticate(c context.Context, username string, password string) error
}

// SessionVerifier gates the admin-only endpoints of other services.
type SessionVerifier interface {
	Verify(c context.Context, sessionUID string) error
}
