package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mytime"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/lib/myvault"
)

const sessionDuration = 30 * 24 * time.Hour

type service struct {
	authenticator Authenticator
	vault         myvault.Vault
	nower         mytime.Nower
	uuider        myuuid.UUIDer
	logger        mylog.Logger
}

func newService(authenticator Authenticator, vault myvault.Vault, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		authenticator: authenticator,
		vault:         vault,
		nower:         nower,
		uuider:        uuider,
		logger:        logger,
	}
}

func (s *service) login(c context.Context, username string, password string) (myvault.Session, error) {
	err := s.authenticator.Authenticate(c, username, password)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Rejected login for username %s", username)
		return myvault.Session{}, err
	}

	now := s.nower.Now()
	session := myvault.Session{
		UID:       s.uuider.Create(),
		CreatedAt: now,
		ExpiresAt: now.Add(sessionDuration),
	}

	err = s.vault.Put(c, session.UID, session)
	if err != nil {
		return myvault.Session{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Admin logged in, session %s", session.UID)

	return session, nil
}

func (s *service) logout(c context.Context, sessionUID string) error {
	err := s.vault.Remove(c, sessionUID)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Admin logged out, session %s", sessionUID)

	return nil
}

// Verify implements SessionVerifier for the admin-only endpoints of other
// services.
func (s *service) Verify(c context.Context, sessionUID string) error {
	if sessionUID == "" {
		return myerrors.NewAuthenticationError(fmt.Errorf("missing session"))
	}

	session, found, err := s.vault.Get(c, sessionUID)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if !found {
		return myerrors.NewAuthenticationError(fmt.Errorf("unknown session"))
	}
	if session.IsExpired(s.nower.Now()) {
		return myerrors.NewAuthenticationError(fmt.Errorf("session expired"))
	}

	return nil
}
