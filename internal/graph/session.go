package graph

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	apierrors "memberhub/internal/errors"
	"memberhub/internal/loaders"
	"memberhub/internal/store"
	"memberhub/pkg/logging"
)

var errNoSession = errors.New("graphql: request has no session")

// Session is the request-scoped data-access handle: the store plus the
// loaders batching relation lookups for this request only.
type Session struct {
	Store   store.Store
	Loaders *loaders.Loaders
	Logger  logging.FieldLogger
}

// NewSession creates a session with fresh loaders over st.
func NewSession(st store.Store, logger logging.FieldLogger, opts loaders.Options) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Session{
		Store:   st,
		Loaders: loaders.New(st, opts),
		Logger:  logger,
	}
}

func (s *Session) fail(err error) error {
	return apierrors.Present(s.Logger, err)
}

type sessionKey struct{}

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil {
		return nil, errNoSession
	}
	return s, nil
}
