package database

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/scalemyorg/internal/session"
	"github.com/surrealdb/surrealdb.go"
)

type sessionRow struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

// SurrealSessionStore implements session.Store on the session table.
type SurrealSessionStore struct {
	conn *Connection
	now  func() time.Time
}

// NewSurrealSessionStore creates a session store sharing the given connection.
func NewSurrealSessionStore(conn *Connection) *SurrealSessionStore {
	return &SurrealSessionStore{conn: conn, now: time.Now}
}

// Create inserts a session record.
func (s *SurrealSessionStore) Create(ctx context.Context, sess session.Session) error {
	if sess.ID == "" || sess.UserID == "" {
		return NewDBError(ErrInvalidInput, "session id and user id are required")
	}
	if !sess.ExpiresAt.After(s.now()) {
		return NewDBError(ErrInvalidInput, "session already expired")
	}

	ctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	params := map[string]any{"data": sessionRow{
		Token:     sess.ID,
		UserID:    sess.UserID,
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt.Unix(),
	}}
	return s.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		return Execute(ctx, db, "CREATE session CONTENT $data", params)
	})
}

// Get returns the session for id; expired sessions are deleted and reported
// as absent.
func (s *SurrealSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, nil
	}

	qctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	var row *sessionRow
	err := s.conn.WithConnection(qctx, func(db *surrealdb.DB) error {
		var err error
		row, err = QueryOne[sessionRow](qctx, db,
			"SELECT token, user_id, email, expires_at FROM session WHERE token = $token",
			map[string]any{"token": id})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	sess := &session.Session{
		ID:        row.Token,
		UserID:    row.UserID,
		Email:     row.Email,
		ExpiresAt: time.Unix(row.ExpiresAt, 0).UTC(),
	}
	if sess.Expired(s.now()) {
		return nil, s.Delete(ctx, id)
	}
	return sess, nil
}

// Delete removes the session; deleting an unknown token is not an error.
func (s *SurrealSessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	ctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	return s.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		return Execute(ctx, db, "DELETE session WHERE token = $token", map[string]any{"token": id})
	})
}

// PurgeExpired removes every expired session and is run periodically.
func (s *SurrealSessionStore) PurgeExpired(ctx context.Context) error {
	ctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	return s.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		return Execute(ctx, db, "DELETE session WHERE expires_at <= $now", map[string]any{"now": s.now().Unix()})
	})
}

var _ session.Store = (*SurrealSessionStore)(nil)
