package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// userRow is the shape of a user record as stored in SurrealDB. The password
// column is hashed inside the database and never selected.
type userRow struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Email     string                  `json:"email"`
	CreatedAt int64                   `json:"created_at"`
}

func (r *userRow) toDomain() *domain.User {
	u := &domain.User{Email: r.Email}
	if r.ID != nil {
		u.ID = r.ID.String()
	}
	if r.CreatedAt > 0 {
		u.CreatedAt = time.Unix(r.CreatedAt, 0).UTC()
	}
	return u
}

const userColumns = "id, email, created_at"

// SurrealUserStore implements domain.UserRepository on SurrealDB. Passwords
// are hashed with crypto::argon2 on the database side.
type SurrealUserStore struct {
	conn *Connection
}

// NewSurrealUserStore creates a new SurrealUserStore.
func NewSurrealUserStore(conn *Connection) *SurrealUserStore {
	return &SurrealUserStore{conn: conn}
}

// EnsureSchema defines the tables and unique indexes the stores rely on.
func EnsureSchema(ctx context.Context, conn *Connection) error {
	const schema = `
		DEFINE TABLE IF NOT EXISTS user SCHEMALESS;
		DEFINE INDEX IF NOT EXISTS user_email ON user FIELDS email UNIQUE;
		DEFINE TABLE IF NOT EXISTS session SCHEMALESS;
		DEFINE INDEX IF NOT EXISTS session_token ON session FIELDS token UNIQUE;
	`
	ctx, cancel := getTimeoutFromContext(ctx, conn.QueryTimeout())
	defer cancel()
	return conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		return Execute(ctx, db, schema, nil)
	})
}

// FindUserByEmail queries for a single user by their email address.
// It returns (nil, nil) when no user matches.
func (s *SurrealUserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	var row *userRow
	err := s.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		var err error
		row, err = QueryOne[userRow](ctx, db,
			"SELECT "+userColumns+" FROM user WHERE email = $email",
			map[string]any{"email": domain.NormalizeEmail(email)})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return row.toDomain(), nil
}

// FindUserByID loads a user by its record ID, e.g. "user:abc".
func (s *SurrealUserStore) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	table, key, ok := strings.Cut(id, ":")
	if !ok || table != "user" || key == "" {
		return nil, NewDBError(ErrInvalidInput, fmt.Sprintf("invalid user id %q", id))
	}

	ctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	var row *userRow
	err := s.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		var err error
		row, err = QueryOne[userRow](ctx, db,
			"SELECT "+userColumns+" FROM type::thing('user', $key)",
			map[string]any{"key": key})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row.toDomain(), nil
}

// CreateUser creates a new user. An existing email yields domain.ErrUserAlreadyExists.
func (s *SurrealUserStore) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, NewDBError(ErrInvalidInput, "email and password are required")
	}

	existing, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	ctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	query := `
		CREATE user SET
			email = $email,
			password = crypto::argon2::generate($password),
			created_at = $created_at
		RETURN ` + userColumns
	params := map[string]any{
		"email":      email,
		"password":   password,
		"created_at": time.Now().Unix(),
	}

	var row *userRow
	err = s.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		var err error
		row, err = QueryOne[userRow](ctx, db, query, params)
		return err
	})
	if err != nil {
		// The unique index catches a concurrent signup for the same email.
		if strings.Contains(err.Error(), "already contains") {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	if row == nil {
		return nil, NewDBError(ErrQueryFailed, "create user returned no record")
	}
	return row.toDomain(), nil
}

// VerifyPassword checks the password against the stored argon2 hash.
func (s *SurrealUserStore) VerifyPassword(ctx context.Context, email, password string) (*domain.User, error) {
	ctx, cancel := getTimeoutFromContext(ctx, s.conn.QueryTimeout())
	defer cancel()

	var row *userRow
	err := s.conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		var err error
		row, err = QueryOne[userRow](ctx, db,
			"SELECT "+userColumns+" FROM user WHERE email = $email AND crypto::argon2::compare(password, $password)",
			map[string]any{"email": domain.NormalizeEmail(email), "password": password})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if row == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return row.toDomain(), nil
}

var _ domain.UserRepository = (*SurrealUserStore)(nil)
