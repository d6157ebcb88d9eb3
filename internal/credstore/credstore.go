// Package credstore persists session credentials in a bbolt database.
// Values are stored as plain strings; the backend issues opaque tokens
// and the store deliberately adds no encryption layer.
package credstore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// storeDirPerm is the permission mode for the store directory.
	storeDirPerm = fs.FileMode(0o700)

	// storeFilePerm is the permission mode for the database file.
	storeFilePerm = fs.FileMode(0o600)

	// storeOpenTimeout is the maximum time to wait for the bolt
	// database lock.
	storeOpenTimeout = 5 * time.Second
)

var (
	credentialsBucket = []byte("credentials")

	accessTokenKey  = []byte("access_token")
	refreshTokenKey = []byte("refresh_token")
	usernameKey     = []byte("username")
	csrfTokenKey    = []byte("csrfToken")
)

// Store wraps a bbolt database holding the session credential slots.
type Store struct {
	db *bolt.DB
}

// Open opens the credential database at the given path, creating it and
// its parent directory if they do not exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), storeDirPerm); err != nil {
		return nil, fmt.Errorf("creating credential store directory: %w", err)
	}

	db, err := bolt.Open(path, storeFilePerm, &bolt.Options{Timeout: storeOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(credentialsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing credential store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key []byte) string {
	var value string

	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(credentialsBucket).Get(key)
		if v != nil {
			value = string(v)
		}

		return nil
	})

	return value
}

func (s *Store) put(key []byte, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(credentialsBucket).Put(key, []byte(value))
	})
}

// AccessToken returns the stored OAuth access token, or empty string.
func (s *Store) AccessToken() string {
	return s.get(accessTokenKey)
}

// RefreshToken returns the stored OAuth refresh token, or empty string.
func (s *Store) RefreshToken() string {
	return s.get(refreshTokenKey)
}

// Username returns the last successfully authenticated username, or
// empty string.
func (s *Store) Username() string {
	return s.get(usernameKey)
}

// CSRFToken returns the stored CSRF token, or empty string.
func (s *Store) CSRFToken() string {
	return s.get(csrfTokenKey)
}

// SetTokens persists a new access/refresh token pair atomically.
func (s *Store) SetTokens(access, refresh string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(credentialsBucket)

		if err := b.Put(accessTokenKey, []byte(access)); err != nil {
			return err
		}

		return b.Put(refreshTokenKey, []byte(refresh))
	})
}

// SetUsername persists the authenticated username.
func (s *Store) SetUsername(username string) error {
	return s.put(usernameKey, username)
}

// SetCSRFToken persists the CSRF token.
func (s *Store) SetCSRFToken(token string) error {
	return s.put(csrfTokenKey, token)
}

// ClearAccessToken removes only the access token. Called before a login
// attempt so a failed login leaves no stale active token behind.
func (s *Store) ClearAccessToken() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(credentialsBucket).Delete(accessTokenKey)
	})
}

// ClearSession removes the access token, refresh token, and username.
// The CSRF token is left alone; it belongs to the cookie session, not
// the OAuth credential set. Idempotent.
func (s *Store) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(credentialsBucket)

		for _, key := range [][]byte{accessTokenKey, refreshTokenKey, usernameKey} {
			if err := b.Delete(key); err != nil {
				return err
			}
		}

		return nil
	})
}
