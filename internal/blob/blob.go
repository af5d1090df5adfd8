package blob

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Common errors returned by the blob store
var (
	ErrObjectNotFound = errors.New("object not found")
	ErrBadObjectURL   = errors.New("object URL cannot be parsed into bucket and key")
)

// Store is the interface for the image bucket.
type Store interface {
	// Get returns the raw bytes stored under key, or ErrObjectNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes the object with public-read visibility.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// DeleteByURL parses bucket and key out of a fully-qualified object
	// URL and deletes that object. ErrBadObjectURL when the URL does not
	// resolve to a bucket+key pair, ErrObjectNotFound when the object is
	// already gone.
	DeleteByURL(ctx context.Context, objectURL string) error

	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// PublicURL builds the browser-accessible URL for a key.
	PublicURL(key string) string

	// Owns reports whether objectURL points into this store's bucket.
	// The check parses the URL and compares hostnames, so unrelated URLs
	// that merely contain the bucket name somewhere do not match.
	Owns(objectURL string) bool
}

// ParseObjectURL splits a virtual-hosted object URL into its bucket and
// key. The key portion is returned percent-decoded, since object keys may
// contain reserved characters.
func ParseObjectURL(objectURL string) (bucket, key string, err error) {
	u, err := url.Parse(objectURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrBadObjectURL, objectURL)
	}
	host := u.Hostname()
	if host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrBadObjectURL, objectURL)
	}

	// Virtual-hosted style: the bucket is the first hostname label.
	bucket, _, _ = strings.Cut(host, ".")

	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrBadObjectURL, objectURL)
	}

	return bucket, key, nil
}

func publicURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
