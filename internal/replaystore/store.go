// Package replaystore reads replays and score histories from the local
// filesystem, S3 or Google Cloud Storage.
package replaystore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wifescope/wifescope/pkg/chart"
	"github.com/wifescope/wifescope/pkg/config"
)

// Store abstracts blob storage keyed by slash-separated paths.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

var (
	ErrNotFound = errors.New("blob not found")
	ErrTooLarge = errors.New("blob exceeds the configured max size")
)

// LocalStore implements Store using the local filesystem.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) path(key string) string {
	if filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(s.BaseDir, filepath.FromSlash(key))
}

// Get reads the file at key.
func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return data, err
}

// Put writes data to key, creating parent directories.
func (s *LocalStore) Put(ctx context.Context, key string, data []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// CachedStore serves reads from a local cache and falls back to a remote
// store, keeping what it fetched.
type CachedStore struct {
	Remote Store
	Cache  *LocalStore
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if data, err := s.Cache.Get(ctx, key); err == nil {
		return data, nil
	}
	data, err := s.Remote.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Put(ctx, key, data); err != nil {
		return nil, fmt.Errorf("caching %s: %w", key, err)
	}
	return data, nil
}

func (s *CachedStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.Remote.Put(ctx, key, data); err != nil {
		return err
	}
	return s.Cache.Put(ctx, key, data)
}

// Location is a parsed key: "s3://bucket/path", "gs://bucket/path", or a
// plain path resolved against the configured backend.
type Location struct {
	Scheme string // "s3", "gs" or "" for the configured backend
	Bucket string
	Path   string
}

// ParseLocation splits a key into its scheme, bucket and path.
func ParseLocation(key string) (Location, error) {
	scheme, rest, ok := strings.Cut(key, "://")
	if !ok {
		return Location{Path: key}, nil
	}
	switch scheme {
	case "s3", "gs":
	default:
		return Location{}, fmt.Errorf("unsupported scheme %q in %q", scheme, key)
	}
	bucket, path, _ := strings.Cut(rest, "/")
	if bucket == "" || path == "" {
		return Location{}, fmt.Errorf("key %q needs both a bucket and a path", key)
	}
	return Location{Scheme: scheme, Bucket: bucket, Path: path}, nil
}

func (l Location) String() string {
	if l.Scheme == "" {
		return l.Path
	}
	return l.Scheme + "://" + l.Bucket + "/" + l.Path
}

// Open returns the store for a location. Remote stores are wrapped in a
// CachedStore below config.CacheDir when cache is true.
func Open(ctx context.Context, cfg config.StorageConfig, loc Location, cache bool) (Store, error) {
	var (
		remote Store
		bucket string
		err    error
	)
	switch {
	case loc.Scheme == "s3" || (loc.Scheme == "" && cfg.Backend == "s3"):
		s3cfg := cfg.S3
		if loc.Bucket != "" {
			s3cfg.Bucket = loc.Bucket
		}
		bucket = s3cfg.Bucket
		remote, err = NewS3Store(ctx, s3cfg)
	case loc.Scheme == "gs" || (loc.Scheme == "" && cfg.Backend == "gcs"):
		bucket = cfg.GCS.Bucket
		if loc.Bucket != "" {
			bucket = loc.Bucket
		}
		remote, err = NewGCSStore(ctx, bucket)
	default:
		dir := cfg.LocalDir
		if dir == "" {
			dir = "."
		}
		return NewLocalStore(dir), nil
	}
	if err != nil {
		return nil, err
	}
	if !cache {
		return remote, nil
	}
	return &CachedStore{Remote: remote, Cache: NewLocalStore(config.CacheDir(bucket))}, nil
}

// Fetch resolves key, downloads it and decompresses it according to its
// extension. Blobs over cfg.MaxSize, before or after decompression, fail
// with ErrTooLarge.
func Fetch(ctx context.Context, cfg config.StorageConfig, key string, cache bool) ([]byte, error) {
	limit, err := maxSize(cfg.MaxSize)
	if err != nil {
		return nil, err
	}
	loc, err := ParseLocation(key)
	if err != nil {
		return nil, err
	}
	store, err := Open(ctx, cfg, loc, cache)
	if err != nil {
		return nil, fmt.Errorf("opening store for %s: %w", loc, err)
	}
	data, err := store.Get(ctx, loc.Path)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", loc, err)
	}
	if limit > 0 && uint64(len(data)) > limit {
		return nil, fmt.Errorf("fetching %s: %w: %s > %s", loc, ErrTooLarge, chart.FileSize(len(data)), chart.FileSize(limit))
	}
	return Decode(loc.Path, data, limit)
}

// maxSize parses the configured size limit; 0 means unlimited.
func maxSize(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	limit, err := chart.ParseFileSize(s)
	if err != nil {
		return 0, fmt.Errorf("max size: %w", err)
	}
	return limit.Bytes(), nil
}
