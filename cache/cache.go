// Package cache memoizes expensive artifacts in a pluggable Store.
package cache

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"movie-rec/errors"

	"github.com/goccy/go-json"
)

const (
	KeyLearnedModel        = "model:learned"
	KeyCatalogFingerprints = "fingerprints:catalog"
)

type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// JSONCodec encodes artifacts as JSON.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var value T
	err := json.Unmarshal(data, &value)
	return value, err
}

// GetOrBuild returns the artifact stored under key or builds and stores it.
// A stored artifact is trusted as is: nothing checks it against its inputs.
// An artifact that no longer decodes is rebuilt and overwritten.
func GetOrBuild[T any](log *slog.Logger, store Store, key string, codec Codec[T], build func() (T, error)) (T, error) {
	var zero T
	data, err := store.Get(key)
	switch {
	case err == nil:
		value, decodeErr := codec.Decode(data)
		if decodeErr == nil {
			log.Debug("Cache hit", "key", key, "bytes", len(data))
			return value, nil
		}
		log.Warn("Cached artifact is unreadable, rebuilding", "key", key, "error", decodeErr)
	case goerrors.Is(err, errors.ErrMissingCache):
		log.Info("No cached artifact, building", "key", key)
	default:
		return zero, fmt.Errorf("read cache %s: %w", key, err)
	}

	value, err := build()
	if err != nil {
		return zero, err
	}
	encoded, err := codec.Encode(value)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Put(key, encoded); err != nil {
		return zero, fmt.Errorf("write cache %s: %w", key, err)
	}
	return value, nil
}
