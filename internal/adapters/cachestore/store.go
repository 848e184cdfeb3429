// Package cachestore persists the enrichment caches. Each enrichment
// kind serializes its whole map to one blob, keyed by a namespace
// string, so backends only need load/save of opaque bytes.
package cachestore

import "context"

// Store is a durable namespace -> blob mapping.
//
// Load returns (nil, nil) when the namespace has never been saved.
// Save overwrites any prior blob for the namespace.
type Store interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, data []byte) error
}
