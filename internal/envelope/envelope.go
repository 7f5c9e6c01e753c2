// Package envelope builds the metadata block that wraps every API response.
package envelope

import (
	"context"
	"time"

	"ara/internal/catalog/models"
	"ara/pkg/requestcontext"
)

// Meta identifies the standard a response was produced from.
type Meta struct {
	Standard        string `json:"standard"`
	Version         string `json:"version"`
	Publisher       string `json:"publisher"`
	Generated       string `json:"generated"`
	Count           *int   `json:"count,omitempty"`
	TotalInStandard *int   `json:"totalInStandard,omitempty"`
}

// Response is the {meta, data} envelope for collection and document endpoints.
type Response[T any] struct {
	Meta Meta `json:"meta"`
	Data T    `json:"data"`
}

// Identity is the subset of the standard every envelope repeats.
type Identity struct {
	Title     string
	Version   string
	Publisher string
}

// IdentityOf projects a standard onto its envelope identity.
func IdentityOf(std models.Standard) Identity {
	return Identity{Title: std.Title, Version: std.Version, Publisher: std.Publisher}
}

// NewMeta stamps the identity with the request time, so every envelope
// produced while serving one request carries the same timestamp.
func NewMeta(ctx context.Context, id Identity) Meta {
	return Meta{
		Standard:  id.Title,
		Version:   id.Version,
		Publisher: id.Publisher,
		Generated: requestcontext.Now(ctx).UTC().Format(time.RFC3339),
	}
}

// WithCount sets the result count.
func (m Meta) WithCount(n int) Meta {
	m.Count = &n
	return m
}

// WithTotal sets the number of controls the full standard defines.
func (m Meta) WithTotal(n int) Meta {
	m.TotalInStandard = &n
	return m
}

// List wraps a collection, setting count from its length. A nil slice is
// emitted as an empty JSON array.
func List[T any](meta Meta, data []T) Response[[]T] {
	if data == nil {
		data = []T{}
	}
	return Response[[]T]{Meta: meta.WithCount(len(data)), Data: data}
}
