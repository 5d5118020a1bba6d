package storage

import (
	"context"
	"io"
)

// Uploader persists one synthesized audio artifact and returns the URL the
// serving layer hands back to clients. Artifact names are unique per
// response; lifecycle beyond that is the store's concern, not the
// pipeline's.
type Uploader interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (url string, err error)
}
