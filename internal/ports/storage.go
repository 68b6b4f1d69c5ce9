package ports

import "io"

// ImageStore persists uploaded book covers and returns the server-relative URL
// path they will be served from.
type ImageStore interface {
	SaveBookImage(originalName string, contents io.Reader) (string, error)
}
