//go:build !linux

package platform

// NewBackend reports ErrUnsupportedPlatform off Linux.
func NewBackend(opts Options) (Backend, error) {
	return nil, ErrUnsupportedPlatform
}
