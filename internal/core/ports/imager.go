package ports

import "context"

// ImageAuthor turns a staged directory tree into a bootable image.
//
//go:generate mockgen -source=imager.go -destination=mocks/mock_imager.go -package=mocks
type ImageAuthor interface {
	// Author produces a bootable image at outPath from the staging directory.
	Author(ctx context.Context, stagingDir, outPath string) error
}
