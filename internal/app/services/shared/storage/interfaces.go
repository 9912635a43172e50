package storage

import "context"

// ExportArchive keeps a copy of every generated export file in object
// storage so downloads can be replayed without rebuilding them.
type ExportArchive interface {
	Upload(ctx context.Context, fileName string, data []byte, contentType string) error
}
