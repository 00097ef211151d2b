// Package assets resolves image URLs with a one-time remote fallback.
package assets

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"communion.invite/configs/configslog"

	"go.uber.org/zap"
)

// StaticPrefix is the URL prefix the static directory is mounted on.
const StaticPrefix = "/static"

// Resolve returns the URL the page should use for the named image. When the
// file exists under dir it is served locally; otherwise fallback is returned.
// The check happens once per call and is not retried.
func Resolve(dir, name, fallback string) string {
	if name == "" {
		return fallback
	}
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
	switch {
	case err == nil && !info.IsDir():
		return path.Join(StaticPrefix, name)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		configslog.Log.Warn("Static asset could not be checked, using fallback",
			zap.String("dir", dir), zap.String("name", name), zap.Error(err))
	}
	return fallback
}
