package filesystem

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/logging"
)

// Condition selects when WriteFile actually writes
type Condition int

const (
	// WriteIfChanged writes when the file is missing or its content differs
	WriteIfChanged Condition = iota
	// WriteIfMissing writes only when nothing exists at the path
	WriteIfMissing
	// WriteAlways always writes
	WriteAlways
)

// String returns the configuration name of the condition
func (c Condition) String() string {
	switch c {
	case WriteIfChanged:
		return "changed"
	case WriteIfMissing:
		return "missing"
	case WriteAlways:
		return "always"
	default:
		return "unknown"
	}
}

// ParseCondition parses "changed", "missing" or "always"
func ParseCondition(s string) (Condition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "changed", "":
		return WriteIfChanged, nil
	case "missing":
		return WriteIfMissing, nil
	case "always":
		return WriteAlways, nil
	default:
		return WriteIfChanged, errors.Newf(errors.ErrInvalidInput, "unknown write condition %q", s)
	}
}

// WriteFile writes data to path when cond allows it, creating parent
// directories as needed. The content is staged in a sibling temporary file
// and renamed into place. It reports whether a write happened.
func WriteFile(fsys FS, path string, data []byte, perm fs.FileMode, cond Condition) (bool, error) {
	logger := logging.GetLogger("filesystem")

	info, err := fsys.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return false, errors.Newf(errors.ErrFileWrite, "%s is a directory", path).WithDetail("path", path)
	case err == nil:
		if cond == WriteIfMissing {
			logger.Debug().Str("path", path).Msg("File exists, skipping write")
			return false, nil
		}
		if cond == WriteIfChanged {
			current, err := fsys.ReadFile(path)
			if err != nil {
				return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).WithDetail("path", path)
			}
			if bytes.Equal(current, data) {
				logger.Debug().Str("path", path).Msg("Content unchanged, skipping write")
				return false, nil
			}
		}
	case os.IsNotExist(err):
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", path).WithDetail("path", path)
		}
	default:
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).WithDetail("path", path)
	}

	tmp := path + ".tmp"
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmp).WithDetail("path", path)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot move %s into place", path).WithDetail("path", path)
	}

	logger.Info().Str("path", path).Int("bytes", len(data)).Str("condition", cond.String()).Msg("Wrote file")
	return true, nil
}
