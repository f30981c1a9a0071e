package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/logging"
)

// PruneOptions controls PruneEmptyDirs
type PruneOptions struct {
	// KeepRoot leaves the root directory in place even when it ends up empty
	KeepRoot bool
	// Ignore names files that do not keep a directory alive, such as
	// ".DS_Store". They are deleted together with their directory.
	Ignore []string
}

// PruneEmptyDirs removes every directory under root, root included unless
// KeepRoot is set, that holds nothing but ignorable files and other
// removable directories. Symlinks are never followed and always count as
// content. The removed directories are returned children first.
func PruneEmptyDirs(fsys FS, root string, opts PruneOptions) ([]string, error) {
	info, err := fsys.Lstat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "%s does not exist", root).WithDetail("path", root)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", root).WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotDirectory, "%s is not a directory", root).WithDetail("path", root)
	}

	p := &pruner{
		fs:     fsys,
		root:   root,
		opts:   opts,
		ignore: make(map[string]struct{}, len(opts.Ignore)),
		logger: logging.GetLogger("filesystem"),
	}
	for _, name := range opts.Ignore {
		p.ignore[name] = struct{}{}
	}

	done := logging.LogOperationStart(p.logger, "prune")
	defer done()

	if _, err := p.prune(root); err != nil {
		return p.removed, err
	}
	return p.removed, nil
}

type pruner struct {
	fs      FS
	root    string
	opts    PruneOptions
	ignore  map[string]struct{}
	removed []string
	logger  zerolog.Logger
}

// prune reports whether dir was empty enough to go
func (p *pruner) prune(dir string) (bool, error) {
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", dir).WithDetail("path", dir)
	}

	remaining := 0
	var junk []string
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			remaining++
		case entry.IsDir():
			gone, err := p.prune(child)
			if err != nil {
				return false, err
			}
			if !gone {
				remaining++
			}
		default:
			if _, ok := p.ignore[entry.Name()]; ok {
				junk = append(junk, child)
			} else {
				remaining++
			}
		}
	}

	if remaining > 0 {
		return false, nil
	}
	if dir == p.root && p.opts.KeepRoot {
		return false, nil
	}

	for _, file := range junk {
		if err := p.fs.Remove(file); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirRemove, "cannot remove %s", file).WithDetail("path", file)
		}
	}
	if err := p.fs.Remove(dir); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirRemove, "cannot remove %s", dir).WithDetail("path", dir)
	}

	p.logger.Debug().Str("path", dir).Int("ignoredFiles", len(junk)).Msg("Removed empty directory")
	p.removed = append(p.removed, dir)
	return true, nil
}
