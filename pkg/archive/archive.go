// Package archive packs directory trees into tar.gz archives and
// unpacks them again, preserving POSIX permission bits where the
// archive records them.
package archive

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mholt/archives"

	"github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/fsops"
	"github.com/glorpus-work/fskit/pkg/permissions"
)

// Pack creates a gzip-compressed tar archive at archivePath containing
// the tree rooted at sourceDir. Entries are stored relative to
// sourceDir.
func Pack(ctx context.Context, sourceDir, archivePath string) error {
	absolute, err := filepath.Abs(sourceDir)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to resolve source directory %s", sourceDir)
	}
	if !fsops.IsDirectory(absolute) {
		return errors.Wrapf(errors.ErrNotFound, "source directory %s", sourceDir)
	}

	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absolute + string(os.PathSeparator): "",
	})
	if err != nil {
		return errors.Wrap(errors.FromOS(err), "failed to read files from disk")
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create archive %s", archivePath)
	}
	defer func() {
		_ = out.Sync()
		_ = out.Close()
	}()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}
	if err := format.Archive(ctx, out, files); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to write archive %s", archivePath)
	}
	return nil
}

// Unpack extracts every entry of the archive at archivePath into
// destDir, creating it as needed.
func Unpack(ctx context.Context, archivePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to open archive %s", archivePath)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := fsops.CreateDirectories(destDir); err != nil {
		return err
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return extractEntry(fsys, path, destDir, d)
	})
}

// UnpackFile extracts the single named entry of the archive at
// archivePath to destPath.
func UnpackFile(ctx context.Context, archivePath, entryPath, destPath string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to open archive %s", archivePath)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	src, err := fsys.Open(entryPath)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "no entry %s in archive %s", entryPath, archivePath)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat entry %s", entryPath)
	}

	if err := fsops.CreateDirectories(filepath.Dir(destPath)); err != nil {
		return err
	}
	return writeEntry(src, destPath, entryMode(info))
}

func extractEntry(fsys fs.FS, path, destDir string, d fs.DirEntry) error {
	if path == "." {
		return nil
	}
	destPath := filepath.Join(destDir, filepath.FromSlash(path))

	if d.IsDir() {
		return fsops.CreateDirectories(destPath)
	}

	src, err := fsys.Open(path)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to open archive entry %s", path)
	}
	defer func() { _ = src.Close() }()

	info, err := d.Info()
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to stat archive entry %s", path)
	}
	return writeEntry(src, destPath, entryMode(info))
}

func writeEntry(src io.Reader, destPath string, mode fs.FileMode) error {
	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to create %s", destPath)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrapf(errors.FromOS(err), "failed to extract to %s", destPath)
	}
	return nil
}

// entryMode picks the permission bits for an extracted entry, falling
// back to the default file mode when the archive recorded none.
func entryMode(info fs.FileInfo) fs.FileMode {
	perm := permissions.FromFileMode(info.Mode())
	if perm == 0 {
		return permissions.FileModeDefault
	}
	return perm.FileMode()
}
