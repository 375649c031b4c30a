package fsbackend

import (
	"compress/zlib"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/colinmarc/gitcore/internal/errutil"
	"github.com/colinmarc/gitcore/internal/readutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// looseObjectPath returns the absolute path of an object given its hex
// id.
// .git/objects/first_2_chars_of_sha/remaining_chars_of_sha
func (b *Backend) looseObjectPath(hexOid string) string {
	return filepath.Join(b.objectDirPath, hexOid[:2], hexOid[2:])
}

// Object returns the object that has the given id.
func (b *Backend) Object(oid ginternals.Oid) (*object.Object, error) {
	if cached, found := b.cache.Get(oid); found {
		if o, valid := cached.(*object.Object); valid {
			return o, nil
		}
	}

	o, err := b.readLooseObject(oid)
	if err != nil {
		return nil, err
	}
	b.cache.Add(oid, o)
	return o, nil
}

// readLooseObject reads and decodes the loose object stored at oid's
// fan-out path. A loose object is zlib-compressed on disk; its
// uncompressed frame is "<type> SP <size> NUL <content>".
func (b *Backend) readLooseObject(oid ginternals.Oid) (o *object.Object, err error) {
	strOid := oid.String()
	p := b.looseObjectPath(strOid)

	f, err := b.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("object %s: %w", strOid, ginternals.ErrObjectNotFound)
		}
		return nil, xerrors.Errorf("could not open object %s at %s: %w", strOid, p, err)
	}
	defer errutil.Close(f, &err)

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object %s at %s: %s: %w", strOid, p, err, object.ErrCorruptedObject)
	}
	defer errutil.Close(zr, &err)

	buf, err := io.ReadAll(zr)
	if err != nil {
		return nil, xerrors.Errorf("could not read object %s at %s: %s: %w", strOid, p, err, object.ErrCorruptedObject)
	}

	pos := 0
	typ := readutil.ReadTo(buf, ' ')
	if typ == nil {
		return nil, xerrors.Errorf("could not find type for object %s at %s: %w", strOid, p, object.ErrCorruptedObject)
	}
	oType, err := object.NewTypeFromString(string(typ))
	if err != nil {
		return nil, xerrors.Errorf("object %s at %s: %w", strOid, p, err)
	}
	pos += len(typ) + 1 // +1 for the space

	size := readutil.ReadTo(buf[pos:], 0)
	if size == nil {
		return nil, xerrors.Errorf("could not find size for object %s at %s: %w", strOid, p, object.ErrCorruptedObject)
	}
	oSize, err := strconv.Atoi(string(size))
	if err != nil {
		return nil, xerrors.Errorf("invalid size %q for object %s at %s: %w", size, strOid, p, object.ErrCorruptedObject)
	}
	pos += len(size) + 1 // +1 for the NUL

	content := buf[pos:]
	if len(content) != oSize {
		return nil, xerrors.Errorf("object %s at %s: declared size %d, got %d: %w", strOid, p, oSize, len(content), object.ErrCorruptedObject)
	}

	return object.New(oType, content), nil
}

// HasObject returns whether an object exists in the database.
func (b *Backend) HasObject(oid ginternals.Oid) (bool, error) {
	_, err := b.fs.Stat(b.looseObjectPath(oid.String()))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, xerrors.Errorf("could not check for object %s: %w", oid.String(), err)
}

// WriteObject adds an object to the database and returns its id.
// Writing an object that already exists is a no-op.
func (b *Backend) WriteObject(o *object.Object) (ginternals.Oid, error) {
	oid := o.ID()

	found, err := b.HasObject(oid)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not check if object %s already exists: %w", oid.String(), err)
	}
	if found {
		return oid, nil
	}

	data, err := o.Compress()
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not compress object %s: %w", oid.String(), err)
	}

	p := b.looseObjectPath(oid.String())
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create directory for object %s: %w", oid.String(), err)
	}
	// Loose objects are read-only: git never mutates them in place.
	if err := afero.WriteFile(b.fs, p, data, 0o444); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not persist object %s at %s: %w", oid.String(), p, err)
	}

	b.cache.Add(oid, o)
	return oid, nil
}

// isLooseObjectDir reports whether name is a valid fan-out directory
// name, i.e. two hex characters.
func isLooseObjectDir(name string) bool {
	if len(name) != 2 {
		return false
	}
	n, err := strconv.ParseInt(name, 16, 64)
	return err == nil && n >= 0x00 && n <= 0xff
}

// ObjectIDsWithPrefix returns every object id whose hex representation
// starts with prefix. prefix is not lower-cased or otherwise
// normalized; the fan-out directory listing it's compared against
// isn't normalized either.
func (b *Backend) ObjectIDsWithPrefix(prefix string) ([]ginternals.Oid, error) {
	if len(prefix) < 2 {
		return b.scanFanOutDirs(prefix)
	}

	dir := filepath.Join(b.objectDirPath, prefix[:2])
	entries, err := afero.ReadDir(b.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, xerrors.Errorf("could not list directory %s: %w", dir, err)
	}

	rest := prefix[2:]
	var out []ginternals.Oid
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), rest) {
			continue
		}
		oid, err := ginternals.NewOidFromStr(prefix[:2] + e.Name())
		if err != nil {
			continue
		}
		out = append(out, oid)
	}
	return out, nil
}

// scanFanOutDirs handles a prefix shorter than the 2-character fan-out
// directory name by scanning every fan-out directory that matches.
func (b *Backend) scanFanOutDirs(prefix string) ([]ginternals.Oid, error) {
	dirs, err := afero.ReadDir(b.fs, b.objectDirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, xerrors.Errorf("could not list %s: %w", b.objectDirPath, err)
	}

	var out []ginternals.Oid
	for _, d := range dirs {
		if !d.IsDir() || !isLooseObjectDir(d.Name()) || !strings.HasPrefix(d.Name(), prefix) {
			continue
		}
		entries, err := afero.ReadDir(b.fs, filepath.Join(b.objectDirPath, d.Name()))
		if err != nil {
			return nil, xerrors.Errorf("could not list %s: %w", d.Name(), err)
		}
		for _, e := range entries {
			oid, err := ginternals.NewOidFromStr(d.Name() + e.Name())
			if err != nil {
				continue
			}
			out = append(out, oid)
		}
	}
	return out, nil
}
