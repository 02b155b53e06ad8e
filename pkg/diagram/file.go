package diagram

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// DefaultExtension is used when Save is called without a path.
const DefaultExtension = ".mmd"

// Extensions lists the file extensions Save accepts.
var Extensions = []string{".mmd", ".mermaid"}

// Save writes the script to path, overwriting any existing file.
// An empty path saves to "./<title>.mmd". Paths that do not end in one of
// [Extensions] fail with ErrCodeInvalidExtension before anything is written.
func (g *Graph) Save(path string) error {
	if path == "" {
		path = "./" + g.Title + DefaultExtension
	}
	if err := errors.ValidateExtension(path, Extensions); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(g.Script), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// Load reads a diagram file. The title is the file's base name without its
// extension and the whole content becomes the script. A missing file fails
// with ErrCodeFileNotFound.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "could not find a file in path %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	base := filepath.Base(path)
	return Read(f, strings.TrimSuffix(base, filepath.Ext(base)))
}

// Read reads a raw diagram script from r.
func Read(r io.Reader, title string) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read diagram %q", title)
	}
	return NewGraph(title, string(data)), nil
}
