package ink

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// WriteSVG writes svg to path, wrapped for HTML when pos is not none.
// path must end in .svg, or .html when wrapping.
func WriteSVG(path, svg string, pos Position) error {
	allowed := []string{".svg"}
	if pos != "" && pos != PositionNone {
		allowed = append(allowed, ".html")
	}
	if err := errors.ValidateExtension(path, allowed); err != nil {
		return err
	}
	return write(path, []byte(WrapHTML(svg, pos)))
}

// WritePNG writes png to path, which must end in .png.
func WritePNG(path string, png []byte) error {
	if err := errors.ValidateExtension(path, []string{".png"}); err != nil {
		return err
	}
	return write(path, png)
}

func write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
