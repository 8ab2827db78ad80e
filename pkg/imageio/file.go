package imageio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-aobench/pkg/renderer"
)

// WriteFile encodes fb into path. The image is staged in a temporary file in
// the same directory and renamed into place, so path is either complete or untouched.
func WriteFile(path string, fb *renderer.FrameBuffer, f Format) error {
	data, err := EncodeBytes(fb, f)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("imageio: creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("imageio: creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("imageio: writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("imageio: writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("imageio: writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("imageio: writing %s: %w", path, err)
	}
	return nil
}
