package vector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// Encode writes lines to w, one newline terminated record each.
func Encode(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Write replaces the file at path with lines. The content is staged in a
// temporary file next to path and renamed into place, so path is either
// left as it was or holds the complete new set of lines.
func Write(path string, lines []Line) error {
	temp, err := createTemp(path)
	if err != nil {
		return fmt.Errorf("create vector file: %w", err)
	}
	// always remove temp
	defer os.Remove(temp.Name())
	defer temp.Close()

	if err := Encode(temp, lines); err != nil {
		return fmt.Errorf("write %s: %w", temp.Name(), err)
	}

	// keep the mode of a file being replaced; new files get 0666 less umask
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		if err := temp.Chmod(fi.Mode().Perm()); err != nil {
			return fmt.Errorf("chmod %s: %w", temp.Name(), err)
		}
	}

	if err := temp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", temp.Name(), err)
	}

	if err := os.Rename(temp.Name(), path); err != nil {
		return fmt.Errorf("rename vector file: %w", err)
	}

	return nil
}

// createTemp opens a new file next to path. Unlike os.CreateTemp, the file is
// created with 0666 so the process umask decides its final permissions.
func createTemp(path string) (*os.File, error) {
	dir, base := filepath.Dir(path), filepath.Base(path)
	for range 100 {
		name := filepath.Join(dir, fmt.Sprintf("%s-%08x.partial", base, rand.Uint32()))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}

	return nil, &fs.PathError{Op: "createtemp", Path: filepath.Join(dir, base+"-*.partial"), Err: fs.ErrExist}
}
