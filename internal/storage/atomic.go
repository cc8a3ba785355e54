package storage

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic пишет data во временный файл рядом с dest и переименовывает его поверх dest.
// При любой ошибке временный файл удаляется, а dest остаётся прежним.
func writeAtomic(dest string, data io.Reader) error {
	perm := os.FileMode(filePerm)
	if info, err := os.Stat(dest); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	bw := bufio.NewWriter(tmp)
	if _, err := io.Copy(bw, data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	_ = os.Chmod(tmpPath, perm)

	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
