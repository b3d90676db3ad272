package stamp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var errDenied = errors.New("アクセス拒否")

// denyFs は指定した部分文字列を含むパスへのアクセスを失敗させます
type denyFs struct {
	afero.Fs
	deny string
}

func (d *denyFs) check(name string) error {
	if strings.Contains(filepath.ToSlash(name), d.deny) {
		return &os.PathError{Op: "open", Path: name, Err: errDenied}
	}
	return nil
}

func (d *denyFs) Open(name string) (afero.File, error) {
	if err := d.check(name); err != nil {
		return nil, err
	}
	return d.Fs.Open(name)
}

func (d *denyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if err := d.check(name); err != nil {
		return nil, err
	}
	return d.Fs.OpenFile(name, flag, perm)
}

func (d *denyFs) Stat(name string) (os.FileInfo, error) {
	if err := d.check(name); err != nil {
		return nil, err
	}
	return d.Fs.Stat(name)
}
