package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

// recordingVisitor は受け取ったパスを記録します
type recordingVisitor struct {
	files   []string
	hidden  []string
	failErr error
}

func (v *recordingVisitor) VisitFile(path string) error {
	v.files = append(v.files, filepath.ToSlash(path))
	if v.failErr != nil {
		return v.failErr
	}
	return nil
}

func (v *recordingVisitor) SkipHidden(path string) {
	v.hidden = append(v.hidden, filepath.ToSlash(path))
}

// faultyFs は指定した部分文字列を含むパスへのアクセスをすべて失敗させます
type faultyFs struct {
	afero.Fs
	deny    string
	touched []string
}

var errDenied = errors.New("アクセス拒否")

func (f *faultyFs) check(name string) error {
	slash := filepath.ToSlash(name)
	if strings.Contains(slash, f.deny) {
		f.touched = append(f.touched, slash)
		return &os.PathError{Op: "open", Path: name, Err: errDenied}
	}
	return nil
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	if err := f.check(name); err != nil {
		return nil, err
	}
	return f.Fs.Open(name)
}

func (f *faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if err := f.check(name); err != nil {
		return nil, err
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *faultyFs) Stat(name string) (os.FileInfo, error) {
	if err := f.check(name); err != nil {
		return nil, err
	}
	return f.Fs.Stat(name)
}

func writeFiles(t testing.TB, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
}

func readFile(t testing.TB, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}
