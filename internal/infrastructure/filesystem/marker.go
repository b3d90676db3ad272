package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"AddBOM/internal/domain/model"
)

// Marker はファイル先頭に BOM を付与します
type Marker struct {
	fs afero.Fs
}

// NewMarker は新しい Marker インスタンスを作成します
func NewMarker(fs afero.Fs) *Marker {
	return &Marker{fs: fs}
}

// Mark は path のファイルが BOM で始まることを保証します。
// BOM が無い場合は元の内容の前に BOM を付けてファイル全体を書き直します。
// 書き込みが途中で失敗した場合の復旧は行いません。
func (m *Marker) Mark(path string) (model.MarkResult, error) {
	result := model.MarkResult{Path: filepath.ToSlash(path)}

	content, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return result, fmt.Errorf("ファイル '%s' の読み込みに失敗しました: %w", path, err)
	}

	if model.HasBOM(content) {
		result.Status = model.StatusAlreadyPresent
		return result, nil
	}

	if err := m.overwrite(path, model.WithBOM(content)); err != nil {
		return result, err
	}

	result.Status = model.StatusAdded
	return result, nil
}

// overwrite はファイルの内容全体を data で置き換えます
func (m *Marker) overwrite(path string, data []byte) error {
	f, err := m.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("ファイル '%s' を書き込み用に開けませんでした: %w", path, err)
	}

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("ファイル '%s' への書き込みに失敗しました: %w", path, err)
	}
	return nil
}
