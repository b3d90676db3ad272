// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"AddBOM/internal/domain/model"
	"AddBOM/internal/infrastructure/logging"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// Visitor は走査中に見つかったエントリを受け取ります
type Visitor interface {
	// VisitFile は隠しでないディレクトリ以外のエントリごとに呼ばれます。
	// エラーを返すと走査全体が中断されます。
	VisitFile(path string) error
	// SkipHidden は隠しエントリを読み飛ばしたときに呼ばれます
	SkipHidden(path string)
}

// Walker はディレクトリを深さ優先で再帰的に走査します
type Walker struct {
	fs     afero.Fs
	logger logging.Logger
}

// NewWalker は新しい Walker インスタンスを作成します
func NewWalker(fs afero.Fs, logger logging.Logger) *Walker {
	return &Walker{fs: fs, logger: logger}
}

// ValidateDirectoryPath はパスが存在するディレクトリであることを確認します
func (w *Walker) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	info, err := w.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません: %s", path)
	}

	return nil
}

// Walk は dir 配下を走査し、ファイルを visitor に渡します。
// 兄弟エントリの順序は一覧の順序に従います。最初のエラーで走査を中断します。
func (w *Walker) Walk(dir string, visitor Visitor) error {
	names, err := w.readDirNames(dir)
	if err != nil {
		return err
	}

	for _, name := range names {
		path := filepath.Join(dir, name)

		if model.IsHidden(name) {
			w.logger.Log("DEBUG", fmt.Sprintf("隠しエントリをスキップ: %s", filepath.ToSlash(path)), nil)
			visitor.SkipHidden(path)
			continue
		}

		// Stat はシンボリックリンクを辿る
		info, err := w.fs.Stat(path)
		if err != nil {
			return fmt.Errorf("エントリ '%s' の情報取得に失敗しました: %w", path, err)
		}

		switch model.ClassifyEntry(name, info.IsDir()) {
		case model.Directory:
			if err := w.Walk(path, visitor); err != nil {
				return err
			}
		case model.File:
			if err := visitor.VisitFile(path); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *Walker) readDirNames(dir string) ([]string, error) {
	f, err := w.fs.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリ '%s' を開けませんでした: %w", dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリ '%s' の一覧取得に失敗しました: %w", dir, err)
	}
	return names, nil
}
