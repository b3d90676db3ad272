// Package stamp はディレクトリ配下のファイルに BOM を付与する処理を提供します
package stamp

import (
	"fmt"

	"AddBOM/internal/domain/model"
	"AddBOM/internal/infrastructure/filesystem"
	"AddBOM/internal/infrastructure/logging"
)

// TreeWalker はディレクトリの検証と走査を行うインターフェースです
type TreeWalker interface {
	filesystem.DirectoryValidator
	Walk(dir string, visitor filesystem.Visitor) error
}

// FileMarker はファイル 1 件に BOM を付与するインターフェースです
type FileMarker interface {
	Mark(path string) (model.MarkResult, error)
}

// StatusWriter はファイル 1 件の処理結果を出力するインターフェースです
type StatusWriter interface {
	WriteStatus(result model.MarkResult) error
}

// Service は走査、BOM 付与、結果出力を結び付けます
type Service struct {
	walker   TreeWalker
	marker   FileMarker
	reporter StatusWriter
	logger   logging.Logger
}

// NewService は新しい Service インスタンスを作成します
func NewService(walker TreeWalker, marker FileMarker, reporter StatusWriter, logger logging.Logger) *Service {
	return &Service{
		walker:   walker,
		marker:   marker,
		reporter: reporter,
		logger:   logger,
	}
}

// Run は root 配下のすべての隠しでないファイルに BOM を付与します。
// 最初のエラーで処理を中断し、それまでに出力した結果だけが進捗の記録になります。
func (s *Service) Run(root string) (model.Summary, error) {
	if err := s.walker.ValidateDirectoryPath(root); err != nil {
		return model.Summary{}, fmt.Errorf("ルートディレクトリが不正です: %w", err)
	}

	s.logger.Log("INFO", fmt.Sprintf("走査を開始します: %s", root), nil)

	r := &run{Service: s}
	if err := s.walker.Walk(root, r); err != nil {
		return r.summary, fmt.Errorf("BOM の付与に失敗しました: %w", err)
	}

	s.logger.Log("INFO", fmt.Sprintf("走査が完了しました: ファイル %d 件", r.summary.Files), nil)
	return r.summary, nil
}

// run は 1 回の実行の集計を保持する Visitor です
type run struct {
	*Service
	summary model.Summary
}

func (r *run) VisitFile(path string) error {
	result, err := r.marker.Mark(path)
	if err != nil {
		return err
	}
	r.summary.Record(result)
	return r.reporter.WriteStatus(result)
}

func (r *run) SkipHidden(string) {
	r.summary.Hidden++
}
