// Package report はコンソールへの処理結果の出力を提供します
package report

import (
	"fmt"
	"io"

	"AddBOM/internal/domain/model"
)

// Reporter はファイルごとの処理結果を 1 行ずつ書き出します
type Reporter struct {
	writer io.Writer
}

// NewReporter は新しい Reporter インスタンスを作成します
func NewReporter(writer io.Writer) *Reporter {
	return &Reporter{writer: writer}
}

// WriteStatus はファイル 1 件の処理結果を出力します
func (r *Reporter) WriteStatus(result model.MarkResult) error {
	var err error
	switch result.Status {
	case model.StatusAdded:
		_, err = fmt.Fprintf(r.writer, "[%s] に BOM を追加しました。\n", result.Path)
	case model.StatusAlreadyPresent:
		_, err = fmt.Fprintf(r.writer, "[%s] に BOM は既に存在しています。\n", result.Path)
	default:
		err = fmt.Errorf("不明な処理結果です: %v", result.Status)
	}
	return err
}

// WriteSummary は実行全体の集計を出力します
func (r *Reporter) WriteSummary(summary model.Summary) error {
	_, err := fmt.Fprintf(r.writer, "完了: ファイル %d 件（追加 %d 件、既存 %d 件）、隠しエントリ %d 件をスキップしました。\n",
		summary.Files, summary.Added, summary.AlreadyPresent, summary.Hidden)
	return err
}
