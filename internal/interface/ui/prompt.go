// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ExitPrompt は終了前に表示するメッセージです
const ExitPrompt = "\nEnterキーを押して終了してください..."

// WaitForEnter はプロンプトを表示し、1 行の入力を受け取るまで待機します。
// 入力が EOF で終わった場合も待機を終了します。
func WaitForEnter(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprint(out, ExitPrompt); err != nil {
		return fmt.Errorf("プロンプトの表示に失敗しました: %w", err)
	}

	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("入力の読み込みに失敗しました: %w", err)
	}
	return nil
}
