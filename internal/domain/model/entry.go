// package model はドメインモデルを定義します
package model

import "strings"

// HiddenPrefix は隠しエントリを示す先頭文字です
const HiddenPrefix = "."

// EntryKind はディレクトリエントリの種別を表します
type EntryKind int

const (
	// Hidden は名前が "." で始まるエントリです
	Hidden EntryKind = iota
	// Directory はディレクトリです
	Directory
	// File はディレクトリ以外のエントリです
	File
)

func (k EntryKind) String() string {
	switch k {
	case Hidden:
		return "hidden"
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// IsHidden は最終パス要素の名前が隠しエントリかどうかを判定します
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// ClassifyEntry はエントリ名とディレクトリ判定から種別を導出します。
// 隠しエントリの判定はディレクトリ判定より優先されます。
func ClassifyEntry(name string, isDir bool) EntryKind {
	if IsHidden(name) {
		return Hidden
	}
	if isDir {
		return Directory
	}
	return File
}
