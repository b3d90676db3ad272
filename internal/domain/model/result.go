package model

// MarkStatus はファイル 1 件の処理結果を表します
type MarkStatus int

const (
	// StatusAdded は BOM を追加したことを示します
	StatusAdded MarkStatus = iota
	// StatusAlreadyPresent は BOM が既に存在していたことを示します
	StatusAlreadyPresent
)

func (s MarkStatus) String() string {
	if s == StatusAdded {
		return "added"
	}
	return "already-present"
}

// MarkResult はファイル 1 件の処理結果です
type MarkResult struct {
	// Path はスラッシュ区切りに正規化したファイルパスです
	Path string
	// Status は処理結果です
	Status MarkStatus
}

// Summary は 1 回の実行全体の集計です
type Summary struct {
	// Files は処理したファイル数です
	Files int
	// Added は BOM を追加したファイル数です
	Added int
	// AlreadyPresent は BOM が既に存在していたファイル数です
	AlreadyPresent int
	// Hidden はスキップした隠しエントリ数です
	Hidden int
}

// Record は結果を集計に加えます
func (s *Summary) Record(r MarkResult) {
	s.Files++
	switch r.Status {
	case StatusAdded:
		s.Added++
	case StatusAlreadyPresent:
		s.AlreadyPresent++
	}
}
