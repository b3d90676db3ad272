package model

import "bytes"

// bom は UTF-8 のバイト順マークです
var bom = [...]byte{0xEF, 0xBB, 0xBF}

// BOMLen は BOM のバイト長です
const BOMLen = len(bom)

// BOM は BOM のコピーを返します
func BOM() []byte {
	b := make([]byte, BOMLen)
	copy(b, bom[:])
	return b
}

// HasBOM は content が BOM で始まるかどうかをバイト単位で判定します
func HasBOM(content []byte) bool {
	return bytes.HasPrefix(content, bom[:])
}

// WithBOM は BOM の後ろに content を続けた新しいバイト列を返します。
// content 自体は変更しません。
func WithBOM(content []byte) []byte {
	out := make([]byte, 0, BOMLen+len(content))
	out = append(out, bom[:]...)
	return append(out, content...)
}
