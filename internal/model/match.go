package model

// Span は 1 件のマッチ範囲を行・桁・バイトオフセットで表します。
// 行と桁は 1 始まり、桁はバイト単位です。
type Span struct {
	StartLine int `json:"start_line" yaml:"start_line" toml:"start_line"`
	StartCol  int `json:"start_col" yaml:"start_col" toml:"start_col"`
	EndLine   int `json:"end_line" yaml:"end_line" toml:"end_line"`
	EndCol    int `json:"end_col" yaml:"end_col" toml:"end_col"`
	ByteStart int `json:"byte_start" yaml:"byte_start" toml:"byte_start"`
	ByteEnd   int `json:"byte_end" yaml:"byte_end" toml:"byte_end"`
}

// SpanOf computes the span of src[start:end].
func SpanOf(src string, start, end int) Span {
	sl, sc := position(src, start)
	el, ec := position(src, end)
	return Span{StartLine: sl, StartCol: sc, EndLine: el, EndCol: ec, ByteStart: start, ByteEnd: end}
}

func position(src string, off int) (line, col int) {
	if off > len(src) {
		off = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, off - lineStart + 1
}
