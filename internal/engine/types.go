package engine

import (
	"github.com/phyten/react-ocean-forms-upgrader/internal/model"
	"github.com/phyten/react-ocean-forms-upgrader/internal/progress"
)

const (
	ModeDry   = "dry"
	ModeApply = "apply"
)

// DefaultExtensions は走査対象の拡張子です。
var DefaultExtensions = []string{".tsx", ".jsx", ".js"}

// Occurrence は 1 件の <Field component={...}> の置換前後を表す
type Occurrence struct {
	Path       string     `json:"path" yaml:"path" toml:"path"`
	Line       int        `json:"line" yaml:"line" toml:"line"`
	Before     string     `json:"before" yaml:"before" toml:"before"`
	After      string     `json:"after" yaml:"after" toml:"after"`
	Expression string     `json:"expression" yaml:"expression" toml:"expression"`
	Suspicious bool       `json:"suspicious,omitempty" yaml:"suspicious,omitempty" toml:"suspicious,omitempty"`
	Span       model.Span `json:"span" yaml:"span" toml:"span"`
}

// FileReport は 1 ファイル分の結果を表す
type FileReport struct {
	Path        string       `json:"path" yaml:"path" toml:"path"`
	Count       int          `json:"count" yaml:"count" toml:"count"`
	Written     bool         `json:"written" yaml:"written" toml:"written"`
	Occurrences []Occurrence `json:"occurrences" yaml:"occurrences" toml:"occurrences"`
}

// FileError は 1 ファイルの処理に失敗した際の情報を表す
type FileError struct {
	Path    string `json:"path" yaml:"path" toml:"path"`
	Stage   string `json:"stage" yaml:"stage" toml:"stage"`
	Message string `json:"message" yaml:"message" toml:"message"`
}

func (e FileError) Error() string {
	return e.Stage + " " + e.Path + ": " + e.Message
}

// Options は実行オプション
type Options struct {
	Root             string
	Extensions       []string
	Mode             string // dry|apply
	Engine           string // regexp|ecmascript
	FailFast         bool
	ProgressObserver progress.Observer `json:"-"`
	// OnFile is called in walk order for every file with at least one
	// match, after any write. Returning an error stops the run.
	OnFile func(FileReport) error `json:"-"`
}

// Apply reports whether files should be written.
func (o Options) Apply() bool { return o.Mode == ModeApply }

// Result は出力。ファイル数と件数はプロセス全体のカウンタではなく実行ごとに積み上げる。
type Result struct {
	Mode         string       `json:"mode" yaml:"mode" toml:"mode"`
	Root         string       `json:"root" yaml:"root" toml:"root"`
	Engine       string       `json:"engine" yaml:"engine" toml:"engine"`
	Extensions   []string     `json:"extensions" yaml:"extensions" toml:"extensions"`
	Files        []FileReport `json:"files" yaml:"files" toml:"files"`
	FilesVisited int          `json:"files_visited" yaml:"files_visited" toml:"files_visited"`
	FilesTouched int          `json:"files_touched" yaml:"files_touched" toml:"files_touched"`
	FilesWritten int          `json:"files_written" yaml:"files_written" toml:"files_written"`
	Occurrences  int          `json:"occurrences" yaml:"occurrences" toml:"occurrences"`
	Suspicious   int          `json:"suspicious" yaml:"suspicious" toml:"suspicious"`
	ElapsedMS    int64        `json:"elapsed_ms" yaml:"elapsed_ms" toml:"elapsed_ms"`
	Errors       []FileError  `json:"errors,omitempty" yaml:"errors,omitempty" toml:"errors,omitempty"`
	ErrorCount   int          `json:"error_count" yaml:"error_count" toml:"error_count"`
}

// add merges one file's report. A file counts once however many matches it has.
func (r *Result) add(rep FileReport) {
	if rep.Count == 0 {
		return
	}
	r.FilesTouched++
	r.Occurrences += rep.Count
	for _, oc := range rep.Occurrences {
		if oc.Suspicious {
			r.Suspicious++
		}
	}
	if rep.Written {
		r.FilesWritten++
	}
	r.Files = append(r.Files, rep)
}

func (r *Result) fail(fe FileError) {
	r.Errors = append(r.Errors, fe)
	r.ErrorCount = len(r.Errors)
}
