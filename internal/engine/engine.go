package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/phyten/react-ocean-forms-upgrader/internal/progress"
	"github.com/phyten/react-ocean-forms-upgrader/internal/rewrite"
	"github.com/phyten/react-ocean-forms-upgrader/internal/walk"
)

// ErrAborted wraps the per-file failure that stopped a fail-fast run.
var ErrAborted = errors.New("run aborted")

// Run は指定されたオプションに従ってツリーを走査し、<Field component={...}> の検出結果を返します。
//
// dry モードではファイルを書き換えず、置換前後の組を Result に集めます。
// apply モードではマッチを含むファイルだけを同じパスに書き戻します。
// ファイル単位の失敗は Result.Errors に集約され、FailFast のときは最初の失敗で中断します。
// 開始パスが存在しない場合は walk.ErrRootNotExist を包んだエラーを返します。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Mode == "" {
		opts.Mode = ModeDry
	}
	if opts.Mode != ModeDry && opts.Mode != ModeApply {
		return nil, fmt.Errorf("invalid mode: %s", opts.Mode)
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	eng, err := rewrite.NewEngine(opts.Engine)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Mode:       opts.Mode,
		Root:       opts.Root,
		Engine:     eng.Name(),
		Extensions: append([]string(nil), opts.Extensions...),
	}
	meter := progress.NewMeter(opts.ProgressObserver, 0)
	if opts.Apply() {
		meter.SetStage(progress.StageApply)
	}

	visitor := walk.Visitor{
		File: func(path string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.FilesVisited++
			rep, fe := processFile(eng, path, opts.Apply())
			res.add(rep)
			meter.Visit(path, rep.Count)
			if fe != nil {
				res.fail(*fe)
			}
			if rep.Count > 0 && opts.OnFile != nil {
				if err := opts.OnFile(rep); err != nil {
					return err
				}
			}
			if fe != nil && opts.FailFast {
				return fmt.Errorf("%w: %w", ErrAborted, *fe)
			}
			return nil
		},
		Error: func(e *walk.EntryError) error {
			fe := FileError{Path: e.Path, Stage: e.Stage, Message: errMessage(e.Err)}
			res.fail(fe)
			if opts.FailFast {
				return fmt.Errorf("%w: %w", ErrAborted, fe)
			}
			return nil
		},
	}

	_, err = walk.Walk(ctx, opts.Root, opts.Extensions, visitor)
	meter.Done()
	res.ElapsedMS = msSince(start)
	return res, err
}

// processFile handles a single file. The returned report is valid even when
// the error is non-nil: a failed write keeps its occurrences with Written unset.
func processFile(eng rewrite.Engine, path string, apply bool) (FileReport, *FileError) {
	rep := FileReport{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return rep, &FileError{Path: path, Stage: "read", Message: errMessage(err)}
	}
	src := string(data)

	matches, err := eng.Find(src)
	if err != nil {
		return rep, &FileError{Path: path, Stage: "match", Message: errMessage(err)}
	}
	if len(matches) == 0 {
		return rep, nil
	}
	occs := make([]Occurrence, 0, len(matches))
	for _, m := range matches {
		after, err := eng.Render(m.Text)
		if err != nil {
			return rep, &FileError{Path: path, Stage: "match", Message: errMessage(err)}
		}
		occs = append(occs, Occurrence{
			Path:       path,
			Line:       m.Span.StartLine,
			Before:     m.Text,
			After:      after,
			Expression: m.Expression,
			Suspicious: m.Suspicious(),
			Span:       m.Span,
		})
	}
	rep.Count = len(occs)
	rep.Occurrences = occs
	if !apply {
		return rep, nil
	}

	out, _, err := eng.Replace(src)
	if err != nil {
		return rep, &FileError{Path: path, Stage: "replace", Message: errMessage(err)}
	}
	if err := writeSource(path, out); err != nil {
		return rep, &FileError{Path: path, Stage: "write", Message: errMessage(err)}
	}
	rep.Written = true
	return rep, nil
}

// writeSource overwrites path in place, keeping its permission bits.
func writeSource(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}

func errMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return msg
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
