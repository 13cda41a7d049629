package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/react-ocean-forms-upgrader/internal/config"
	engineopts "github.com/phyten/react-ocean-forms-upgrader/internal/engine/opts"
)

const usageText = `Usage: react-ocean-forms-upgrader [flags] [startPath] [-u]

Finds <Field ... component={X} ...> tags in .tsx, .jsx and .js files below
startPath (default: the current directory) and rewrites them to <X ... ...>.
Without -u nothing is written; the tool only shows what would change.
-u takes effect only as the token right after startPath.

Flags:
  -u                     after startPath: rewrite files in place
  -o, --output FORMAT    %s (default text)
      --color MODE       auto|always|never (default auto)
      --engine NAME      regexp|ecmascript (default regexp)
      --fail-fast        stop at the first file that cannot be read or written
      --progress         always show the progress line on stderr
      --no-progress      never show the progress line
      --no-banner        omit the ASCII art header
  -h, --help             show this help

Environment:
  ROF_UPGRADER_OUTPUT, ROF_UPGRADER_COLOR, ROF_UPGRADER_ENGINE,
  ROF_UPGRADER_FAIL_FAST, ROF_UPGRADER_PROGRESS, ROF_UPGRADER_NO_BANNER
  Flags take precedence over the environment. NO_COLOR, CLICOLOR,
  CLICOLOR_FORCE, FORCE_COLOR and TERM=dumb are honoured for --color=auto.

Exit status: 0 on success, 1 when the start path is missing or a file
failed, 2 on usage errors.
`

func usage() string {
	return fmt.Sprintf(usageText, strings.Join(engineopts.OutputFormats, "|"))
}

type cliArgs struct {
	root     string
	flags    config.Layer
	showHelp bool
}

var errTooManyArgs = errors.New("too many arguments")

// applyToken is the historical switch. It is a positional token, not a
// flag: only "<path> -u" selects apply mode.
const applyToken = "-u"

// positionalToken lets the flag parser hand -u back as a positional
// argument wherever it appears.
type positionalToken struct {
	token string
	out   *[]string
}

func (p positionalToken) String() string   { return "" }
func (p positionalToken) IsBoolFlag() bool { return true }

func (p positionalToken) Set(v string) error {
	on, err := engineopts.ParseBool(v, p.token)
	if err != nil {
		return err
	}
	if on {
		*p.out = append(*p.out, p.token)
	}
	return nil
}

// parseArgs accepts flags before and after the start path. Positional
// tokens keep the historical contract: the first is the start path and a
// second one switches to apply mode when it is exactly "-u".
func parseArgs(args []string) (cliArgs, error) {
	var out cliArgs
	fs := flag.NewFlagSet("react-ocean-forms-upgrader", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		positional []string
		output     string
		color      string
		engineName string
		failFast   bool
		progress   bool
		noProgress bool
		noBanner   bool
	)
	fs.Var(positionalToken{token: applyToken, out: &positional}, "u", "")
	fs.StringVar(&output, "o", "", "")
	fs.StringVar(&output, "output", "", "")
	fs.StringVar(&color, "color", "", "")
	fs.StringVar(&engineName, "engine", "", "")
	fs.BoolVar(&failFast, "fail-fast", false, "")
	fs.BoolVar(&progress, "progress", false, "")
	fs.BoolVar(&noProgress, "no-progress", false, "")
	fs.BoolVar(&noBanner, "no-banner", false, "")
	fs.BoolVar(&out.showHelp, "h", false, "")
	fs.BoolVar(&out.showHelp, "help", false, "")

	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				out.showHelp = true
				return out, nil
			}
			return out, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
	if len(positional) > 0 {
		out.root = positional[0]
	}
	if len(positional) > 1 {
		if positional[1] != applyToken || len(positional) > 2 {
			return out, fmt.Errorf("%w: %s", errTooManyArgs, strings.Join(positional[1:], " "))
		}
		apply := true
		out.flags.Apply = &apply
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["o"] || set["output"] {
		out.flags.Output = &output
	}
	if set["color"] {
		out.flags.Color = &color
	}
	if set["engine"] {
		out.flags.Engine = &engineName
	}
	if set["fail-fast"] {
		out.flags.FailFast = &failFast
	}
	switch {
	case set["no-progress"] && noProgress:
		off := false
		out.flags.Progress = &off
	case set["progress"]:
		out.flags.Progress = &progress
	}
	if set["no-banner"] {
		out.flags.NoBanner = &noBanner
	}
	return out, nil
}
