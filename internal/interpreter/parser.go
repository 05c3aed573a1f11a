package interpreter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Place", Pattern: `(?i)PLACE\b`},
	{Name: "Space", Pattern: `\s+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Word", Pattern: `[^\s,]+`},
})

// line is the grammar of a single command line. PLACE arguments are kept
// as raw words so each field can be reported on separately.
type line struct {
	Place   *placeArgs `parser:"  Place Space @@"`
	Keyword string     `parser:"| @Word"`
}

type placeArgs struct {
	X      string `parser:"@Word Comma"`
	Y      string `parser:"@Word Comma"`
	Facing string `parser:"@Word"`
}

var (
	parser    = participle.MustBuild[line](participle.Lexer(lineLexer))
	placeType = lineLexer.Symbols()["Place"]
)

// Op is one of the fixed commands of the language.
type Op int

const (
	OpUnknown Op = iota
	OpPlace
	OpMove
	OpLeft
	OpRight
	OpReport
)

var keywords = map[string]Op{
	"MOVE":   OpMove,
	"LEFT":   OpLeft,
	"RIGHT":  OpRight,
	"REPORT": OpReport,
}

func (o Op) String() string {
	switch o {
	case OpUnknown:
		return "UNKNOWN"
	case OpPlace:
		return "PLACE"
	case OpMove:
		return "MOVE"
	case OpLeft:
		return "LEFT"
	case OpRight:
		return "RIGHT"
	case OpReport:
		return "REPORT"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Command is a parsed line. X, Y and Facing are set for OpPlace only. A line
// that failed to parse has Op OpPlace if it started with the PLACE keyword
// and OpUnknown otherwise.
type Command struct {
	Op     Op
	X, Y   int
	Facing Facing
}

// ParseCommand parses one trimmed, non-empty line.
func ParseCommand(text string) (Command, error) {
	ln, err := parser.ParseString("", text)
	if err != nil {
		if isPlaceLine(text) {
			return Command{Op: OpPlace}, newParseError(`Valid Place Command is "PLACE X_POS,Y_POS,FACING"`)
		}
		return Command{}, newParseError("Invalid command %q", text)
	}
	if ln.Place == nil {
		op, ok := keywords[strings.ToUpper(ln.Keyword)]
		if !ok {
			return Command{}, newParseError("Invalid command %q", text)
		}
		return Command{Op: op}, nil
	}

	cmd := Command{Op: OpPlace}
	if cmd.X, err = parseCoord(ln.Place.X); err != nil {
		return cmd, newParseError("X_POS should be a integer number")
	}
	if cmd.Y, err = parseCoord(ln.Place.Y); err != nil {
		return cmd, newParseError("Y_POS should be a integer number")
	}
	f, ok := ParseFacing(ln.Place.Facing)
	if !ok {
		return cmd, newParseError("Invalid Facing Direction %q", ln.Place.Facing)
	}
	cmd.Facing = f
	return cmd, nil
}

// isPlaceLine reports whether text starts with the PLACE keyword, whether
// or not the rest of it parses.
func isPlaceLine(text string) bool {
	tokens, err := parser.Lex("", strings.NewReader(text))
	if err != nil || len(tokens) == 0 {
		return false
	}
	return tokens[0].Type == placeType
}

// parseCoord accepts any base-10 integer. Values beyond the int range are
// clamped, they are off the table either way.
func parseCoord(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return n, nil
}
