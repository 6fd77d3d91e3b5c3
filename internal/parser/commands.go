package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chesstree/internal/chess"
)

// commandRe matches one embedded command such as [%clk 0:03:21].
var commandRe = regexp.MustCompile(`\[%(\w+)\s+([^\]]*)\]`)

// commandHandlers decode the commands that have a typed home in NodeData.
var commandHandlers = map[string]func(arg string, node *chess.NodeData) error{
	"clk":  applyClock,
	"csl":  applyMarkedSquares,
	"cal":  applyArrows,
	"eval": applyEval,
}

// applyComment merges a comment body into node: embedded commands are
// decoded and the remaining text is appended to any existing comment.
func applyComment(text string, node *chess.NodeData) {
	var unknown map[string]string
	rest := commandRe.ReplaceAllStringFunc(text, func(cmd string) string {
		m := commandRe.FindStringSubmatch(cmd)
		name, arg := m[1], strings.TrimSpace(m[2])
		handler, ok := commandHandlers[name]
		if !ok {
			if unknown == nil {
				unknown = make(map[string]string)
			}
			unknown[name] = arg
			return ""
		}
		if err := handler(arg, node); err != nil {
			// Undecodable commands stay in the text.
			return cmd
		}
		return ""
	})

	if unknown != nil {
		if node.Commands == nil {
			node.Commands = unknown
		} else {
			maps.Copy(node.Commands, unknown)
		}
	}

	rest = strings.Join(strings.Fields(rest), " ")
	if rest == "" {
		return
	}
	if node.Comment != "" {
		node.Comment += " " + rest
	} else {
		node.Comment = rest
	}
}

// ParseClock parses h:mm:ss with optional fractional seconds.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("clock %q: expected h:mm:ss", s)
	}
	if len(parts) == 2 {
		parts = append([]string{"0"}, parts...)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("clock %q: invalid hours", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q: invalid minutes", s)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("clock %q: invalid seconds", s)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(math.Round(seconds*1000))*time.Millisecond, nil
}

// FormatClock renders a duration as h:mm:ss, keeping tenths when present.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	out := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	if tenths := d / (100 * time.Millisecond); tenths > 0 {
		out += fmt.Sprintf(".%d", tenths)
	}
	return out
}

func applyClock(arg string, node *chess.NodeData) error {
	d, err := ParseClock(arg)
	if err != nil {
		return err
	}
	node.Clock = &d
	return nil
}

func splitList(arg string) []string {
	return strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' })
}

func applyMarkedSquares(arg string, node *chess.NodeData) error {
	var marks []chess.MarkedSquare
	for _, item := range splitList(arg) {
		if len(item) != 3 {
			return fmt.Errorf("csl %q: expected colour and square", item)
		}
		colour, ok := chess.ParseMarkColour(item[0])
		sq := chess.ParseSquare(item[1:])
		if !ok || sq == chess.NoSquare {
			return fmt.Errorf("csl %q: invalid entry", item)
		}
		marks = append(marks, chess.MarkedSquare{Colour: colour, Square: sq})
	}
	node.MarkedSquares = append(node.MarkedSquares, marks...)
	return nil
}

func applyArrows(arg string, node *chess.NodeData) error {
	var arrows []chess.Arrow
	for _, item := range splitList(arg) {
		if len(item) != 5 {
			return fmt.Errorf("cal %q: expected colour and two squares", item)
		}
		colour, ok := chess.ParseMarkColour(item[0])
		from, to := chess.ParseSquare(item[1:3]), chess.ParseSquare(item[3:5])
		if !ok || from == chess.NoSquare || to == chess.NoSquare {
			return fmt.Errorf("cal %q: invalid entry", item)
		}
		arrows = append(arrows, chess.Arrow{Colour: colour, From: from, To: to})
	}
	node.Arrows = append(node.Arrows, arrows...)
	return nil
}

// ParseEval parses a pawn score such as -0.25 or a mate distance #-3.
func ParseEval(s string) (chess.Evaluation, error) {
	if strings.HasPrefix(s, "#") {
		n, err := strconv.Atoi(s[1:])
		if err != nil || n == 0 {
			return chess.Evaluation{}, fmt.Errorf("eval %q: invalid mate distance", s)
		}
		return chess.Evaluation{MateIn: n}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return chess.Evaluation{}, fmt.Errorf("eval %q: invalid score", s)
	}
	return chess.Evaluation{Centipawns: int(math.Round(f * 100))}, nil
}

func applyEval(arg string, node *chess.NodeData) error {
	// Some tools append the search depth: [%eval 0.17,22].
	if i := strings.IndexByte(arg, ','); i >= 0 {
		arg = arg[:i]
	}
	e, err := ParseEval(arg)
	if err != nil {
		return err
	}
	node.Eval = &e
	return nil
}
