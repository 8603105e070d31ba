package combo

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/combonavi/internal/input/key"
)

// eofMarker terminates a combo script. Content after the marker on the
// same line is ignored.
const eofMarker = "!!!!!"

// Parse parses combo script content.
func Parse(content string) (*File, error) {
	f := &File{}

	for i, line := range strings.Split(content, "\n") {
		step, ok, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if step.Title && f.Title == "" {
			f.Title = step.Character
			if f.Title == "" {
				f.Title = "Untitled"
			}
		}
		f.Steps = append(f.Steps, step)
	}

	if len(f.Steps) == 0 {
		return nil, ErrEmptyFile
	}
	return f, nil
}

// ParseFile parses the combo script at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("combo: reading %s: %w", path, err)
	}
	return Parse(string(data))
}

// parseLine parses one script line. Blank lines and the EOF marker are
// skipped (ok=false).
func parseLine(line string, lineNumber int) (Step, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, eofMarker) {
		return Step{}, false, nil
	}

	line = strings.TrimSpace(strings.TrimSuffix(line, "|"))
	parts := strings.Split(line, ",")

	field := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	keyToken := field(0)
	step := Step{
		Character: field(1),
		SkillType: field(2),
		Memo:      field(3),
	}

	if strings.HasPrefix(keyToken, "#") {
		step.Title = true
		return step, true, nil
	}

	if strings.HasPrefix(keyToken, "U") || strings.HasPrefix(keyToken, "u") {
		step.Hold = true
		step.HoldDuration = DefaultHoldDuration
		keyToken = keyToken[1:]
	}

	action, ok := key.ParseAction(keyToken)
	if !ok {
		return Step{}, false, &ParseError{
			Line:    lineNumber,
			Content: line,
			Reason:  fmt.Sprintf("invalid key %q", field(0)),
		}
	}
	step.Action = action
	return step, true, nil
}
