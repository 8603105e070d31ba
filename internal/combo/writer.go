package combo

import (
	"fmt"
	"os"
	"strings"
)

// Serialize renders a combo file back to the script format, ending with
// the EOF marker.
func Serialize(f *File) string {
	var b strings.Builder

	for _, step := range f.Steps {
		token := "#"
		if !step.Title {
			token = step.Action.String()
			if step.Hold {
				token = "U" + token
			}
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s|\n", token, step.Character, step.SkillType, step.Memo)
	}

	b.WriteString(eofMarker)
	b.WriteByte('\n')
	return b.String()
}

// WriteFile writes the serialized combo script to path.
func WriteFile(path string, f *File) error {
	if err := os.WriteFile(path, []byte(Serialize(f)), 0o644); err != nil {
		return fmt.Errorf("combo: writing %s: %w", path, err)
	}
	return nil
}
