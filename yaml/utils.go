package yaml

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SafeString returns a string which is sufficiently quoted and escaped for YAML.
func SafeString(str string) string {
	str = strings.Replace(str, "\\", "\\\\", -1)
	str = strings.Replace(str, "\"", "\\\"", -1)
	return "\"" + str + "\""
}

// PrintSequence outputs integers as a YAML flow sequence, `perLine` values per line.
//
// `indent` is the current YAML indentation level - the number of spaces.
// `name` is the key of the sequence, it must be YAML safe.
// The values are right aligned to the widest one.
func PrintSequence(writer io.Writer, values []int32, indent int, name string, perLine int) {
	prefix := strings.Repeat(" ", indent)
	if len(values) == 0 {
		fmt.Fprintf(writer, "%s%s: []\n", prefix, name)
		return
	}
	if perLine <= 0 {
		perLine = len(values)
	}
	width := 0
	for _, val := range values {
		if w := len(strconv.FormatInt(int64(val), 10)); w > width {
			width = w
		}
	}
	fmt.Fprintf(writer, "%s%s: [", prefix, name)
	for i, val := range values {
		if i > 0 {
			if i%perLine == 0 {
				fmt.Fprintf(writer, ",\n%s  ", prefix)
			} else {
				fmt.Fprint(writer, ", ")
			}
		}
		fmt.Fprintf(writer, "%[1]*[2]d", width, val)
	}
	fmt.Fprintln(writer, "]")
}
