package export

import (
	"bufio"
	"io"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// Movement writes the particle positions as two array literals,
// "x = [..];" and "y = [..];", one per line.
func Movement(w io.Writer, snaps []dynamo.Snapshot) error {
	bw := bufio.NewWriter(w)
	writeArray(bw, "x", snaps, func(s dynamo.Snapshot) float64 { return s.Position.X })
	writeArray(bw, "y", snaps, func(s dynamo.Snapshot) float64 { return s.Position.Y })
	return bw.Flush()
}

func writeArray(bw *bufio.Writer, name string, snaps []dynamo.Snapshot, get func(dynamo.Snapshot) float64) {
	bw.WriteString(name)
	bw.WriteString(" = [")
	for i, s := range snaps {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(formatFloat(get(s)))
	}
	bw.WriteString("];\n")
}
