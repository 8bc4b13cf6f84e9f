package export

import (
	"bufio"
	"io"
	"strconv"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// ovitoMarkers are drawn in every frame so the viewer keeps a fixed
// scale: the origin and the two ends of the track.
var ovitoMarkers = [...]dynamo.Vector{
	{X: 0},
	{X: 100},
	{X: -100},
}

// Ovito writes one XYZ-style frame per snapshot. Each frame holds the
// particle count (the particle plus the markers), the 0-based frame
// index, then "x y vx vy" for the particle and each marker.
func Ovito(w io.Writer, snaps []dynamo.Snapshot) error {
	bw := bufio.NewWriter(w)
	for frame, s := range snaps {
		bw.WriteString(strconv.Itoa(1 + len(ovitoMarkers)))
		bw.WriteByte('\n')
		bw.WriteString(strconv.Itoa(frame))
		bw.WriteByte('\n')
		writeRow(bw, s.Position, s.Velocity)
		for _, m := range ovitoMarkers {
			writeRow(bw, m, dynamo.Zero)
		}
	}
	return bw.Flush()
}

func writeRow(bw *bufio.Writer, pos, vel dynamo.Vector) {
	for i, v := range [...]float64{pos.X, pos.Y, vel.X, vel.Y} {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(formatFloat(v))
	}
	bw.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
