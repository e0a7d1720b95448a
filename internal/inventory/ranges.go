// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"strconv"
	"strings"
)

// rangeSeparator joins the emitted range and singleton tokens.
const rangeSeparator = "|"

// CompressRanges renders a sequence of integers in compact range notation.
// Consecutive runs of three or more values collapse into an inclusive
// "start..end" token; shorter runs are emitted as individual values. Tokens
// are joined with "|".
//
// The input is expected to be sorted ascending. Duplicates are not collapsed:
// a repeated value breaks the current run and is emitted as-is.
func CompressRanges(ids []int) string {
	if len(ids) == 0 {
		return ""
	}

	var sb strings.Builder
	start, end := ids[0], ids[0]

	flush := func() {
		if sb.Len() > 0 {
			sb.WriteString(rangeSeparator)
		}
		if end-start >= 2 {
			sb.WriteString(strconv.Itoa(start))
			sb.WriteString("..")
			sb.WriteString(strconv.Itoa(end))
			return
		}
		for v := start; v <= end; v++ {
			if v > start {
				sb.WriteString(rangeSeparator)
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}

	for _, id := range ids[1:] {
		if id == end+1 {
			end = id
			continue
		}
		flush()
		start, end = id, id
	}
	flush()

	return sb.String()
}
