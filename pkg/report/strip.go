package report

import "strings"

// Fence markers removed from help text. Each includes its line break.
const (
	fenceOpenBash = "```bash\n"
	fenceClose    = "```\n"
)

// StripFences removes fenced code block markers from help. Nothing else
// in the text is altered. The result contains no markers, so applying it
// again is a no-op.
func StripFences(help string) string {
	for {
		out := strings.ReplaceAll(help, fenceOpenBash, "")
		out = strings.ReplaceAll(out, fenceClose, "")
		if out == help {
			return out
		}
		help = out
	}
}
