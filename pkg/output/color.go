package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DetectNoColor reports whether output to w should be plain text
func DetectNoColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}

	// Buffers, pipes and files get plain text
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return true
	}

	return termenv.ColorProfile() == termenv.Ascii
}
