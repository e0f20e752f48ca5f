// Package progress renders per-split conversion progress on a terminal.
package progress

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Bar tracks completion of a fixed number of steps.
type Bar interface {
	Add(n int) error
	Finish() error
}

// Factory starts a bar for total steps labelled description.
type Factory func(total int, description string) Bar

type nopBar struct{}

func (nopBar) Add(int) error { return nil }

func (nopBar) Finish() error { return nil }

// Nop returns a factory whose bars render nothing.
func Nop() Factory {
	return func(int, string) Bar { return nopBar{} }
}

// Start returns a bar from factory, or a silent bar when factory is nil.
func Start(factory Factory, total int, description string) Bar {
	if factory == nil {
		return nopBar{}
	}
	return factory(total, description)
}

// NewTerminal returns a factory drawing progress bars on w. When w is not a
// terminal, or enabled is false, the bars are silent.
func NewTerminal(w io.Writer, enabled bool) Factory {
	if !enabled || !IsTerminal(w) {
		return Nop()
	}
	return func(total int, description string) Bar {
		return progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("img"),
			progressbar.OptionThrottle(100_000_000),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
