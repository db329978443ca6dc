// Package printer writes user-facing console output, keeping it separate from
// the zerolog diagnostics stream.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/brewgen/pkgs/styles"
)

var ConsolePrinter = New(os.Stdout)

type Printer struct {
	writer io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// FatalError prints a styled error box. The caller decides the exit code.
func (p *Printer) FatalError(err error) {
	fmt.Fprintln(p.writer, styles.ErrorBox("Error", err.Error()))
}

func (p *Printer) Title(title string) {
	fmt.Fprintln(p.writer, styles.Bold(title))
}

// Success prints a check-marked line.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.writer, "%s %s\n", styles.Success(styles.Check), msg)
}

// Warn prints a dot-marked warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.writer, "%s %s\n", styles.Warning(styles.Dot), msg)
}

// Fail prints a cross-marked line.
func (p *Printer) Fail(msg string) {
	fmt.Fprintf(p.writer, "%s %s\n", styles.Error(styles.Cross), msg)
}
