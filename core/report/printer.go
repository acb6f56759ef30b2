package report

import (
	"fmt"
	"io"
)

const (
	colorRed    = "\033[1;31m"
	colorGreen  = "\033[1;32m"
	colorYellow = "\033[1;33m"
	colorReset  = "\033[0m"
)

// printer is a thin writer wrapper that carries the color switch and the
// first write error, so rendering code stays free of error plumbing.
type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) tagged(indent, color, tag, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.color {
		p.printf("%s%s%s%s%s\n", indent, color, tag, msg, colorReset)
	} else {
		p.printf("%s%s%s\n", indent, tag, msg)
	}
}

func (p *printer) errorf(indent, format string, args ...any) {
	p.tagged(indent, colorRed, "E: ", format, args...)
}

func (p *printer) warnf(indent, format string, args ...any) {
	p.tagged(indent, colorYellow, "W: ", format, args...)
}

func (p *printer) infof(indent, format string, args ...any) {
	p.tagged(indent, colorYellow, "I: ", format, args...)
}

func (p *printer) successf(indent, format string, args ...any) {
	p.tagged(indent, colorGreen, "", format, args...)
}

// sideBySide prints one LEFT/RIGHT row with the left column padded to
// width. Either side may be empty.
func (p *printer) sideBySide(indent, left, right string, width int) {
	p.printf("%s  %-*s  %s\n", indent, width, left, right)
}
