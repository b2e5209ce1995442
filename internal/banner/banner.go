package banner

import (
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	title   = color.New(color.FgGreen, color.Bold)
	field   = color.New(color.FgCyan)
	warning = color.New(color.FgYellow)
	stopped = color.New(color.FgRed, color.Bold)
)

// Printer writes the console banner. The text is for humans only.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Started(root, url string, openBrowser bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	title.Fprintln(p.out, "Static server started!")
	field.Fprint(p.out, "Serving files from: ")
	io.WriteString(p.out, root+"\n")
	field.Fprint(p.out, "Open your browser and go to: ")
	io.WriteString(p.out, url+"\n")
	if openBrowser {
		io.WriteString(p.out, "The page will open automatically in your default browser\n")
	}
	io.WriteString(p.out, "Press Ctrl+C to stop the server\n")
	io.WriteString(p.out, strings.Repeat("-", 50)+"\n")
}

func (p *Printer) BrowserFailed(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	warning.Fprintf(p.out, "Could not open browser automatically. Please open %s manually.\n", url)
}

func (p *Printer) Stopped() {
	p.mu.Lock()
	defer p.mu.Unlock()

	stopped.Fprintln(p.out, "\nServer stopped by user")
}
