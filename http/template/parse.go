package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"os"
	"path"
	"sync"
)

// Parser is the interface for parsing HTML templates with the functions provided.
type Parser interface {
	AddFn(name string, fn any)
	Parse(fps ...string) (*html.Template, error)
}

// Parse implements Parser with a focus on utilizing embedded HTML templates through fs.FS.
type Parse struct {
	fs  fs.FS
	fns html.FuncMap
	mu  sync.RWMutex
}

// NewParser constructs a *Parse with the provided functional options.
//
// Templates are first looked up in the filesystem set by WithFS, or the working directory,
// and then in the templates embedded in this package under tmpl/.
func NewParser(opts ...ParserOptFn) *Parse {
	p := &Parse{fns: make(html.FuncMap)}
	for _, opt := range opts {
		opt(p)
	}

	userFS := p.fs
	if userFS == nil {
		userFS = os.DirFS(".")
	}

	p.fs = &mergeFS{
		cache:   make(map[string]func(string) (fs.File, error)),
		userDir: userFS,
		pkgDir:  pkgFS,
	}

	return p
}

// Parse parses files found in the *Parse.fs with those functions provided previously.
// The returned template is named after the first file.
func (p *Parse) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	p.mu.RLock()
	fns := make(html.FuncMap, len(p.fns))
	for k, v := range p.fns {
		fns[k] = v
	}
	p.mu.RUnlock()

	return html.New(path.Base(files[0])).Funcs(fns).ParseFS(p.fs, files...)
}
