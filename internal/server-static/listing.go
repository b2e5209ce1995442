package serverstatic

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

var listingTmpl = template.Must(template.New("listing").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Directory listing for {{.Path}}</title>
</head>
<body>
<h1>Directory listing for {{.Path}}</h1>
<hr>
<ul>
{{range .Entries}}<li><a href="{{.Href}}">{{.Name}}</a></li>
{{end}}</ul>
<hr>
</body>
</html>
`))

type listingEntry struct {
	Name string
	Href string
}

func (h Handlers) serveListing(eCtx echo.Context, dir fs.File, upath string) error {
	rd, ok := dir.(fs.ReadDirFile)
	if !ok {
		return fmt.Errorf("directory %q cannot be listed", upath)
	}

	entries, err := rd.ReadDir(-1)
	if err != nil {
		return openError(upath, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	data := struct {
		Path    string
		Entries []listingEntry
	}{
		Path:    upath,
		Entries: make([]listingEntry, 0, len(entries)),
	}

	for _, e := range entries {
		name := e.Name()
		display := name
		switch {
		case e.IsDir():
			name += "/"
			display += "/"
		case e.Type()&fs.ModeSymlink != 0:
			display += "@"
		}
		data.Entries = append(data.Entries, listingEntry{
			Name: display,
			Href: (&url.URL{Path: name}).String(),
		})
	}

	eCtx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	eCtx.Response().WriteHeader(http.StatusOK)
	if eCtx.Request().Method == http.MethodHead {
		return nil
	}
	return listingTmpl.Execute(eCtx.Response(), data)
}
