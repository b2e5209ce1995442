package serverdebug

import (
	"html/template"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var indexTmpl = template.Must(template.New("index").Parse(`<html>
	<title>Static Server Debug</title>
<body>
	<h2>Static Server Debug</h2>
	<p>Serving <code>{{.Root}}</code></p>
	<ul>
		{{range .Pages}}
		<li><a href="{{.Path}}">{{.Path}}</a> {{.Description}}</li>
		{{end}}
	</ul>

	<h2>Log Level</h2>
	<form onSubmit="putLogLevel()">
		<select id="log-level-select">
			{{range .Levels}}
			<option{{ if eq . $.LogLevel }} selected{{ end }}>{{.}}</option>
			{{end}}
		</select>
		<input type="submit" value="Change"></input>
	</form>

	<script>
		function putLogLevel() {
			const req = new XMLHttpRequest();
			req.open('PUT', '/log/level', false);
			req.setRequestHeader('Content-Type', 'application/json');
			req.onload = function() { window.location.reload(); };
			req.send(JSON.stringify({"level": document.getElementById('log-level-select').value.toLowerCase()}));
		};
	</script>
</body>
</html>
`))

var logLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

type page struct {
	Path        string
	Description string
}

type indexPage struct {
	root  string
	pages []page
}

func newIndexPage(root string) *indexPage {
	return &indexPage{root: root}
}

func (i *indexPage) addPage(path string, description string) {
	i.pages = append(i.pages, page{path, description})
}

func (i *indexPage) handler(eCtx echo.Context) error {
	return indexTmpl.Execute(eCtx.Response(), struct {
		Root     string
		Pages    []page
		Levels   []string
		LogLevel string
	}{
		Root:     i.root,
		Pages:    i.pages,
		Levels:   logLevels,
		LogLevel: zap.L().Level().CapitalString(),
	})
}
