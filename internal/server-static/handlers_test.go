package serverstatic_test

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/zestagio/static-server/internal/server"
	serverstatic "github.com/zestagio/static-server/internal/server-static"
	"github.com/zestagio/static-server/internal/server/errhandler"
	"github.com/zestagio/static-server/internal/staticfs"
	"github.com/zestagio/static-server/internal/testingh"
)

const secret = "top secret"

type HandlersSuite struct {
	testingh.ContextSuite

	base    string
	root    string
	handler http.Handler
}

func TestHandlersSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	s.ContextSuite.SetupTest()

	s.base = s.T().TempDir()
	s.root = filepath.Join(s.base, "public")
	testingh.WriteTree(s.T(), s.base, map[string]string{
		"public/index.html":    "<h1>Hi</h1>",
		"public/css/site.css":  "body { color: red; }",
		"public/css/Print.css": "@media print {}",
		"public/empty/":        "",
		"secret.txt":           secret,
	})

	s.handler = s.newHandler(true)
}

func (s *HandlersSuite) TestServeFile_IndexScenario() {
	resp := s.do(http.MethodGet, "/index.html")

	s.Equal(http.StatusOK, resp.Code)
	s.Equal("<h1>Hi</h1>", resp.Body.String())
	s.Equal("*", resp.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("text/html; charset=utf-8", resp.Header().Get("Content-Type"))
}

func (s *HandlersSuite) TestServeFile_RootServesIndex() {
	resp := s.do(http.MethodGet, "/")

	s.Equal(http.StatusOK, resp.Code)
	s.Equal("<h1>Hi</h1>", resp.Body.String())
}

func (s *HandlersSuite) TestServeFile_ContentType() {
	resp := s.do(http.MethodGet, "/css/site.css")

	s.Equal(http.StatusOK, resp.Code)
	s.True(strings.HasPrefix(resp.Header().Get("Content-Type"), "text/css"))
}

func (s *HandlersSuite) TestServeFile_ExistingFilesAreServedVerbatim() {
	rnd := rand.New(rand.NewSource(42)) //nolint:gosec // test data

	files := make(map[string][]byte)
	for i := 0; i < 25; i++ {
		data := make([]byte, 1+rnd.Intn(64<<10))
		_, _ = rnd.Read(data)

		rel := fmt.Sprintf("data/%d/file-%d.bin", i%5, i)
		s.Require().NoError(os.MkdirAll(filepath.Join(s.root, filepath.Dir(rel)), 0o755))
		s.Require().NoError(os.WriteFile(filepath.Join(s.root, rel), data, 0o600))
		files[rel] = data
	}

	for rel, data := range files {
		resp := s.do(http.MethodGet, "/"+rel)
		s.Equal(http.StatusOK, resp.Code, rel)
		s.Equal(data, resp.Body.Bytes(), rel)
	}
}

func (s *HandlersSuite) TestServeFile_Missing() {
	for _, p := range []string{"/absent.html", "/css/absent.css", "/index.html/", "/index.html/x", "/no/such/dir/"} {
		resp := s.do(http.MethodGet, p)
		s.Equal(http.StatusNotFound, resp.Code, p)
		s.assertCORS(resp)
	}
}

func (s *HandlersSuite) TestServeFile_DirectoryRedirect() {
	resp := s.do(http.MethodGet, "/css?v=1")

	s.Equal(http.StatusMovedPermanently, resp.Code)
	s.Equal("/css/?v=1", resp.Header().Get("Location"))
	s.assertCORS(resp)
}

func (s *HandlersSuite) TestServeFile_DirectoryListing() {
	resp := s.do(http.MethodGet, "/css/")

	s.Equal(http.StatusOK, resp.Code)
	s.Contains(resp.Body.String(), "Directory listing for /css/")
	s.Contains(resp.Body.String(), `<a href="site.css">site.css</a>`)

	// Case-insensitive ordering.
	s.Less(strings.Index(resp.Body.String(), "Print.css"), strings.Index(resp.Body.String(), "site.css"))
}

func (s *HandlersSuite) TestServeFile_DirectoryListingMarksDirectories() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, "index.html")))

	resp := s.do(http.MethodGet, "/")

	s.Equal(http.StatusOK, resp.Code)
	s.Contains(resp.Body.String(), `<a href="css/">css/</a>`)
	s.Contains(resp.Body.String(), `<a href="empty/">empty/</a>`)
}

func (s *HandlersSuite) TestServeFile_DirectoryListingDisabled() {
	s.handler = s.newHandler(false)

	resp := s.do(http.MethodGet, "/empty/")
	s.Equal(http.StatusNotFound, resp.Code)

	resp = s.do(http.MethodGet, "/")
	s.Equal(http.StatusOK, resp.Code, "index pages are still served")
}

func (s *HandlersSuite) TestServeFile_Head() {
	resp := s.do(http.MethodHead, "/index.html")

	s.Equal(http.StatusOK, resp.Code)
	s.Empty(resp.Body.String())
	s.Equal("11", resp.Header().Get("Content-Length"))
	s.assertCORS(resp)
}

func (s *HandlersSuite) TestServeFile_Range() {
	req := httptest.NewRequest(http.MethodGet, "/index.html", http.NoBody)
	req.Header.Set("Range", "bytes=1-2")
	resp := httptest.NewRecorder()
	s.handler.ServeHTTP(resp, req)

	s.Equal(http.StatusPartialContent, resp.Code)
	s.Equal("h1", resp.Body.String())
}

func (s *HandlersSuite) TestPreflight() {
	resp := s.do(http.MethodOptions, "/anything")

	s.Equal(http.StatusNoContent, resp.Code)
	s.Empty(resp.Body.String())
	s.assertCORS(resp)
}

func (s *HandlersSuite) TestUnsupportedMethods() {
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		resp := s.do(m, "/index.html")
		s.Equal(http.StatusMethodNotAllowed, resp.Code, m)
		s.assertCORS(resp)
	}
}

func (s *HandlersSuite) TestServeFile_Traversal() {
	paths := []string{
		"/../secret.txt",
		"/css/../../secret.txt",
		"/%2e%2e/secret.txt",
		"/..%2fsecret.txt",
		"/css/..%2f..%2fsecret.txt",
		"/../",
	}

	for _, p := range paths {
		resp := s.do(http.MethodGet, p)
		s.Equal(http.StatusBadRequest, resp.Code, p)
		s.NotContains(resp.Body.String(), secret, p)
		s.assertCORS(resp)
	}
}

func (s *HandlersSuite) TestServeFile_SymlinkEscape() {
	if err := os.Symlink(filepath.Join(s.base, "secret.txt"), filepath.Join(s.root, "leak.txt")); err != nil {
		s.T().Skipf("symlinks unsupported: %v", err)
	}
	s.Require().NoError(os.Symlink(s.base, filepath.Join(s.root, "up")))

	for _, p := range []string{"/leak.txt", "/up/secret.txt", "/up/"} {
		resp := s.do(http.MethodGet, p)
		s.Equal(http.StatusForbidden, resp.Code, p)
		s.NotContains(resp.Body.String(), secret, p)
		s.assertCORS(resp)
	}
}

func (s *HandlersSuite) TestNewHandlers_InvalidOptions() {
	_, err := serverstatic.NewHandlers(serverstatic.NewOptions(zap.NewNop(), nil))
	s.Require().Error(err)

	_, err = serverstatic.NewHandlers(serverstatic.NewOptions(nil, os.DirFS(s.root)))
	s.Require().Error(err)
}

func (s *HandlersSuite) newHandler(listing bool) http.Handler {
	fsys, err := staticfs.New(s.root)
	s.Require().NoError(err)

	handlers, err := serverstatic.NewHandlers(serverstatic.NewOptions(
		zap.NewNop(),
		fsys,
		serverstatic.WithListing(listing),
	))
	s.Require().NoError(err)

	errHandler, err := errhandler.New(errhandler.NewOptions(zap.NewNop(), true, errhandler.ResponseBuilder))
	s.Require().NoError(err)

	srv, err := server.New(server.NewOptions(
		zap.NewNop(),
		"127.0.0.1:8000",
		serverstatic.NewHandlersRegistrar(handlers, errHandler.Handle),
	))
	s.Require().NoError(err)

	return srv.Handler()
}

func (s *HandlersSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody).WithContext(s.Ctx)
	resp := httptest.NewRecorder()
	s.handler.ServeHTTP(resp, req)
	return resp
}

func (s *HandlersSuite) assertCORS(resp *httptest.ResponseRecorder) {
	s.Equal("*", resp.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("GET, POST, OPTIONS", resp.Header().Get("Access-Control-Allow-Methods"))
	s.Equal("Content-Type", resp.Header().Get("Access-Control-Allow-Headers"))
}
