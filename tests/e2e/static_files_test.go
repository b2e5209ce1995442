//go:build e2e

package e2e_test

import (
	"context"
	"crypto/rand"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Static Files", ginkgo.Ordered, func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc

		dirName string
		content []byte
	)

	ginkgo.BeforeAll(func() {
		ctx, cancel = context.WithCancel(suiteCtx)

		dirName = "e2e-" + uuid.NewString()
		gomega.Expect(os.Mkdir(filepath.Join(rootDir, dirName), 0o755)).To(gomega.Succeed())
		ginkgo.DeferCleanup(os.RemoveAll, filepath.Join(rootDir, dirName))

		content = make([]byte, 4096)
		_, err := rand.Read(content)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(os.WriteFile(filepath.Join(rootDir, dirName, "blob.bin"), content, 0o600)).To(gomega.Succeed())
		gomega.Expect(os.WriteFile(filepath.Join(rootDir, dirName, "index.html"), []byte("<h1>Hi</h1>"), 0o600)).
			To(gomega.Succeed())
	})

	ginkgo.AfterAll(func() {
		cancel()
	})

	ginkgo.It("200 with the exact file bytes", func() {
		// Action.
		resp, err := client.R().SetContext(ctx).Get("/" + dirName + "/blob.bin")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.Body()).To(gomega.Equal(content))
		expectCORS(resp)
	})

	ginkgo.It("200 with index page", func() {
		// Action.
		resp, err := client.R().SetContext(ctx).Get("/" + dirName + "/index.html")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.String()).To(gomega.Equal("<h1>Hi</h1>"))
		gomega.Expect(resp.Header().Get("Content-Type")).To(gomega.HavePrefix("text/html"))
		expectCORS(resp)
	})

	ginkgo.It("301 for a directory without trailing slash", func() {
		// Action.
		resp, _ := client.R().SetContext(ctx).Get("/" + dirName)

		// Assert.
		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusMovedPermanently))
		gomega.Expect(resp.Header().Get("Location")).To(gomega.Equal("/" + dirName + "/"))
		expectCORS(resp)
	})

	ginkgo.It("404 for a missing file", func() {
		// Action.
		resp, err := client.R().SetContext(ctx).Get("/" + dirName + "/absent.html")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusNotFound))
		expectCORS(resp)
	})

	ginkgo.It("never serves files outside of the root", func() {
		secret := filepath.Base(rootDir)

		for _, p := range []string{"/../" + secret, "/" + dirName + "/../../" + secret, "/%2e%2e/" + secret} {
			// Action.
			resp, err := client.R().SetContext(ctx).Get(p)

			// Assert.
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(resp.StatusCode()).To(gomega.BeElementOf(http.StatusBadRequest, http.StatusNotFound))
			expectCORS(resp)
		}
	})

	ginkgo.It("204 for preflight", func() {
		// Action.
		resp, err := client.R().SetContext(ctx).
			SetHeader("Origin", "http://example.com").
			SetHeader("Access-Control-Request-Method", http.MethodPost).
			Options("/" + dirName + "/blob.bin")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusNoContent))
		expectCORS(resp)
	})

	ginkgo.It("405 for other methods", func() {
		// Action.
		resp, err := client.R().SetContext(ctx).SetBody(`{}`).Post("/" + dirName + "/blob.bin")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusMethodNotAllowed))
		expectCORS(resp)
	})
})
