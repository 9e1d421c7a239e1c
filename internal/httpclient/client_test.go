package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/casamatriz/mirror-middleware/internal/httpclient"
)

func TestHTTPClient(t *testing.T) {
	t.Parallel()
	RegisterFailHandler(Fail)
	RunSpecs(t, "HTTPClient Suite")
}

var _ = Describe("DefaultClient", func() {
	var (
		client     httpclient.Client
		mockServer *httptest.Server
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = httpclient.NewDefaultClient(5 * time.Second)
	})

	AfterEach(func() {
		if mockServer != nil {
			mockServer.Close()
			mockServer = nil
		}
	})

	Describe("NewDefaultClient", func() {
		It("should use default timeout when zero is provided", func() {
			Expect(httpclient.NewDefaultClient(0)).NotTo(BeNil())
		})
	})

	Describe("Get", func() {
		It("should return the body and send the expected headers", func() {
			mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodGet))
				Expect(r.Header.Get("User-Agent")).To(Equal(httpclient.UserAgent))
				Expect(r.Header.Get("Accept")).To(Equal("application/json"))
				_, _ = w.Write([]byte(`[{"id":1,"name":"groceries"}]`))
			}))

			data, err := client.Get(ctx, mockServer.URL+"/lists")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`[{"id":1,"name":"groceries"}]`))
		})

		It("should accept any 2xx status", func() {
			mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte(`[]`))
			}))

			data, err := client.Get(ctx, mockServer.URL)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]byte(`[]`)))
		})

		DescribeTable("should return an HTTPError for non-2xx statuses",
			func(status int) {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(status)
				}))

				_, err := client.Get(ctx, mockServer.URL)
				Expect(err).To(HaveOccurred())

				var httpErr *httpclient.HTTPError
				Expect(err).To(BeAssignableToTypeOf(httpErr))
				Expect(httpclient.StatusCode(err)).To(Equal(status))
			},
			Entry("not found", http.StatusNotFound),
			Entry("server error", http.StatusInternalServerError),
			Entry("bad gateway", http.StatusBadGateway),
		)

		It("should fail when the server is unreachable", func() {
			mockServer = httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
			url := mockServer.URL
			mockServer.Close()
			mockServer = nil

			_, err := client.Get(ctx, url)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to execute request"))
		})

		It("should honour context cancellation", func() {
			mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				w.WriteHeader(http.StatusOK)
			}))

			cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
			defer cancel()

			_, err := client.Get(cancelCtx, mockServer.URL)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an invalid URL", func() {
			_, err := client.Get(ctx, "://bad-url")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to create request"))
		})

		It("should reject responses larger than the limit", func() {
			mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Length", "999999999")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(strings.Repeat("x", 16)))
			}))

			_, err := client.Get(ctx, mockServer.URL)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("exceeds maximum allowed size"))
		})
	})
})
