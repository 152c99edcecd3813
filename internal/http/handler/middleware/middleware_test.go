package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"handkeeper/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		w         *httptest.ResponseRecorder
		req       *http.Request
		seenID    string
		requestID http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/health", nil)
		seenID = ""
		requestID = middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = middleware.RequestIDFromContext(r.Context())
		}))
	})

	It("should generate an id and echo it", func() {
		requestID.ServeHTTP(w, req)
		Expect(uuid.Validate(seenID)).To(Succeed())
		Expect(w.Header().Get("X-Request-ID")).To(Equal(seenID))
	})

	It("should reuse a well-formed inbound id", func() {
		inbound := uuid.NewString()
		req.Header.Set("X-Request-ID", inbound)
		requestID.ServeHTTP(w, req)
		Expect(seenID).To(Equal(inbound))
		Expect(w.Header().Get("X-Request-ID")).To(Equal(inbound))
	})

	It("should replace a malformed inbound id", func() {
		req.Header.Set("X-Request-ID", "<script>")
		requestID.ServeHTTP(w, req)
		Expect(seenID).NotTo(Equal("<script>"))
		Expect(uuid.Validate(seenID)).To(Succeed())
	})

	It("should be empty outside the middleware", func() {
		Expect(middleware.RequestIDFromContext(req.Context())).To(BeEmpty())
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should log the status the handler wrote", func() {
		core, logs := observer.New(zap.InfoLevel)
		logging := middleware.NewLoggingMiddleware(zap.New(core).Sugar())

		handler := logging.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("done"))
		}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/hands", nil))

		Expect(w.Code).To(Equal(http.StatusCreated))
		entries := logs.FilterMessage("request completed").All()
		Expect(entries).To(HaveLen(1))
		fields := entries[0].ContextMap()
		Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusCreated)))
		Expect(fields).To(HaveKeyWithValue("method", "POST"))
		Expect(fields).To(HaveKeyWithValue("path", "/api/hands"))
		Expect(fields).To(HaveKeyWithValue("bytes", int64(4)))
	})

	It("should default to 200 when the handler only writes a body", func() {
		core, logs := observer.New(zap.InfoLevel)
		logging := middleware.NewLoggingMiddleware(zap.New(core).Sugar())

		handler := logging.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{}"))
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/health", nil))

		Expect(logs.All()[0].ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusOK)))
	})
})

var _ = Describe("CORSMiddleware", func() {
	var (
		nextCalled bool
		next       http.Handler
	)

	BeforeEach(func() {
		nextCalled = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		})
	})

	It("should allow any origin by default", func() {
		w := httptest.NewRecorder()
		middleware.NewCORSMiddleware("").CORS(next).ServeHTTP(w, httptest.NewRequest("GET", "/api/hands/my", nil))

		Expect(nextCalled).To(BeTrue())
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(w.Header().Get("Access-Control-Expose-Headers")).To(ContainSubstring("X-Total-Count"))
	})

	It("should answer preflight requests itself", func() {
		req := httptest.NewRequest("OPTIONS", "/api/hands", nil)
		req.Header.Set("Origin", "https://cards.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		middleware.NewCORSMiddleware("https://cards.example").CORS(next).ServeHTTP(w, req)

		Expect(nextCalled).To(BeFalse())
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://cards.example"))
		Expect(w.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("DELETE"))
		Expect(w.Header().Get("Access-Control-Allow-Headers")).To(ContainSubstring("Authorization"))
	})
})
