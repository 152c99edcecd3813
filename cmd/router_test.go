package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"handkeeper/internal/config"
	"handkeeper/internal/core"
	"handkeeper/internal/http/handler/fake"
	"handkeeper/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Router", func() {
	var (
		fakeService *fake.HandService
		tokens      *jwt.JWTService
		router      http.Handler
		token       string
	)

	BeforeEach(func() {
		fakeService = new(fake.HandService)
		tokens = jwt.NewJWTService([]byte("0123456789abcdef0123456789abcdef"))
		router = newRouter(zap.NewNop().Sugar(), config.App{CORSAllowedOrigin: "*"}, fakeService, tokens)

		var err error
		token, err = tokens.Issue(jwt.Subject{UserID: "user-a", Username: "alice"})
		Expect(err).NotTo(HaveOccurred())
	})

	serve := func(method, target, body, authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	DescribeTable("protected routes without a token",
		func(method, target string) {
			rec := serve(method, target, `{}`, "")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Access Denied"}`))
			Expect(fakeService.Invocations()).To(BeEmpty())
		},
		Entry("create", "POST", "/api/hands"),
		Entry("list", "GET", "/api/hands/my"),
		Entry("delete", "DELETE", "/api/hands/6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
	)

	DescribeTable("protected routes with a forged token",
		func(method, target string) {
			rec := serve(method, target, `{}`, "Bearer not.a.token")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Invalid Token"}`))
			Expect(fakeService.Invocations()).To(BeEmpty())
		},
		Entry("create", "POST", "/api/hands"),
		Entry("list", "GET", "/api/hands/my"),
		Entry("delete", "DELETE", "/api/hands/6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
	)

	It("should pass the token identity to the service", func() {
		rec := serve("GET", "/api/hands/my", "", "Bearer "+token)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`[]`))

		_, identity, _ := fakeService.ListHandsArgsForCall(0)
		Expect(identity).To(Equal(core.Identity{UserID: "user-a", Username: "alice"}))
	})

	It("should leave public routes open", func() {
		rec := serve("POST", "/api/register", `{"username":"alice","password":"hunter2"}`, "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(fakeService.RegisterCallCount()).To(Equal(1))

		rec = serve("GET", "/api/health", "", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("should tag every response with a request id and CORS header", func() {
		rec := serve("GET", "/api/hands/my", "", "")
		Expect(rec.Header().Get("X-Request-ID")).NotTo(BeEmpty())
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})

	It("should answer preflight requests", func() {
		req := httptest.NewRequest("OPTIONS", "/api/hands", nil)
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusNoContent))
	})
})
