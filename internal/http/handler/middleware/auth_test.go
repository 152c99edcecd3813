package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"handkeeper/internal/core"
	"handkeeper/internal/http/handler/middleware"
	"handkeeper/internal/http/handler/middleware/fake"
	tokenIssuer "handkeeper/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		fakeVerifier *fake.TokenVerifier
		auth         *middleware.AuthMiddleware
		w            *httptest.ResponseRecorder
		req          *http.Request

		nextCalled bool
		gotIdent   core.Identity
		gotOK      bool
	)

	BeforeEach(func() {
		fakeVerifier = new(fake.TokenVerifier)
		fakeVerifier.VerifyReturns(tokenIssuer.Subject{UserID: "user-1", Username: "alice"}, nil)
		auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeVerifier)
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/hands/my", nil)

		nextCalled = false
		gotIdent = core.Identity{}
		gotOK = false
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			gotIdent, gotOK = middleware.IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
		auth.Authenticate(next).ServeHTTP(w, req)
	})

	DescribeTable("accepted header forms",
		func(header string) {
			r := httptest.NewRequest("GET", "/api/hands/my", nil)
			r.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, r)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(fakeVerifier.VerifyArgsForCall(fakeVerifier.VerifyCallCount() - 1)).To(Equal("abc.def.ghi"))
		},
		Entry("bare token", "abc.def.ghi"),
		Entry("bearer prefix", "Bearer abc.def.ghi"),
		Entry("lowercase prefix", "bearer abc.def.ghi"),
		Entry("padded", "  Bearer   abc.def.ghi  "),
	)

	When("token is valid", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer abc.def.ghi")
		})

		It("should pass the identity on", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(gotOK).To(BeTrue())
			Expect(gotIdent).To(Equal(core.Identity{UserID: "user-1", Username: "alice"}))
		})
	})

	When("header is missing", func() {
		It("should answer 401 without verifying", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Access Denied"}`))
			Expect(fakeVerifier.VerifyCallCount()).To(Equal(0))
		})
	})

	When("header holds only the scheme", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer ")
		})

		It("should answer 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("token does not verify", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer forged")
			fakeVerifier.VerifyReturns(tokenIssuer.Subject{}, tokenIssuer.ErrTokenNotValid)
		})

		It("should answer 400 Invalid Token", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Invalid Token"}`))
		})
	})

	When("token has expired", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "old.token.value")
			fakeVerifier.VerifyReturns(tokenIssuer.Subject{},
				fmt.Errorf("jwt parse: %w: %w", tokenIssuer.ErrTokenExpired, tokenIssuer.ErrTokenNotValid))
		})

		It("should answer 400 Invalid Token", func() {
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Invalid Token"}`))
		})
	})

	When("verifier fails unexpectedly", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "abc")
			fakeVerifier.VerifyReturns(tokenIssuer.Subject{}, errors.New("boom"))
		})

		It("should still reject the request", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})

var _ = Describe("AuthMiddleware with a real token service", func() {
	It("should accept a token issued by the same service and reject another secret's", func() {
		service := tokenIssuer.NewJWTService([]byte("0123456789abcdef0123456789abcdef"))
		auth := middleware.NewAuthMiddleware(zap.NewNop().Sugar(), service)

		token, err := service.Issue(tokenIssuer.Subject{UserID: "user-1", Username: "alice"})
		Expect(err).NotTo(HaveOccurred())

		var ident core.Identity
		handler := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, _ = middleware.IdentityFromContext(r.Context())
		}))

		req := httptest.NewRequest("GET", "/api/hands/my", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(ident).To(Equal(core.Identity{UserID: "user-1", Username: "alice"}))

		other := tokenIssuer.NewJWTService([]byte("fedcba9876543210fedcba9876543210"))
		forged, err := other.Issue(tokenIssuer.Subject{UserID: "user-1", Username: "alice"})
		Expect(err).NotTo(HaveOccurred())

		req = httptest.NewRequest("GET", "/api/hands/my", nil)
		req.Header.Set("Authorization", forged)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})
