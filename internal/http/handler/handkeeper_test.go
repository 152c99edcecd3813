package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"handkeeper/internal/core"
	"handkeeper/internal/http/handler"
	"handkeeper/internal/http/handler/fake"
	"handkeeper/internal/http/handler/middleware"
	"handkeeper/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HandKeeperHandler", func() {
	var (
		hh            *handler.HandKeeperHandler
		fakeService   *fake.HandService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		identity      core.Identity
		fakeErr       error
	)

	withIdentity := func(r *http.Request) *http.Request {
		return r.WithContext(middleware.WithIdentity(r.Context(), identity))
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		identity = core.Identity{UserID: "d9428888-122b-11e1-b85c-61cd3cbb3210", Username: "alice"}
		fakeService = new(fake.HandService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		hh = handler.NewHandKeeperHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
		})

		JustBeforeEach(func() {
			hh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should confirm it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"message":"Register Success! Please Login."}`))
				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "hunter2"}))
			})
		})

		When("username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.ErrDuplicateUsername)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(MatchJSON(`{"error":"Username already taken"}`))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(fakeErr)
			})

			It("should return status 500 with a generic detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
			fakeService.LoginReturns(core.LoginResult{Token: "signed.token", Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			hh.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("should return a token and the username", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"token":"signed.token","username":"alice"}`))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})

		DescribeTable("credential failures share one answer",
			func(loginErr error) {
				fakeService.LoginReturns(core.LoginResult{}, loginErr)
				rec := httptest.NewRecorder()
				hh.HandleLogin(rec, httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"alice","password":"x"}`)))

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(rec.Body.String()).To(MatchJSON(`{"error":"invalid username or password"}`))
			},
			Entry("unknown user", core.ErrUserNotFound),
			Entry("wrong password", core.ErrIncorrectPassword),
		)

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.LoginResult{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateHand", func() {
		var record core.HandRecord

		BeforeEach(func() {
			body := `{"timestamp":1700000000000,"dateStr":"2023-11-14","game":{"note":"<b>"},"board":["2c"],"owner":"mallory"}`
			req = withIdentity(httptest.NewRequest("POST", "/api/hands", strings.NewReader(body)))

			record = core.HandRecord{
				ID:        "3b241101-e2bb-4255-8caf-4136c566a962",
				Owner:     identity.UserID,
				OwnerName: "alice",
				Timestamp: 1700000000000,
				DateStr:   "2023-11-14",
				Game:      json.RawMessage(`{"note":"<b>"}`),
				Board:     json.RawMessage(`["2c"]`),
				CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			}
			fakeService.CreateHandReturns(record, nil)
		})

		JustBeforeEach(func() {
			hh.HandleCreateHand(w, req)
		})

		When("hand is saved", func() {
			It("should answer 201 with the stored record", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(MatchJSON(`{
					"_id":"3b241101-e2bb-4255-8caf-4136c566a962",
					"owner":"d9428888-122b-11e1-b85c-61cd3cbb3210",
					"ownerName":"alice",
					"timestamp":1700000000000,
					"dateStr":"2023-11-14",
					"game":{"note":"<b>"},
					"hero":null,
					"villains":null,
					"board":["2c"],
					"logs":null,
					"createdAt":"2026-03-01T10:00:00Z"
				}`))
				Expect(w.Body.String()).To(ContainSubstring(`"game":{"note":"<b>"}`))

				_, gotIdentity, msg := fakeService.CreateHandArgsForCall(0)
				Expect(gotIdentity).To(Equal(identity))
				Expect(string(msg.Game)).To(Equal(`{"note":"<b>"}`))
			})
		})

		When("no identity is attached", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/hands", strings.NewReader(`{}`))
			})

			It("should answer 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CreateHandCallCount()).To(Equal(0))
			})
		})

		When("payload is invalid", func() {
			BeforeEach(func() {
				req = withIdentity(httptest.NewRequest("POST", "/api/hands", strings.NewReader(`{"game":"NLH"}`)))
			})

			It("should answer 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateHandCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.CreateHandReturns(core.HandRecord{}, fakeErr)
			})

			It("should answer 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleListHands", func() {
		BeforeEach(func() {
			req = withIdentity(httptest.NewRequest("GET", "/api/hands/my", nil))
			fakeService.ListHandsReturns(core.HandPage{
				Hands: []core.HandRecord{{ID: "h2", Timestamp: 20}, {ID: "h1", Timestamp: 10}},
				Total: 7,
			}, nil)
		})

		JustBeforeEach(func() {
			hh.HandleListHands(w, req)
		})

		When("no page is requested", func() {
			It("should return a plain array without a total header", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var hands []core.HandRecord
				Expect(json.Unmarshal(w.Body.Bytes(), &hands)).To(Succeed())
				Expect(hands).To(HaveLen(2))
				Expect(hands[0].ID).To(Equal("h2"))
				Expect(w.Header().Get("X-Total-Count")).To(BeEmpty())

				_, gotIdentity, page := fakeService.ListHandsArgsForCall(0)
				Expect(gotIdentity).To(Equal(identity))
				Expect(page).To(Equal(core.Page{}))
			})
		})

		When("a page is requested", func() {
			BeforeEach(func() {
				req = withIdentity(httptest.NewRequest("GET", "/api/hands/my?limit=2&offset=2", nil))
			})

			It("should pass the page and set the total header", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("X-Total-Count")).To(Equal("7"))
				_, _, page := fakeService.ListHandsArgsForCall(0)
				Expect(page).To(Equal(core.Page{Limit: 2, Offset: 2}))
			})
		})

		When("caller has no hands", func() {
			BeforeEach(func() {
				fakeService.ListHandsReturns(core.HandPage{}, nil)
			})

			It("should return an empty array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`[]`))
			})
		})

		When("limit is out of range", func() {
			BeforeEach(func() {
				req = withIdentity(httptest.NewRequest("GET", "/api/hands/my?limit=1000", nil))
			})

			It("should answer 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ListHandsCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.ListHandsReturns(core.HandPage{}, fakeErr)
			})

			It("should answer 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleDeleteHand", func() {
		var mux *http.ServeMux

		BeforeEach(func() {
			mux = http.NewServeMux()
			mux.HandleFunc(handler.DeleteHand, hh.HandleDeleteHand)
			req = withIdentity(httptest.NewRequest("DELETE", "/api/hands/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil))
		})

		JustBeforeEach(func() {
			mux.ServeHTTP(w, req)
		})

		When("caller owns the hand", func() {
			It("should confirm the deletion", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"message":"Deleted"}`))
				_, gotIdentity, id := fakeService.DeleteHandArgsForCall(0)
				Expect(gotIdentity).To(Equal(identity))
				Expect(id).To(Equal("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
			})
		})

		When("hand is missing or not owned", func() {
			BeforeEach(func() {
				fakeService.DeleteHandReturns(core.ErrHandNotFound)
			})

			It("should answer 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(MatchJSON(`{"error":"Hand not found or not owned by you"}`))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.DeleteHandReturns(fakeErr)
			})

			It("should answer 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleHealth", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/health", nil)
		})

		It("should report ok", func() {
			hh.HandleHealth(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"message":"ok"}`))
		})

		It("should report an unreachable store", func() {
			fakeService.CheckHealthReturns(fakeErr)
			hh.HandleHealth(w, req)
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})
})
