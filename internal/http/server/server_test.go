package server_test

import (
	"net"
	"net/http"
	"time"

	"handkeeper/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	freeAddr := func() string {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		addr := l.Addr().String()
		Expect(l.Close()).To(Succeed())
		return addr
	}

	It("should serve requests until shut down", func() {
		addr := freeAddr()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		srv := server.NewHTTP(zap.NewNop().Sugar(), handler, addr, server.Timeouts{
			Read:     time.Second,
			Write:    time.Second,
			Idle:     time.Second,
			Shutdown: time.Second,
		})

		errChan := srv.Run()

		resp, err := http.Get("http://" + addr + "/")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Body.Close()).To(Succeed())
		Expect(resp.StatusCode).To(Equal(http.StatusTeapot))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should report an address that cannot be bound", func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		defer l.Close()

		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), l.Addr().String(), server.Timeouts{})
		Eventually(srv.Run()).Should(Receive(HaveOccurred()))
	})
})
