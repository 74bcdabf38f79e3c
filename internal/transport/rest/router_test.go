package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Not found handler", func() {
	It("should return the fail envelope with the requested path", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
		w := httptest.NewRecorder()

		notFoundHandler(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var body map[string]string
		err := json.NewDecoder(w.Body).Decode(&body)
		Expect(err).NotTo(HaveOccurred())
		Expect(body["status"]).To(Equal("fail"))
		Expect(body["message"]).To(Equal("Can't find /api/nope on this server!"))
	})
})
