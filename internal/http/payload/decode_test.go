package payload_test

import (
	"gamesite/internal/core"
	"gamesite/internal/http/payload"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	Describe("DecodePayload", func() {
		When("the body is JSON", func() {
			It("should fill the payload", func() {
				var p payload.RegisterRequest
				err := decoder.DecodePayload(jsonRequest(`{"email":"a@x.com","username":"alice","password":"Secret1","captcha":"7"}`), &p)
				Expect(err).NotTo(HaveOccurred())
				Expect(p.ToMessage()).To(Equal(core.RegisterMessage{
					Email:    "a@x.com",
					Username: "alice",
					Password: "Secret1",
					Captcha:  "7",
				}))
			})

			It("should leave absent fields empty for the service to reject", func() {
				var p payload.LoginRequest
				err := decoder.DecodePayload(jsonRequest(`{"username":"alice"}`), &p)
				Expect(err).NotTo(HaveOccurred())
				Expect(p.Password).To(BeEmpty())
			})

			It("should reject malformed JSON", func() {
				var p payload.LoginRequest
				err := decoder.DecodePayload(jsonRequest(`{"username":`), &p)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the body is a form", func() {
			It("should bind the form fields", func() {
				var p payload.ConfirmRequest
				err := decoder.DecodePayload(formRequest(url.Values{
					"email": {"a@x.com"},
					"code":  {"482931"},
				}), &p)
				Expect(err).NotTo(HaveOccurred())
				Expect(p.ToMessage()).To(Equal(core.ConfirmMessage{Email: "a@x.com", Code: "482931"}))
			})

			It("should refuse payloads without form support", func() {
				var p struct{ Name string }
				err := decoder.DecodePayload(formRequest(url.Values{"name": {"x"}}), &p)
				Expect(err).To(HaveOccurred())
			})
		})

		When("a field is oversized", func() {
			It("should fail validation", func() {
				var p payload.RegisterRequest
				body := `{"email":"a@x.com","username":"alice","password":"` + strings.Repeat("x", 73) + `","captcha":"7"}`
				err := decoder.DecodePayload(jsonRequest(body), &p)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})

			It("should reject codes longer than six digits", func() {
				var p payload.ConfirmRequest
				err := decoder.DecodePayload(jsonRequest(`{"email":"a@x.com","code":"1234567"}`), &p)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})

	DescribeTable("IsForm",
		func(contentType string, expected bool) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set("Content-Type", contentType)
			Expect(payload.IsForm(req)).To(Equal(expected))
		},
		Entry("urlencoded", "application/x-www-form-urlencoded", true),
		Entry("urlencoded with charset", "application/x-www-form-urlencoded; charset=UTF-8", true),
		Entry("multipart", "multipart/form-data; boundary=xyz", true),
		Entry("json", "application/json", false),
		Entry("missing", "", false),
	)
})
