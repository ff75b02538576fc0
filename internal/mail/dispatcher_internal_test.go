package mail

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("newSMTPClient", func() {
	DescribeTable("should dial the configured port",
		func(port int, addr string) {
			client, err := newSMTPClient(Config{
				Host:     "smtp.example.com",
				Port:     port,
				Username: "mailer",
				Password: "secret",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(client.ServerAddr()).To(Equal(addr))
		},
		Entry("plain relay", 25, "smtp.example.com:25"),
		Entry("submission", 587, "smtp.example.com:587"),
		Entry("custom", 2525, "smtp.example.com:2525"),
	)
})
