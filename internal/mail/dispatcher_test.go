package mail_test

import (
	"bytes"
	"context"
	"errors"
	"gamesite/internal/mail"
	"gamesite/internal/mail/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SMTPDispatcher", func() {
	var (
		fakeSender *fake.Sender
		dispatcher *mail.SMTPDispatcher
		ctx        context.Context
		from       string
		to         string
		err        error
	)

	BeforeEach(func() {
		fakeSender = new(fake.Sender)
		ctx = context.Background()
		from = "noreply@gamesite.test"
		to = "a@x.com"
	})

	JustBeforeEach(func() {
		var newErr error
		dispatcher, newErr = mail.NewDispatcherWithSender(fakeSender, from)
		Expect(newErr).NotTo(HaveOccurred())

		err = dispatcher.SendConfirmationCode(ctx, to, "alice", "482931")
	})

	When("the server accepts the message", func() {
		It("should send one message carrying the code to the user", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeSender.DialAndSendWithContextCallCount()).To(Equal(1))

			_, msgs := fakeSender.DialAndSendWithContextArgsForCall(0)
			Expect(msgs).To(HaveLen(1))

			recipients, rcptErr := msgs[0].GetRecipients()
			Expect(rcptErr).NotTo(HaveOccurred())
			Expect(recipients).To(ConsistOf("a@x.com"))

			var raw bytes.Buffer
			_, writeErr := msgs[0].WriteTo(&raw)
			Expect(writeErr).NotTo(HaveOccurred())
			Expect(raw.String()).To(ContainSubstring("482931"))
			Expect(raw.String()).To(ContainSubstring("Your account confirmation code"))
		})
	})

	When("the server rejects the message", func() {
		BeforeEach(func() {
			fakeSender.DialAndSendWithContextReturns(errors.New("550 mailbox unavailable"))
		})

		It("should return the delivery error", func() {
			Expect(err).To(MatchError(ContainSubstring("send confirmation email")))
			Expect(err).To(MatchError(ContainSubstring("550 mailbox unavailable")))
		})
	})

	When("the recipient address is malformed", func() {
		BeforeEach(func() {
			to = "not an address"
		})

		It("should fail before dialing", func() {
			Expect(err).To(MatchError(ContainSubstring("set recipient")))
			Expect(fakeSender.DialAndSendWithContextCallCount()).To(BeZero())
		})
	})

	When("the sender address is malformed", func() {
		BeforeEach(func() {
			from = ""
		})

		It("should fail before dialing", func() {
			Expect(err).To(MatchError(ContainSubstring("set sender")))
			Expect(fakeSender.DialAndSendWithContextCallCount()).To(BeZero())
		})
	})
})

var _ = Describe("DisabledDispatcher", func() {
	It("should always report that mail is disabled", func() {
		err := mail.DisabledDispatcher{}.SendConfirmationCode(context.Background(), "a@x.com", "alice", "482931")
		Expect(err).To(MatchError(mail.ErrDisabled))
	})
})
