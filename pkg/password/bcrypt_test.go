package password_test

import (
	"gamesite/pkg/password"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("BcryptHasher", func() {
	var hasher *password.BcryptHasher

	BeforeEach(func() {
		hasher = password.NewBcryptHasher(bcrypt.MinCost)
	})

	Describe("Hash", func() {
		It("should produce a verifiable hash that differs from the input", func() {
			hash, err := hasher.Hash("Secret1")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(Equal("Secret1"))
			Expect(hasher.Compare(hash, "Secret1")).To(Succeed())
		})

		It("should salt every hash", func() {
			first, err := hasher.Hash("Secret1")
			Expect(err).NotTo(HaveOccurred())
			second, err := hasher.Hash("Secret1")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("should use the default cost when the requested one is out of range", func() {
			hash, err := password.NewBcryptHasher(0).Hash("Secret1")
			Expect(err).NotTo(HaveOccurred())
			cost, err := bcrypt.Cost([]byte(hash))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(password.DefaultCost))
		})
	})

	Describe("Compare", func() {
		var hash string

		BeforeEach(func() {
			var err error
			hash, err = hasher.Hash("Secret1")
			Expect(err).NotTo(HaveOccurred())
		})

		When("the password is wrong", func() {
			It("should return ErrMismatch", func() {
				Expect(hasher.Compare(hash, "wrong")).To(MatchError(password.ErrMismatch))
			})
		})

		When("the hash is malformed", func() {
			It("should return a wrapped error that is not ErrMismatch", func() {
				err := hasher.Compare("not-a-hash", "Secret1")
				Expect(err).To(HaveOccurred())
				Expect(err).NotTo(MatchError(password.ErrMismatch))
				Expect(err.Error()).To(ContainSubstring("compare bcrypt hash"))
			})
		})
	})
})
