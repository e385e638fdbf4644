package auth

import (
	"fmt"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("PasswordHasher", func() {
	// Low iteration count keeps the suite fast; the derivation path is the
	// same as production.
	var hasher *PasswordHasher

	ginkgo.BeforeEach(func() {
		hasher = NewPasswordHasher(1000)
	})

	ginkgo.Describe("Hash", func() {
		ginkgo.It("should produce the iterations$salt$digest shape", func() {
			stored, err := hasher.Hash("admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			parts := strings.Split(stored, "$")
			gomega.Expect(parts).To(gomega.HaveLen(3))
			gomega.Expect(parts[0]).To(gomega.Equal("1000"))
		})

		ginkgo.It("should salt every digest independently", func() {
			first, err := hasher.Hash("admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := hasher.Hash("admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(first).ToNot(gomega.Equal(second))
		})
	})

	ginkgo.Describe("Verify", func() {
		ginkgo.It("should accept the correct plaintext on repeated calls", func() {
			stored, err := hasher.Hash("admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			for i := 0; i < 5; i++ {
				gomega.Expect(hasher.Verify("admin123", stored)).To(gomega.BeTrue())
			}
		})

		ginkgo.It("should reject every single-byte alteration of the plaintext", func() {
			password := "admin123"
			stored, err := hasher.Hash(password)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			for i := 0; i < len(password); i++ {
				altered := []byte(password)
				altered[i] ^= 0x01
				gomega.Expect(hasher.Verify(string(altered), stored)).To(gomega.BeFalse(),
					fmt.Sprintf("altered byte %d should not verify", i))
			}
		})

		ginkgo.It("should verify digests hashed with a different iteration count", func() {
			legacy := NewPasswordHasher(500)
			stored, err := legacy.Hash("view123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(hasher.Verify("view123", stored)).To(gomega.BeTrue())
			gomega.Expect(hasher.Verify("wrong", stored)).To(gomega.BeFalse())
		})

		ginkgo.It("should fail closed on malformed stored values", func() {
			for _, stored := range []string{
				"",
				"not-a-digest",
				"abc$def",
				"0$AAAA$AAAA",
				"-5$AAAA$AAAA",
				"1000$!!!$AAAA",
				"1000$AAAA$!!!",
				"1000$AAAA$",
			} {
				gomega.Expect(hasher.Verify("admin123", stored)).To(gomega.BeFalse(),
					fmt.Sprintf("stored value %q should not verify", stored))
			}
		})
	})
})
