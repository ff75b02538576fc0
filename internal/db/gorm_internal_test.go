package db

import (
	"bytes"
	"context"
	"database/sql"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("gorm logger", func() {
	var (
		out   *bytes.Buffer
		trace func(err error)
	)

	BeforeEach(func() {
		out = new(bytes.Buffer)
		l := newGormLogger(out)
		trace = func(err error) {
			l.Trace(context.Background(), time.Now(), func() (string, int64) {
				return `SELECT * FROM "users" WHERE "users"."username" = 'ghost'`, 0
			}, err)
		}
	})

	It("should stay silent when a lookup finds nothing", func() {
		trace(gorm.ErrRecordNotFound)
		Expect(out.String()).To(BeEmpty())
	})

	It("should report failed queries", func() {
		trace(sql.ErrConnDone)
		Expect(out.String()).To(ContainSubstring(sql.ErrConnDone.Error()))
	})

	It("should not log successful fast queries", func() {
		trace(nil)
		Expect(out.String()).To(BeEmpty())
	})
})
