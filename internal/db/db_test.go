package db_test

import (
	"context"
	"database/sql"
	"errors"
	"gamesite/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       string `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex:idx_tests_username"`
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = db.NewGormDBWithConn(gormDB)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests"`).
					WithArgs("id-1", "Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should save the record", func() {
				err := testDB.Create(ctx, &Test{ID: "id-1", Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique index is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests"`).
					WillReturnError(&pgconn.PgError{
						Code:           "23505",
						ConstraintName: "idx_tests_username",
					})
				mock.ExpectRollback()
			})

			It("should report the constraint", func() {
				err := testDB.Create(ctx, &Test{ID: "id-2", Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicateKey))

				var constraintErr *db.ConstraintError
				Expect(errors.As(err, &constraintErr)).To(BeTrue())
				Expect(constraintErr.Constraint).To(Equal("idx_tests_username"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails for another reason", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests"`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.Create(ctx, &Test{ID: "id-3", Username: "Bob"})
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).NotTo(MatchError(db.ErrDuplicateKey))
			})
		})
	})

	Describe("GetOneWhere", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."username" = \$1 ORDER BY "tests"\."id" LIMIT \$2`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow("id-1", "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneWhere(ctx, map[string]any{"username": "Alice"}, &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal("id-1"))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."username" = \$1`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneWhere(ctx, map[string]any{"username": "Ghost"}, &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var result Test
				err := testDB.GetOneWhere(ctx, map[string]any{"username": "Alice"}, &result)
				Expect(err).To(MatchError(ContainSubstring("getting record by")))
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("UpdateWhere", func() {
		When("rows match", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "tests" SET "username"=\$1 WHERE "tests"\."id" = \$2`).
					WithArgs("Carol", "id-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should report the affected rows", func() {
				n, err := testDB.UpdateWhere(ctx, &Test{}, map[string]any{"id": "id-1"}, map[string]any{"username": "Carol"})
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "tests"`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should report zero rows without an error", func() {
				n, err := testDB.UpdateWhere(ctx, &Test{}, map[string]any{"id": "missing"}, map[string]any{"username": "Carol"})
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(BeZero())
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "tests"`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				_, err := testDB.UpdateWhere(ctx, &Test{}, map[string]any{"id": "id-1"}, map[string]any{"username": "Carol"})
				Expect(err).To(MatchError(ContainSubstring("updating records by")))
			})
		})
	})
})
