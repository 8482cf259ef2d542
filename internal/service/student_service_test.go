package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
)

func TestStudentService(t *testing.T) {
	ctx := context.Background()

	Convey("Given a student service", t, func() {
		repo := &fakeStudentRepo{}
		tx := &fakeTx{}
		svc := NewStudentService(repo, tx, zerolog.Nop())

		Convey("When listing an empty table", func() {
			students, err := svc.List(ctx)

			Convey("Then an empty, non-nil slice is returned", func() {
				So(err, ShouldBeNil)
				So(students, ShouldNotBeNil)
				So(students, ShouldBeEmpty)
			})
		})

		Convey("When creating a student", func() {
			created, err := svc.Create(ctx, model.CreateStudentRequest{ID: "AHM1234", Name: "Ahmad"})

			Convey("Then the row echoes the input and is committed", func() {
				So(err, ShouldBeNil)
				So(created.ID, ShouldEqual, "AHM1234")
				So(created.Name, ShouldEqual, "Ahmad")
				So(tx.commits, ShouldEqual, 1)
			})

			Convey("And fetching it by id returns the same row", func() {
				got, err := svc.GetByID(ctx, "AHM1234")
				So(err, ShouldBeNil)
				So(*got, ShouldResemble, *created)
			})

			Convey("And creating the same id again fails and rolls back", func() {
				_, err := svc.Create(ctx, model.CreateStudentRequest{ID: "AHM1234", Name: "Other"})
				So(err, ShouldEqual, errDuplicate)
				So(tx.rollbacks, ShouldEqual, 1)
				So(repo.rows, ShouldHaveLength, 1)
			})
		})

		Convey("When fetching an unknown id", func() {
			_, err := svc.GetByID(ctx, "NOPE0000")

			Convey("Then ErrNotFound is returned", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})
	})
}
