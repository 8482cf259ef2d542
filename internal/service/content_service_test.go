package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
)

func TestContentService(t *testing.T) {
	ctx := context.Background()

	Convey("Given a content service", t, func() {
		repo := &fakeContentRepo{}
		tx := &fakeTx{}
		svc := NewContentService(repo, tx, zerolog.Nop())

		Convey("When creating a content with only the required fields", func() {
			created, err := svc.Create(ctx, model.CreateContentRequest{
				ChapterID: 1,
				Section:   model.SectionMufrodat,
				Title:     "T",
			})

			Convey("Then the optional fields take their defaults", func() {
				So(err, ShouldBeNil)
				So(created.Description, ShouldEqual, "Tidak ada deskripsi")
				So(created.FileCount, ShouldEqual, 0)
				So(created.FileNames, ShouldNotBeNil)
				So(created.FileNames, ShouldBeEmpty)
				So(created.FileDatas, ShouldNotBeNil)
				So(tx.commits, ShouldEqual, 1)
			})
		})

		Convey("When creating a content with files", func() {
			created, err := svc.Create(ctx, model.CreateContentRequest{
				ChapterID:    2,
				Section:      model.SectionHiwar,
				Title:        "Percakapan",
				Description:  "Video",
				FileNames:    []string{"video-percakapan.mp4"},
				FileTypes:    []string{"video/mp4"},
				FileSizes:    []string{"15.2 MB"},
				FileContents: []string{"VIDEO"},
				FileDatas:    []string{"https://example.com/v.mp4"},
				FileCount:    1,
			})

			Convey("Then the values are kept as given", func() {
				So(err, ShouldBeNil)
				So(created.Description, ShouldEqual, "Video")
				So(created.FileNames, ShouldResemble, []string{"video-percakapan.mp4"})
				So(created.FileCount, ShouldEqual, 1)
			})
		})

		Convey("When deleting the same content twice", func() {
			created, _ := svc.Create(ctx, model.CreateContentRequest{ChapterID: 1, Section: model.SectionQowaid, Title: "Isim"})

			first, err1 := svc.Delete(ctx, created.ID)
			_, err2 := svc.Delete(ctx, created.ID)

			Convey("Then the first returns the row and the second is not found", func() {
				So(err1, ShouldBeNil)
				So(first.Title, ShouldEqual, "Isim")
				So(err2, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When listing an empty table", func() {
			contents, err := svc.List(ctx, model.ContentFilter{})

			Convey("Then an empty, non-nil slice is returned", func() {
				So(err, ShouldBeNil)
				So(contents, ShouldNotBeNil)
			})
		})
	})
}
