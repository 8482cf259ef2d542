package validator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

func contextWithBody(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/quiz-results", strings.NewReader(body))
	return c
}

func TestBindJSON(t *testing.T) {
	Convey("Given a quiz result payload", t, func() {
		var req model.SubmitQuizResultRequest

		Convey("When the body is empty", func() {
			err := BindJSON(contextWithBody("  "), &req, "Missing required fields")

			Convey("Then it fails with 400 before parsing", func() {
				So(response.StatusOf(err), ShouldEqual, http.StatusBadRequest)
				So(err.Error(), ShouldEqual, response.MsgBodyRequired)
			})
		})

		Convey("When the body is not JSON", func() {
			err := BindJSON(contextWithBody("{nope"), &req, "Missing required fields")

			Convey("Then it fails with 400 invalid JSON", func() {
				So(response.StatusOf(err), ShouldEqual, http.StatusBadRequest)
				So(err.Error(), ShouldEqual, response.MsgInvalidJSON)
			})
		})

		Convey("When score is missing", func() {
			err := BindJSON(contextWithBody(`{"student_id":"A","chapter_id":1,"total_questions":3}`), &req, "Missing required fields")

			Convey("Then the missing field is reported under its JSON name", func() {
				So(response.StatusOf(err), ShouldEqual, http.StatusBadRequest)
				So(err.Error(), ShouldEqual, "Missing required fields")
				So(fieldsOf(err), ShouldContainKey, "score")
			})
		})

		Convey("When score is zero", func() {
			err := BindJSON(contextWithBody(`{"student_id":"A","chapter_id":1,"score":0,"total_questions":3}`), &req, "Missing required fields")

			Convey("Then it is accepted", func() {
				So(err, ShouldBeNil)
				So(*req.Score, ShouldEqual, 0)
			})
		})
	})
}

func fieldsOf(err error) map[string]string {
	var tagged *response.Error
	if errors.As(err, &tagged) {
		return tagged.Fields
	}
	return nil
}
