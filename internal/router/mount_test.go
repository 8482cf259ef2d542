package router

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizePath(t *testing.T) {
	Convey("NormalizePath", t, func() {
		cases := []struct {
			in, prefix, want string
		}{
			{"/.netlify/functions/api/students", "/api", "/students"},
			{"/.netlify/functions/api", "/api", "/"},
			{"/.netlify/functions/api/", "", "/"},
			{"//students///AHM1234/", "", "/students/AHM1234"},
			{"/api/contents/7", "/api", "/contents/7"},
			{"/api", "/api", "/"},
			{"/apis/contents", "/api", "/apis/contents"},
			{"/v1/api/contents", "/v1/api/", "/contents"},
			{"/quiz-results", "", "/quiz-results"},
			{"", "/api", "/"},
		}
		for _, tc := range cases {
			So(NormalizePath(tc.in, tc.prefix), ShouldEqual, tc.want)
		}
	})
}
