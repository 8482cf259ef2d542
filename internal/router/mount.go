package router

import (
	"net/http"
	"regexp"
	"strings"
)

// functionMount matches the path a serverless platform prepends to the function.
var functionMount = regexp.MustCompile(`\.netlify/functions/[^/]+`)

// StripMount rewrites the request path with NormalizePath before calling next.
func StripMount(next http.Handler, prefix string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = NormalizePath(r.URL.Path, prefix)
		r.URL.RawPath = ""
		next.ServeHTTP(w, r)
	})
}

// NormalizePath removes the first serverless function mount and a leading
// prefix, then collapses the remainder into its non-empty segments.
//
//	/.netlify/functions/api/students/  -> /students
//	/api//contents///7                 -> /contents/7
func NormalizePath(p, prefix string) string {
	if loc := functionMount.FindStringIndex(p); loc != nil {
		p = p[:loc[0]] + p[loc[1]:]
	}

	segments := strings.FieldsFunc(p, func(r rune) bool { return r == '/' })

	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		want := strings.Split(prefix, "/")
		if hasPrefix(segments, want) {
			segments = segments[len(want):]
		}
	}

	return "/" + strings.Join(segments, "/")
}

func hasPrefix(segments, want []string) bool {
	if len(segments) < len(want) {
		return false
	}
	for i := range want {
		if segments[i] != want[i] {
			return false
		}
	}
	return true
}
