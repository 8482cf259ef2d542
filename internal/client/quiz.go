package client

import (
	"fmt"
	"math"
)

// CalculateScore counts the answers equal to the correct option at the same
// position. Answers past the end of correct are ignored.
func CalculateScore(answers, correct []int) int {
	score := 0
	for i, a := range answers {
		if i < len(correct) && a == correct[i] {
			score++
		}
	}
	return score
}

// Feedback is the verdict shown after a quiz.
type Feedback struct {
	Text  string
	Color string
}

// PerformanceFeedback grades a percentage score.
func PerformanceFeedback(percentage float64) Feedback {
	switch {
	case percentage >= 90:
		return Feedback{Text: "Luar Biasa!", Color: "#48bb78"}
	case percentage >= 80:
		return Feedback{Text: "Bagus Sekali!", Color: "#68d391"}
	case percentage >= 70:
		return Feedback{Text: "Baik!", Color: "#f6e05e"}
	case percentage >= 60:
		return Feedback{Text: "Cukup", Color: "#ed8936"}
	default:
		return Feedback{Text: "Perlu belajar lagi", Color: "#fc8181"}
	}
}

// FormatFileSize renders a byte count with two decimals at most, e.g. "2.4 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 KB"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return fmt.Sprintf("%v %s", v, units[i])
}
