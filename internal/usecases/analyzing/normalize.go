package analyzing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/vfg2006/movement-insights-api/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	minSerialDay = 18000
	maxSerialDay = 90000
)

var (
	serialEpoch     = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	numericLike     = regexp.MustCompile(`^\d+(\.\d+)?$`)
	dayFirstPattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)
	fallbackLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		time.DateOnly,
		"2006/01/02",
		"1/2/2006 15:04:05",
		"1/2/2006 15:04",
		"1/2/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		time.RFC1123Z,
		time.RFC1123,
	}
)

// NormalizeText remove acentos e pontos, colapsa espaços e converte para minúsculas
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	result = strings.ReplaceAll(result, ".", "")
	result = strings.Join(strings.Fields(result), " ")
	return strings.ToLower(result)
}

// ParseNumber interpreta números no formato brasileiro ("1.234,5"); nulo quando não há número finito
func ParseNumber(v domain.Scalar) *float64 {
	switch v.Kind {
	case domain.ScalarNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return nil
		}
		n := v.Number
		return &n
	case domain.ScalarText:
		s := strings.TrimSpace(v.Text)
		if s == "" {
			return nil
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// ParseDate aceita data nativa, serial do Excel, "dd/mm/aaaa [hh:mm[:ss]]" e formatos genéricos
func ParseDate(v domain.Scalar, dayFirst bool) *time.Time {
	switch v.Kind {
	case domain.ScalarDate:
		t := v.Time.UTC()
		return &t
	case domain.ScalarNumber:
		return serialToDate(v.Number)
	case domain.ScalarText:
		return parseDateText(v.Text, dayFirst)
	default:
		return nil
	}
}

func serialToDate(n float64) *time.Time {
	if math.IsNaN(n) || n <= minSerialDay || n >= maxSerialDay {
		return nil
	}
	ms := int64(n * 24 * 60 * 60 * 1000)
	t := serialEpoch.Add(time.Duration(ms) * time.Millisecond)
	return &t
}

func parseDateText(raw string, dayFirst bool) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if digits := strings.Replace(s, ",", ".", 1); numericLike.MatchString(digits) {
		if n, err := strconv.ParseFloat(digits, 64); err == nil && n > minSerialDay && n < maxSerialDay {
			return serialToDate(n)
		}
	}

	if dayFirst {
		if m := dayFirstPattern.FindStringSubmatch(s); m != nil {
			return dayFirstDate(m)
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}

func dayFirstDate(m []string) *time.Time {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		n, _ := strconv.Atoi(s)
		return n
	}

	day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if year < 100 {
		year += 2000
	}
	hh, mm, ss := atoi(m[4]), atoi(m[5]), atoi(m[6])

	if month < 1 || month > 12 || day < 1 || hh > 23 || mm > 59 || ss > 59 {
		return nil
	}

	t := time.Date(year, time.Month(month), day, hh, mm, ss, 0, time.UTC)
	if t.Day() != day {
		// 31/02 e afins
		return nil
	}
	return &t
}
