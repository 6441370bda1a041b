package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
)

const (
	PatternFull   = "EEEE MMMM, d, y 'at' h:mma"
	PatternMedium = "EE MM, dd, y h:mma"
)

var translator locales.Translator = en.New()

// Форматы, которые принимает FormatDateTime для строковых значений.
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime разбирает строку времени. Значения без зоны считаются UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date/time %q", value)
}

// FormatDateTime форматирует строку времени по имени формата ("full",
// "medium", "") или по произвольному CLDR-шаблону.
func FormatDateTime(value, format string) (string, error) {
	t, err := ParseDateTime(value)
	if err != nil {
		return "", err
	}
	return FormatTime(t, format)
}

func FormatTime(t time.Time, format string) (string, error) {
	switch format {
	case "full":
		format = PatternFull
	case "", "medium":
		format = PatternMedium
	}
	return formatPattern(t, format)
}

// formatPattern поддерживает подмножество символов CLDR, которого хватает
// шаблонам страниц: E, M, d, y, h, H, m, s, a и литералы в кавычках.
func formatPattern(t time.Time, pattern string) (string, error) {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				j++
			}
			if j == i+1 {
				b.WriteRune('\'')
			} else {
				b.WriteString(string(runes[i+1 : j]))
			}
			i = j + 1
			continue
		}

		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		field, err := formatField(t, r, j-i)
		if err != nil {
			return "", err
		}
		b.WriteString(field)
		i = j
	}
	return b.String(), nil
}

func formatField(t time.Time, symbol rune, width int) (string, error) {
	switch symbol {
	case 'E':
		if width >= 4 {
			return translator.WeekdayWide(t.Weekday()), nil
		}
		return translator.WeekdayAbbreviated(t.Weekday()), nil
	case 'M':
		switch {
		case width >= 4:
			return translator.MonthWide(t.Month()), nil
		case width == 3:
			return translator.MonthAbbreviated(t.Month()), nil
		default:
			return pad(int(t.Month()), width), nil
		}
	case 'd':
		return pad(t.Day(), width), nil
	case 'y':
		if width == 2 {
			return pad(t.Year()%100, 2), nil
		}
		return pad(t.Year(), width), nil
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, width), nil
	case 'H':
		return pad(t.Hour(), width), nil
	case 'm':
		return pad(t.Minute(), width), nil
	case 's':
		return pad(t.Second(), width), nil
	case 'a':
		return t.Format("PM"), nil
	default:
		return "", fmt.Errorf("unsupported date pattern symbol %q", string(symbol))
	}
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// templateDateTime регистрируется в шаблонах как функция datetime.
func templateDateTime(value any, format ...string) (string, error) {
	f := ""
	if len(format) > 0 {
		f = format[0]
	}

	switch v := value.(type) {
	case time.Time:
		return FormatTime(v.UTC(), f)
	case *time.Time:
		if v == nil {
			return "", nil
		}
		return FormatTime(v.UTC(), f)
	case string:
		return FormatDateTime(v, f)
	default:
		return "", fmt.Errorf("datetime: unsupported value type %T", value)
	}
}
