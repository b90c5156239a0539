package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"chavecerta/internal/domain"
)

var (
	reID    = regexp.MustCompile(`^[0-9]{1,18}$`)
	structs = validator.New()
)

const maxCityLen = 80

// ID parses a positive numeric listing id.
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Bool accepts the usual form spellings; anything else is false.
func Bool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// SearchForm builds the hero search state from form values. It never fails:
// values that do not parse or fall outside their bounds are dropped and
// reported by field name.
func SearchForm(get func(key string) string) (domain.SearchForm, []string) {
	var dropped []string
	f := domain.SearchForm{
		City:     strings.TrimSpace(get("cidade")),
		Category: strings.TrimSpace(get("tipo")),
	}
	if utf8.RuneCountInString(f.City) > maxCityLen {
		f.City = string([]rune(f.City)[:maxCityLen])
		dropped = append(dropped, "cidade")
	}
	if v := strings.TrimSpace(get("quartos")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Rooms = &n
		} else {
			dropped = append(dropped, "quartos")
		}
	}
	for key, dst := range map[string]**float64{"precoMin": &f.MinPrice, "precoMax": &f.MaxPrice} {
		v := strings.TrimSpace(get(key))
		if v == "" {
			continue
		}
		// ParseFloat also accepts Inf and NaN spellings
		if n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			*dst = &n
		} else {
			dropped = append(dropped, key)
		}
	}

	if err := structs.Struct(f); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				switch fe.Field() {
				case "Category":
					f.Category = ""
					dropped = append(dropped, "tipo")
				case "Rooms":
					f.Rooms = nil
					dropped = append(dropped, "quartos")
				case "MinPrice":
					f.MinPrice = nil
					dropped = append(dropped, "precoMin")
				case "MaxPrice":
					f.MaxPrice = nil
					dropped = append(dropped, "precoMax")
				}
			}
		}
	}
	return f, dropped
}
