package validate

import (
	"math"
	"net/url"
	"sort"
	"strings"
	"testing"
)

func form(v url.Values) func(string) string { return v.Get }

func TestID(t *testing.T) {
	for _, in := range []string{"", "0", "-1", "abc", "1.5", "1;DROP", strings.Repeat("9", 30)} {
		if _, ok := ID(in); ok {
			t.Errorf("ID(%q) accepted", in)
		}
	}
	if n, ok := ID(" 42 "); !ok || n != 42 {
		t.Fatalf("ID(42) = %d %v", n, ok)
	}
}

func TestSearchFormFull(t *testing.T) {
	f, dropped := SearchForm(form(url.Values{
		"cidade":   {"  São Paulo "},
		"tipo":     {"apartamento"},
		"quartos":  {"2"},
		"precoMin": {"1500,50"},
		"precoMax": {"4000"},
	}))
	if len(dropped) != 0 {
		t.Fatalf("nothing should drop: %v", dropped)
	}
	if f.City != "São Paulo" || f.Category != "apartamento" || *f.Rooms != 2 {
		t.Fatalf("form: %+v", f)
	}
	if math.Abs(*f.MinPrice-1500.5) > 1e-9 || *f.MaxPrice != 4000 {
		t.Fatalf("prices: %v %v", *f.MinPrice, *f.MaxPrice)
	}
}

func TestSearchFormEmpty(t *testing.T) {
	f, dropped := SearchForm(form(url.Values{}))
	if len(dropped) != 0 || f.City != "" || f.Category != "" || f.Rooms != nil || f.MinPrice != nil || f.MaxPrice != nil {
		t.Fatalf("empty form: %+v dropped=%v", f, dropped)
	}
}

func TestSearchFormDropsBadValues(t *testing.T) {
	f, dropped := SearchForm(form(url.Values{
		"cidade":   {strings.Repeat("a", 200)},
		"tipo":     {"castelo"},
		"quartos":  {"9"},
		"precoMin": {"-10"},
		"precoMax": {"muito"},
	}))
	sort.Strings(dropped)
	want := []string{"cidade", "precoMax", "precoMin", "quartos", "tipo"}
	if strings.Join(dropped, ",") != strings.Join(want, ",") {
		t.Fatalf("dropped: %v", dropped)
	}
	if len(f.City) != maxCityLen || f.Category != "" || f.Rooms != nil || f.MinPrice != nil || f.MaxPrice != nil {
		t.Fatalf("form: %+v", f)
	}
}

func TestSearchFormDropsNonFinitePrices(t *testing.T) {
	for _, v := range []string{"Inf", "+infinity", "-Inf", "NaN"} {
		f, dropped := SearchForm(form(url.Values{"cidade": {"Recife"}, "precoMin": {"100"}, "precoMax": {v}}))
		if f.MaxPrice != nil || len(dropped) != 1 || dropped[0] != "precoMax" {
			t.Fatalf("%s: form %+v dropped %v", v, f, dropped)
		}
		if f.MinPrice == nil || *f.MinPrice != 100 {
			t.Fatalf("%s: finite price lost", v)
		}
	}
}
