package urlq

import (
	"errors"
	"reflect"
	"testing"
)

type pageQuery struct {
	Limit   int      `query:"limit"`
	Offset  uint     `query:"offset"`
	Cursor  string   `query:"cursor"`
	Desc    bool     `query:"desc"`
	Score   float64  `query:"score"`
	Tags    []string `query:"tag"`
	Ignored string
}

func TestBind(t *testing.T) {
	c, err := Parse("limit=25&offset=50&cursor=abc&desc=true&score=0.5&tag=red&tag=blue&Ignored=x")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	page, err := Bind[pageQuery](c)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	want := pageQuery{
		Limit:  25,
		Offset: 50,
		Cursor: "abc",
		Desc:   true,
		Score:  0.5,
		Tags:   []string{"red", "blue"},
	}
	if !reflect.DeepEqual(*page, want) {
		t.Errorf("Bind() = %+v, want %+v", *page, want)
	}
}

func TestBind_AbsentKeysLeaveZeroValues(t *testing.T) {
	c, err := Parse("cursor=xyz")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	page, err := Bind[pageQuery](c)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	if page.Cursor != "xyz" {
		t.Errorf("Cursor = %q, want %q", page.Cursor, "xyz")
	}
	if page.Limit != 0 || page.Desc || page.Tags != nil {
		t.Errorf("absent fields should stay zero: %+v", *page)
	}
}

func TestBind_ConversionFailure(t *testing.T) {
	c, err := Parse("limit=many")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	_, err = Bind[pageQuery](c)
	if !errors.Is(err, ErrBind) {
		t.Fatalf("Bind() error = %v, want ErrBind", err)
	}

	var be *BindError
	if !errors.As(err, &be) {
		t.Fatalf("error %v should be a *BindError", err)
	}
	if be.Field != "Limit" {
		t.Errorf("BindError field = %q, want %q", be.Field, "Limit")
	}
}

func TestBind_UnsupportedKind(t *testing.T) {
	type badQuery struct {
		Meta map[string]string `query:"meta"`
	}

	c := New()
	_, err := Bind[badQuery](c)
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("Bind() error = %v, want ErrUnsupportedKind", err)
	}
}

func TestMarshal(t *testing.T) {
	page := pageQuery{
		Limit:  10,
		Offset: 5,
		Cursor: "tok",
		Desc:   true,
		Score:  1.5,
		Tags:   []string{"x", "y"},
	}

	c, err := Marshal(&page)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := "limit=10&offset=5&cursor=tok&desc=true&score=1.5&tag=x&tag=y"
	if got := c.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestMarshal_Nil(t *testing.T) {
	_, err := Marshal[pageQuery](nil)
	if !errors.Is(err, ErrBind) {
		t.Errorf("Marshal(nil) error = %v, want ErrBind", err)
	}
}

func TestMarshalBind_RoundTrip(t *testing.T) {
	original := pageQuery{Limit: 7, Cursor: "c", Tags: []string{"a"}}

	c, err := Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	restored, err := Bind[pageQuery](c)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	if !reflect.DeepEqual(*restored, original) {
		t.Errorf("round-trip failed: got %+v, want %+v", *restored, original)
	}
}
