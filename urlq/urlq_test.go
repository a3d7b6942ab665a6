package urlq

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	c, err := Parse("a=1&b=two&a=3")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if got := c.Get("a"); got != "1" {
		t.Errorf("Get(a) = %q, want %q", got, "1")
	}
	if got := c.GetAll("a"); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("GetAll(a) = %v, want [1 3]", got)
	}
	if got := c.Get("b"); got != "two" {
		t.Errorf("Get(b) = %q, want %q", got, "two")
	}
}

func TestParse_Escapes(t *testing.T) {
	c, err := Parse("q=hello+world&path=%2Ftmp")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := c.Get("q"); got != "hello world" {
		t.Errorf("Get(q) = %q, want %q", got, "hello world")
	}
	if got := c.Get("path"); got != "/tmp" {
		t.Errorf("Get(path) = %q, want %q", got, "/tmp")
	}
}

func TestParse_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		wantLen  int
	}{
		{name: "empty", rawQuery: "", wantLen: 0},
		{name: "leading question mark", rawQuery: "?a=1", wantLen: 1},
		{name: "empty segments", rawQuery: "a=1&&b=2&", wantLen: 2},
		{name: "valueless key", rawQuery: "flag", wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.rawQuery)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.rawQuery, err)
			}
			if c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
		})
	}
}

func TestParse_BadEscape(t *testing.T) {
	_, err := Parse("a=%zz")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Parse() error = %v, want ErrParse", err)
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v should be a *ParseError", err)
	}
	if pe.Segment != "a=%zz" {
		t.Errorf("ParseError segment = %q, want %q", pe.Segment, "a=%zz")
	}
}

func TestEncode_PreservesOrder(t *testing.T) {
	c := New()
	c.Add("z", "26")
	c.Add("a", "1")
	c.Add("z", "again")

	want := "z=26&a=1&z=again"
	if got := c.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	raw := "b=2&a=1&b=3&q=hello+world"
	c, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := c.Encode(); got != raw {
		t.Errorf("Encode() = %q, want %q", got, raw)
	}
}

func TestEncode_Escaping(t *testing.T) {
	c := New()
	c.Add("path", "/tmp/x y")

	want := "path=%2Ftmp%2Fx+y"
	if got := c.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestSet(t *testing.T) {
	c := New()
	c.Add("a", "1")
	c.Add("b", "2")
	c.Add("a", "3")

	c.Set("a", "9")

	if got := c.Encode(); got != "a=9&b=2" {
		t.Errorf("after Set: Encode() = %q, want %q", got, "a=9&b=2")
	}

	c.Set("c", "new")
	if got := c.Encode(); got != "a=9&b=2&c=new" {
		t.Errorf("after Set(new key): Encode() = %q, want %q", got, "a=9&b=2&c=new")
	}
}

func TestDel(t *testing.T) {
	c := New()
	c.Add("a", "1")
	c.Add("b", "2")
	c.Add("a", "3")

	c.Del("a")

	if c.Has("a") {
		t.Error("Has(a) = true after Del")
	}
	if got := c.Encode(); got != "b=2" {
		t.Errorf("Encode() = %q, want %q", got, "b=2")
	}
}

func TestKeys(t *testing.T) {
	c := New()
	c.Add("z", "1")
	c.Add("a", "2")
	c.Add("z", "3")

	if got := c.Keys(); !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Errorf("Keys() = %v, want [z a]", got)
	}
}

func TestZeroValue(t *testing.T) {
	var c Collection

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.Get("missing") != "" {
		t.Error("Get on empty collection should return \"\"")
	}
	if c.Encode() != "" {
		t.Errorf("Encode() = %q, want \"\"", c.Encode())
	}

	c.Add("a", "1")
	if got := c.Encode(); got != "a=1" {
		t.Errorf("Encode() = %q, want %q", got, "a=1")
	}
}
