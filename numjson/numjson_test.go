package numjson

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestParseInt64(t *testing.T) {
	for s, want := range map[string]int64{
		"0":                    0,
		"-0":                   0,
		"1":                    1,
		"-1":                   -1,
		"1516239022":           1516239022,
		"9223372036854775807":  math.MaxInt64,
		"-9223372036854775808": math.MinInt64,
	} {
		n, err := ParseInt64(s)
		if err != nil {
			t.Errorf("Unexpected error %q: %s", s, err)
		} else if n != want {
			t.Errorf("Invalid parse %q: %d != %d", s, n, want)
		}
	}
}

func TestParseInt64Overflow(t *testing.T) {
	for _, s := range []string{
		"9223372036854775808",
		"-9223372036854775809",
		"123456789012345678901234567890",
	} {
		_, err := ParseInt64(s)
		if !errors.Is(err, strconv.ErrRange) {
			t.Errorf("Expected range error for %q: %v", s, err)
		}
	}
}

func TestParseInt64Invalid(t *testing.T) {
	for _, s := range []string{"", "-", "1a", "--1"} {
		if _, err := ParseInt64(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}

func TestFormat(t *testing.T) {
	var buf Buffer
	for n, want := range map[int64]string{
		0:             "0",
		-1:            "-1",
		12345:         "12345",
		math.MinInt64: "-9223372036854775808",
		math.MaxInt64: "9223372036854775807",
	} {
		if got := buf.Format(n); string(got) != want {
			t.Errorf("Invalid format %d: %s", n, got)
		}
		if got := AppendInt([]byte("x"), n); string(got) != "x"+want {
			t.Errorf("Invalid append %d: %s", n, got)
		}
	}
}

func TestScanDigits(t *testing.T) {
	s := []byte("-1234,")
	if end := ScanDigits(s, 1); end != 5 {
		t.Errorf("Invalid end %d", end)
	}
	if end := ScanDigits(s, 5); end != 5 {
		t.Errorf("Invalid end %d", end)
	}
}
