package natcmp

import "testing"

func TestParsePolicies(t *testing.T) {
	ns, err := ParseNumberStringPolicy("stringFirst")
	if err != nil || ns != StringFirst {
		t.Fatalf("ParseNumberStringPolicy(stringFirst) = %v, %v", ns, err)
	}
	cn, err := ParseChineseNumberPolicy("last")
	if err != nil || cn != ChineseLast {
		t.Fatalf("ParseChineseNumberPolicy(last) = %v, %v", cn, err)
	}
	if _, err := ParseNumberStringPolicy("numbersFirst"); err == nil {
		t.Error("expected error for unknown number/string policy")
	}
	if _, err := ParseChineseNumberPolicy("chinese"); err == nil {
		t.Error("expected error for unknown chinese number policy")
	}
}

func TestPolicyStringRoundTrip(t *testing.T) {
	for _, p := range []NumberStringPolicy{NumberFirst, StringFirst} {
		got, err := ParseNumberStringPolicy(p.String())
		if err != nil || got != p {
			t.Errorf("round trip %v: got %v, %v", p, got, err)
		}
	}
	for _, p := range []ChineseNumberPolicy{Mixed, ChineseFirst, ChineseLast} {
		got, err := ParseChineseNumberPolicy(p.String())
		if err != nil || got != p {
			t.Errorf("round trip %v: got %v, %v", p, got, err)
		}
	}
}

func TestParseOptions(t *testing.T) {
	base := Options{NumberString: StringFirst, ChineseNumber: ChineseFirst}

	opts, err := ParseOptions(base, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != base {
		t.Errorf("empty names should keep base, got %+v", opts)
	}

	opts, err = ParseOptions(base, "numberFirst", "mixed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != (Options{}) {
		t.Errorf("expected defaults, got %+v", opts)
	}

	if _, err := ParseOptions(base, "bogus", ""); err == nil {
		t.Error("expected error for bogus policy")
	}
}
