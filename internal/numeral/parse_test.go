package numeral

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"零", 0},
		{"〇", 0},
		{"五", 5},
		{"十", 10},
		{"拾", 10},
		{"一十", 10},
		{"十二", 12},
		{"二十三", 23},
		{"贰拾叁", 23},
		{"一百二十三", 123},
		{"九百九十九", 999},
		{"一千", 1000},
		{"一千零一", 1001},
		{"一千零一十", 1010},
		{"三千五百", 3500},
		{"三千五百二十一", 3521},
		{"六千零七十", 6070},
		{"八千零六", 8006},
		{"九千九百九十九", 9999},
		{"九仟九佰九拾九", 9999},
		{"百十", 110},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if !ok {
			t.Errorf("Parse(%q): rejected", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		in     string
		reason string
	}{
		{"", "empty run"},
		{"百", "bare unit"},
		{"千", "bare unit"},
		{"千千", "repeated unit"},
		{"百百", "repeated unit"},
		{"千百", "units only"},
		{"佰仟", "units only"},
		{"一千百", "adjacent large units"},
		{"一千千五", "adjacent large units"},
		{"一二三", "bare digits without unit"},
		{"二三", "bare digits without unit"},
		{"零零", "bare digits without unit"},
		{"一a", "unknown rune"},
	}
	for _, tt := range tests {
		if n, ok := Parse(tt.in); ok {
			t.Errorf("Parse(%q) = %d, want rejection (%s)", tt.in, n, tt.reason)
		}
	}
}
