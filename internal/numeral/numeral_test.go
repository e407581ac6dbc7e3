package numeral

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'零', 0}, {'〇', 0},
		{'一', 1}, {'壹', 1},
		{'二', 2}, {'贰', 2},
		{'三', 3}, {'叁', 3},
		{'九', 9}, {'玖', 9},
		{'十', 10}, {'拾', 10},
		{'百', 100}, {'佰', 100},
		{'千', 1000}, {'仟', 1000},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.r)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.r)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	for _, r := range []rune{'a', '1', '万', '亿', '点', ' '} {
		if _, ok := Lookup(r); ok {
			t.Errorf("Lookup(%q): expected not found", r)
		}
		if IsNumeral(r) {
			t.Errorf("IsNumeral(%q) = true", r)
		}
	}
}

func TestIsUnit(t *testing.T) {
	if !IsUnit('拾') || !IsUnit('仟') {
		t.Error("expected ten and thousand glyphs to be units")
	}
	if IsUnit('九') || IsUnit('零') || IsUnit('x') {
		t.Error("digits and unknown runes are not units")
	}
}
