package text

import "testing"

func TestSpeakInt(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{5, "five"},
		{13, "thirteen"},
		{19, "nineteen"},
		{20, "twenty"},
		{21, "twenty one"},
		{40, "forty"},
		{99, "ninety nine"},
		{100, "one hundred"},
		{101, "one hundred one"},
		{115, "one hundred fifteen"},
		{342, "three hundred forty two"},
		{1000, "one thousand"},
		{1500, "one thousand five hundred"},
		{10000, "ten thousand"},
		{1000000, "one million"},
		{2500000, "two million five hundred thousand"},
		{1000000000, "one billion"},
	}

	for _, tt := range tests {
		got, ok := SpeakInt(tt.n)
		if !ok {
			t.Errorf("SpeakInt(%d) not ok", tt.n)
			continue
		}
		if got != tt.want {
			t.Errorf("SpeakInt(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpeakIntOutOfRange(t *testing.T) {
	if _, ok := SpeakInt(1_000_000_000_000); ok {
		t.Error("SpeakInt(10^12) should not be ok")
	}
	if _, ok := SpeakInt(-1); ok {
		t.Error("SpeakInt(-1) should not be ok")
	}
}

func TestSpeakYear(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1995, "nineteen ninety five"},
		{2000, "two thousand"},
		{2005, "two thousand five"},
		{2009, "two thousand nine"},
		{2010, "twenty ten"},
		{2024, "twenty twenty four"},
		{1800, "eighteen hundred"},
		{1066, "ten sixty six"},
		{1905, "nineteen five"},
		{15, "fifteen"},       // not a 4-digit year: cardinal reading
		{2100, "two thousand one hundred"},
	}

	for _, tt := range tests {
		got, ok := SpeakYear(tt.n)
		if !ok {
			t.Errorf("SpeakYear(%d) not ok", tt.n)
			continue
		}
		if got != tt.want {
			t.Errorf("SpeakYear(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpeakOrdinal(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, "fourth"},
		{5, "fifth"},
		{12, "twelfth"},
		{20, "twentieth"},
		{21, "twenty first"},
		{25, "twenty fifth"},
		{30, "thirtieth"},
		{42, "forty second"},
		{99, "ninety ninth"},
		{100, "hundredth"},
		{101, "one hundred first"},
		{110, "one hundred tenth"},
		{120, "one hundred twentieth"},
		{123, "one hundred twenty third"},
		{1000, "thousandth"},
		{2000, "two thousandth"},
	}

	for _, tt := range tests {
		got, ok := SpeakOrdinal(tt.n)
		if !ok {
			t.Errorf("SpeakOrdinal(%d) not ok", tt.n)
			continue
		}
		if got != tt.want {
			t.Errorf("SpeakOrdinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}

	if _, ok := SpeakOrdinal(0); ok {
		t.Error("SpeakOrdinal(0) should not be ok")
	}
}

func TestSpeakNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "zero"},
		{"42", "forty two"},
		{"3.14", "three point one four"},
		{"0.5", "zero point five"},
		{"10.05", "ten point zero five"},
		{"7.", "seven"},
	}

	for _, tt := range tests {
		got, ok := SpeakNumber(tt.in)
		if !ok {
			t.Errorf("SpeakNumber(%q) not ok", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("SpeakNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, ok := SpeakNumber("not-a-number"); ok {
		t.Error("SpeakNumber on garbage should not be ok")
	}
	if _, ok := SpeakNumber("99999999999999999999"); ok {
		t.Error("SpeakNumber on overflowing input should not be ok")
	}
}

func TestSpeakDigits(t *testing.T) {
	got, ok := SpeakDigits("5550199", true)
	if !ok {
		t.Fatal("SpeakDigits not ok")
	}
	want := "five five five oh one nine nine"
	if got != want {
		t.Errorf("SpeakDigits = %q, want %q", got, want)
	}

	got, ok = SpeakDigits("10", false)
	if !ok {
		t.Fatal("SpeakDigits not ok")
	}
	if got != "one zero" {
		t.Errorf("SpeakDigits(\"10\", false) = %q, want %q", got, "one zero")
	}

	if _, ok := SpeakDigits("12a", false); ok {
		t.Error("SpeakDigits with non-digit should not be ok")
	}
}
