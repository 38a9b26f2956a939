package pkginfo

import "testing"

func TestClassifyKnown(t *testing.T) {
	for _, p := range Publics() {
		n := Classify(p.Int64())
		if n.Public != p {
			t.Errorf("Classify(%d).Public = %v, want %v", p.Int64(), n.Public, p)
		}
		if !n.Known() {
			t.Errorf("Classify(%d) not known", p.Int64())
		}
		if n.Raw != p.Int64() {
			t.Errorf("Classify(%d).Raw = %d", p.Int64(), n.Raw)
		}
	}
}

func TestClassifyUnknownKeepsRaw(t *testing.T) {
	for _, raw := range []int64{-1, 0, 9999, 1001} {
		n := Classify(raw)
		if n.Known() {
			t.Errorf("Classify(%d) unexpectedly known as %v", raw, n.Public)
		}
		if n.Raw != raw {
			t.Errorf("Classify(%d).Raw = %d", raw, n.Raw)
		}
	}
}

func TestPublicNumbers(t *testing.T) {
	tests := []struct {
		p    Public
		want int64
		name string
	}{
		{PublicBase, 1000, "base"},
		{PublicQspX86, 2096, "qsp-x86"},
		{PublicQspClearLinux, 4094, "qsp-clear-linux"},
		{PublicQspIsim, 8144, "qsp-isim"},
		{PublicUnknown, NumberUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.p.Int64(); got != tt.want {
			t.Errorf("%v.Int64() = %d, want %d", tt.p, got, tt.want)
		}
		if got := tt.p.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestParsePublic(t *testing.T) {
	tests := []struct {
		in      string
		want    Public
		wantErr bool
	}{
		{"base", PublicBase, false},
		{"QSP-X86", PublicQspX86, false},
		{"qsp_clear_linux", PublicQspClearLinux, false},
		{" viewer ", PublicViewer, false},
		{"unknown", PublicUnknown, true},
		{"nope", PublicUnknown, true},
	}

	for _, tt := range tests {
		got, err := ParsePublic(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePublic(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePublic(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNumberArg(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1000", 1000, false},
		{"9999", 9999, false},
		{"-1", -1, false},
		{"qsp-x86", 2096, false},
		{"training", 6010, false},
		{"not-a-package", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseNumberArg(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNumberArg(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNumberArg(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNumberString(t *testing.T) {
	if got := Classify(1000).String(); got != "1000 (base)" {
		t.Errorf("String() = %q", got)
	}
	if got := Classify(42).String(); got != "42" {
		t.Errorf("String() = %q", got)
	}
}
