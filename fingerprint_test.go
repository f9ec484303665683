package cryptoform

import "testing"

func TestNormalizeFingerprint(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"compact lower", "aaaabbbb", "aaaabbbb"},
		{"spaced upper", "AAAA BBBB", "aaaabbbb"},
		{"mixed case", "AaAa bBbB", "aaaabbbb"},
		{"tabs and newlines", "AAAA\tBBBB\nCCCC", "aaaabbbbcccc"},
		{"leading and trailing space", "  AAAA BBBB  ", "aaaabbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFingerprint(tt.in); got != tt.want {
				t.Errorf("NormalizeFingerprint(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFingerprint_Idempotent(t *testing.T) {
	inputs := []string{"", "aaaabbbb", "AAAA BBBB", " A b\tC ", "0123 4567 89AB CDEF"}
	for _, in := range inputs {
		once := NormalizeFingerprint(in)
		twice := NormalizeFingerprint(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestVerifyFingerprint(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		local     string
		wantValid bool
	}{
		{"identical", "aaaabbbb", "aaaabbbb", true},
		{"spaced vs compact", "aaaabbbb", "AAAA BBBB", true},
		{"case only", "AAAABBBB", "aaaabbbb", true},
		{"mismatch", "aaaabbbb", "ccccdddd", false},
		{"prefix", "aaaa", "aaaabbbb", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := VerifyFingerprint(tt.remote, tt.local, tt.local)
			if v.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", v.Valid, tt.wantValid)
			}
			want := NormalizeFingerprint(tt.remote) == NormalizeFingerprint(tt.local)
			if v.Valid != want {
				t.Errorf("Valid = %v, normalize equality = %v", v.Valid, want)
			}
			if v.RemoteReported != tt.remote {
				t.Errorf("RemoteReported = %q, want %q", v.RemoteReported, tt.remote)
			}
			if v.LocalComputed != tt.local {
				t.Errorf("LocalComputed = %q, want %q", v.LocalComputed, tt.local)
			}
		})
	}
}

func TestVerdict_StaleFor(t *testing.T) {
	v := VerifyFingerprint("aaaabbbb", "AAAA BBBB", "AAAA BBBB")

	if v.StaleFor("AAAA BBBB") {
		t.Error("StaleFor(same fingerprint) = true, want false")
	}
	if v.StaleFor("aaaabbbb") {
		t.Error("StaleFor(same fingerprint, compact form) = true, want false")
	}
	if !v.StaleFor("CCCC DDDD") {
		t.Error("StaleFor(other fingerprint) = false, want true")
	}
}
