package cache

import "testing"

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("func main() {", "go")
	b := Fingerprint("func main() {", "go")
	if a != b {
		t.Errorf("Fingerprint not deterministic: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("len(Fingerprint(...)) = %d, want 16 hex digits", len(a))
	}
}

func TestFingerprintDistinguishesParts(t *testing.T) {
	if Fingerprint("func main() {", "go") == Fingerprint("func main() {", "rust") {
		t.Errorf("different language ids produced the same fingerprint")
	}
	// Length framing: shifting bytes across part boundaries must change the key.
	if Fingerprint("ab", "c") == Fingerprint("a", "bc") {
		t.Errorf("part boundaries not framed into the hash")
	}
}

func TestFingerprintEmpty(t *testing.T) {
	if Fingerprint() == Fingerprint("") {
		t.Errorf("no parts and one empty part produced the same fingerprint")
	}
}
