package hash

import "testing"

func TestFingerprint_Deterministic(t *testing.T) {
	parts := []string{"chocolate cake", "veg fried rice"}
	first := Fingerprint(parts)
	second := Fingerprint(parts)
	if first != second {
		t.Errorf("Fingerprint not deterministic: %q != %q", first, second)
	}
	if len(first) != FingerprintLength {
		t.Errorf("Fingerprint length = %d, want %d", len(first), FingerprintLength)
	}
}

func TestFingerprint_OrderSensitive(t *testing.T) {
	a := Fingerprint([]string{"cake", "rice"})
	b := Fingerprint([]string{"rice", "cake"})
	if a == b {
		t.Error("reordered parts produced same fingerprint")
	}
}

func TestFingerprint_BoundarySensitive(t *testing.T) {
	// "ca"+"ke" and "cak"+"e" carry the same bytes but different splits.
	a := Fingerprint([]string{"ca", "ke"})
	b := Fingerprint([]string{"cak", "e"})
	if a == b {
		t.Error("shifting text across part boundaries produced same fingerprint")
	}
}
