package cipher

import (
	"regexp"
	"testing"
)

var fingerprintPattern = regexp.MustCompile(`^\d{3}-[0-9a-f]{8}$`)

func TestFingerprint(t *testing.T) {
	keys := []string{"2e1Ca", "", "a", "0123456789abcdef", "ключ"}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			got := Fingerprint(key)
			if !fingerprintPattern.MatchString(got) {
				t.Errorf("Fingerprint(%q) = %q, does not match %s", key, got, fingerprintPattern)
			}
			if again := Fingerprint(key); again != got {
				t.Errorf("Fingerprint(%q) not deterministic: %q then %q", key, got, again)
			}
		})
	}
}

func TestFingerprintDistinguishesKeys(t *testing.T) {
	if Fingerprint("2e1Ca") == Fingerprint("2e1Cb") {
		t.Error("Fingerprint() returned the same value for different keys")
	}
}
