package slmcrypto

import "testing"

func TestDeriveKeyDomainSeparation(t *testing.T) {
	password := []byte("Correct_Horse1!")
	salt := []byte("0123456789abcdef")

	fileKey := DeriveKey(password, salt, "file encryption", KeySize)
	metaKey := DeriveKey(password, salt, "metadata encryption", KeySize)

	if len(fileKey) != KeySize || len(metaKey) != KeySize {
		t.Fatalf("unexpected key length: %d / %d", len(fileKey), len(metaKey))
	}
	if ConstantTimeEqual(fileKey, metaKey) {
		t.Fatal("file-key and meta-key must differ under different info strings")
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	password := []byte("pw")
	salt := []byte("saltsaltsaltsalt")

	a := DeriveKey(password, salt, "file encryption", KeySize)
	b := DeriveKey(password, salt, "file encryption", KeySize)
	if !ConstantTimeEqual(a, b) {
		t.Fatal("derivation must be deterministic for fixed inputs")
	}
}

func TestDeriveKeyPasswordSensitivity(t *testing.T) {
	salt := []byte("saltsaltsaltsalt")
	a := DeriveKey([]byte("Pw#Aaaa1!"), salt, "file encryption", KeySize)
	b := DeriveKey([]byte("Pw#Aaaa2!"), salt, "file encryption", KeySize)
	if ConstantTimeEqual(a, b) {
		t.Fatal("different passwords must not derive the same key")
	}
}
