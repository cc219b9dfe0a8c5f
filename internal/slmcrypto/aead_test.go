package slmcrypto

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("hello seclume, this is a secret message!")
	key, err := RandomBytes(KeySize)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	nonce, err := RandomNonce()
	if err != nil {
		t.Fatalf("generate nonce: %v", err)
	}

	ct, tag, err := Encrypt(key, nonce, plaintext, nil)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if len(ct) != len(plaintext) {
		t.Errorf("ciphertext length: got %d, want %d", len(ct), len(plaintext))
	}
	if len(tag) != TagSize {
		t.Errorf("tag size: got %d, want %d", len(tag), TagSize)
	}

	pt, err := Decrypt(key, nonce, ct, tag, nil)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Error("decrypted text does not match original")
	}
}

func TestDecryptTamperedCiphertextFails(t *testing.T) {
	key, _ := RandomBytes(KeySize)
	nonce, _ := RandomNonce()
	ct, tag, err := Encrypt(key, nonce, []byte("payload"), nil)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	tampered := append([]byte{}, ct...)
	tampered[0] ^= 0x01

	if _, err := Decrypt(key, nonce, tampered, tag, nil); err == nil {
		t.Fatal("expected authentication failure on tampered ciphertext")
	}
}

func TestDecryptWrongKeyFails(t *testing.T) {
	key, _ := RandomBytes(KeySize)
	other, _ := RandomBytes(KeySize)
	nonce, _ := RandomNonce()
	ct, tag, err := Encrypt(key, nonce, []byte("payload"), nil)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := Decrypt(other, nonce, ct, tag, nil); err == nil {
		t.Fatal("expected authentication failure with wrong key")
	}
}

func TestEncryptRejectsWrongKeySize(t *testing.T) {
	nonce, _ := RandomNonce()
	if _, _, err := Encrypt(make([]byte, 16), nonce, []byte("x"), nil); err == nil {
		t.Fatal("expected error for short key")
	}
}
