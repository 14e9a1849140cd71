package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// KeyManager holds the signing key and verification material for an
// instance. Keys are either ephemeral (in-memory, tokens die with the
// process) or persisted as a PKCS8 PEM file so sessions survive restarts.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet
}

// KeyManagerOptions configures key loading.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) validated on every token.
	Issuer string

	// KeyFile is an optional path to a PKCS8 PEM Ed25519 key. When set, the
	// key is loaded from the file, or generated and saved on first run. When
	// empty the key is ephemeral.
	KeyFile string
}

// NewKeyManager wires a signer, keyset, and verifier together.
func NewKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	var key ed25519.PrivateKey
	var err error
	if opts.KeyFile != "" {
		key, err = loadOrGenerateKeyFile(opts.KeyFile)
	} else {
		_, key, err = ed25519.GenerateKey(rand.Reader)
	}
	if err != nil {
		return nil, fmt.Errorf("jwtx: key setup: %w", err)
	}

	// Derive the kid from the public key so every process loading the same
	// key file agrees on it.
	kid := deriveKID(key.Public().(ed25519.PublicKey))

	signer, err := NewEdDSASigner(kid, key)
	if err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	keyset.AddSigner(signer)

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer),
		KeySet:   keyset,
	}, nil
}

func deriveKID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:8])
}

func loadOrGenerateKeyFile(path string) (ed25519.PrivateKey, error) {
	path = filepath.Clean(path)

	if raw, err := os.ReadFile(path); err == nil {
		block, _ := pem.Decode(raw)
		if block == nil || block.Type != "PRIVATE KEY" {
			return nil, fmt.Errorf("jwtx: %s is not a PKCS8 PEM key", path)
		}
		priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
		}
		key, ok := priv.(ed25519.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("jwtx: %s is not an Ed25519 key", path)
		}
		return key, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	out := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	if err := os.WriteFile(path, out, 0600); err != nil {
		return nil, err
	}

	return key, nil
}
