package signer

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PrivateKeyEnv holds the base64-encoded ed25519 private key, or a path to a
// file containing it.
const PrivateKeyEnv = "DRYDOCK_PRIVATE_KEY"

// signatureFileMode is used for written signature files.
const signatureFileMode os.FileMode = 0o644

var (
	// ErrNoPrivateKey is returned when the environment carries no key.
	ErrNoPrivateKey = errors.New("no private key found, set " + PrivateKeyEnv)
	// errBadKeyLength is returned for keys of the wrong size.
	errBadKeyLength = errors.New("private key must be a 64-byte ed25519 key")
)

// SignedArtifact is the result of signing one artifact. It is reported to
// the user and never persisted beyond the signature file itself.
type SignedArtifact struct {
	// ArtifactPath is the signed artifact.
	ArtifactPath string
	// SignaturePath is the signature file written next to the artifact.
	SignaturePath string
	// Signature is the raw signature bytes.
	Signature []byte
}

// Signer signs one artifact at a time.
type Signer interface {
	// Sign signs the artifact at path and writes the signature alongside it.
	Sign(ctx context.Context, path string) (*SignedArtifact, error)
}

// EnvSigner signs with the ed25519 private key taken from the environment.
type EnvSigner struct{}

// Sign implements Signer.
func (EnvSigner) Sign(_ context.Context, path string) (*SignedArtifact, error) {
	key, err := privateKeyFromEnv()
	if err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	signature := ed25519.Sign(key, contents)
	signaturePath := path + ".sig"
	encoded := base64.StdEncoding.EncodeToString(signature)

	if err := os.WriteFile(signaturePath, []byte(encoded), signatureFileMode); err != nil {
		return nil, fmt.Errorf("write signature: %w", err)
	}

	return &SignedArtifact{
		ArtifactPath:  path,
		SignaturePath: signaturePath,
		Signature:     signature,
	}, nil
}

// privateKeyFromEnv loads the signing key: the variable value is either the
// base64 key itself or a path to a file holding it.
func privateKeyFromEnv() (ed25519.PrivateKey, error) {
	value := os.Getenv(PrivateKeyEnv)
	if value == "" {
		return nil, ErrNoPrivateKey
	}

	if info, err := os.Stat(value); err == nil && !info.IsDir() {
		contents, err := os.ReadFile(filepath.Clean(value))
		if err != nil {
			return nil, fmt.Errorf("read private key file: %w", err)
		}

		value = string(contents)
	}

	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}

	if len(raw) != ed25519.PrivateKeySize {
		return nil, errBadKeyLength
	}

	return ed25519.PrivateKey(raw), nil
}
