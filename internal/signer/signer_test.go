package signer

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) (ed25519.PublicKey, string) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	return pub, base64.StdEncoding.EncodeToString(priv)
}

func writeArtifact(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte("artifact payload"), 0o644))

	return path
}

// TestSignWritesVerifiableSignature signs an artifact and verifies the
// signature file next to it.
func TestSignWritesVerifiableSignature(t *testing.T) {
	pub, encoded := generateKey(t)
	t.Setenv(PrivateKeyEnv, encoded)

	artifact := writeArtifact(t)

	signed, err := EnvSigner{}.Sign(context.Background(), artifact)
	require.NoError(t, err)
	require.Equal(t, artifact, signed.ArtifactPath)
	require.Equal(t, artifact+".sig", signed.SignaturePath)

	stored, err := os.ReadFile(signed.SignaturePath)
	require.NoError(t, err)

	signature, err := base64.StdEncoding.DecodeString(string(stored))
	require.NoError(t, err)
	require.Equal(t, signed.Signature, signature)

	contents, err := os.ReadFile(artifact)
	require.NoError(t, err)
	require.True(t, ed25519.Verify(pub, contents, signature))
}

// TestSignKeyFromFile accepts a key-file path in the environment variable.
func TestSignKeyFromFile(t *testing.T) {
	_, encoded := generateKey(t)
	keyPath := filepath.Join(t.TempDir(), "signing.key")
	require.NoError(t, os.WriteFile(keyPath, []byte(encoded), 0o600))
	t.Setenv(PrivateKeyEnv, keyPath)

	_, err := EnvSigner{}.Sign(context.Background(), writeArtifact(t))
	require.NoError(t, err)
}

// TestSignMissingKey fails when the environment has no key.
func TestSignMissingKey(t *testing.T) {
	t.Setenv(PrivateKeyEnv, "")

	_, err := EnvSigner{}.Sign(context.Background(), writeArtifact(t))
	require.ErrorIs(t, err, ErrNoPrivateKey)
}

// TestSignBadKey fails for undecodable or short keys.
func TestSignBadKey(t *testing.T) {
	t.Setenv(PrivateKeyEnv, "not-base64!!")

	_, err := EnvSigner{}.Sign(context.Background(), writeArtifact(t))
	require.Error(t, err)

	t.Setenv(PrivateKeyEnv, base64.StdEncoding.EncodeToString([]byte("short")))

	_, err = EnvSigner{}.Sign(context.Background(), writeArtifact(t))
	require.Error(t, err)
}

// TestSignMissingArtifact fails when the artifact does not exist.
func TestSignMissingArtifact(t *testing.T) {
	_, encoded := generateKey(t)
	t.Setenv(PrivateKeyEnv, encoded)

	_, err := EnvSigner{}.Sign(context.Background(), filepath.Join(t.TempDir(), "missing.tar.gz"))
	require.Error(t, err)
}
