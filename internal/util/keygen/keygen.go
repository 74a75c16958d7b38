// Package keygen generates the SSH key pair injected into provisioned
// instances: PEM-encoded private key, OpenSSH authorized_keys public key.
package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
)

// KeyPair holds an RSA key pair in ready-to-use formats.
type KeyPair struct {
	// PrivateKey is the RSA private key in PEM-encoded PKCS#1 format.
	PrivateKey []byte
	// PublicKey is the public key in OpenSSH authorized_keys format.
	PublicKey []byte
}

// Generate creates a new RSA key pair with the specified bit size. Common
// bit sizes are 2048 (minimum recommended) and 4096 (high security).
func Generate(bits int) (*KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA private key: %w", err)
	}
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate RSA private key: %w", err)
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	sshPublic, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive SSH public key: %w", err)
	}

	return &KeyPair{
		PrivateKey: privatePEM,
		PublicKey:  ssh.MarshalAuthorizedKey(sshPublic),
	}, nil
}

// Write persists the pair as <dir>/<name> and <dir>/<name>.pub with SSH
// conventional permissions. It refuses to overwrite an existing key.
func (k *KeyPair) Write(dir, name string) (privatePath, publicPath string, err error) {
	privatePath = filepath.Join(dir, name)
	publicPath = privatePath + ".pub"

	for _, p := range []string{privatePath, publicPath} {
		if _, err := os.Stat(p); err == nil {
			return "", "", fmt.Errorf("refusing to overwrite existing key %s", p)
		}
	}

	if err := os.WriteFile(privatePath, k.PrivateKey, 0o600); err != nil {
		return "", "", fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(publicPath, k.PublicKey, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write public key: %w", err)
	}
	return privatePath, publicPath, nil
}
