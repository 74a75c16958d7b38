package handlers

import (
	"fmt"

	"github.com/imamik/a1grab/internal/util/keygen"
)

// generateKeyPair generates an RSA key pair (for testing injection).
var generateKeyPair = keygen.Generate

// Keygen generates an SSH key pair and writes it into dir.
func Keygen(dir string, bits int) error {
	pair, err := generateKeyPair(bits)
	if err != nil {
		return err
	}

	privatePath, publicPath, err := pair.Write(dir, "id_rsa")
	if err != nil {
		return err
	}

	fmt.Println("SSH key pair generated:")
	fmt.Printf("  Private key: %s\n", privatePath)
	fmt.Printf("  Public key:  %s\n", publicPath)
	fmt.Println()
	fmt.Printf("Point ssh.public_key_path in your config at %s.\n", publicPath)
	return nil
}
