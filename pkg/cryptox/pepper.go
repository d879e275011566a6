package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
)

// defaultPepperFile is used when SetPepperPath was never called, so the
// zero value resolves to a usable file instead of an unreadable path.
const defaultPepperFile = "pepper"

var (
	// Pepper is loaded from a file or generated on first use.
	pepper     string
	pepperFile string
)

// SetPepperPath configures where the password pepper is persisted. Must be
// called before the first HashPassword/VerifyPassword call.
func SetPepperPath(file string) {
	pepperFile = file
}

// GetPepper returns the process-wide password pepper, loading or generating
// it on first use. A missing pepper is unrecoverable since every stored hash
// depends on it, so failures exit the process.
func GetPepper() string {
	if pepper != "" {
		return pepper
	}

	var err error
	pepper, err = loadOrGeneratePepper()
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}

	return pepper
}

// loadOrGeneratePepper loads the pepper from disk, generating and persisting
// a fresh one when the file does not exist yet.
func loadOrGeneratePepper() (string, error) {
	if pepperFile == "" {
		pepperFile = defaultPepperFile
	}
	pepperFile = filepath.Clean(pepperFile)
	pepperDir := filepath.Dir(pepperFile)
	if err := os.MkdirAll(pepperDir, 0750); err != nil {
		return "", err
	}

	data, err := os.ReadFile(pepperFile)
	if err == nil && len(data) > 0 {
		return string(data), nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	generated := base64.RawStdEncoding.EncodeToString(raw)

	if err := os.WriteFile(pepperFile, []byte(generated), 0600); err != nil {
		return "", err
	}

	return generated, nil
}
