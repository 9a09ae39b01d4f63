package hmacauth

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Secret is an opaque binary HMAC secret. In YAML it is represented as
// standard base64 so that arbitrary byte content, including embedded zero
// bytes, survives the round trip.
type Secret []byte

// UnmarshalYAML decodes a base64 scalar into raw secret bytes.
func (s *Secret) UnmarshalYAML(node *yaml.Node) error {
	var encoded string
	if err := node.Decode(&encoded); err != nil {
		return err
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("hmacauth: secret is not valid base64: %w", err)
	}

	*s = raw

	return nil
}

// MarshalYAML encodes the secret bytes as base64.
func (s Secret) MarshalYAML() (any, error) {
	return base64.StdEncoding.EncodeToString(s), nil
}

// Keyset maps API keys to their shared secrets.
type Keyset map[string]Secret

// keysetFile is the on-disk layout read by LoadKeyset.
type keysetFile struct {
	Keys Keyset `yaml:"keys"`
}

// LoadKeyset reads a YAML keyset file of the form:
//
//	keys:
//	  <api-key>: <base64 secret>
//	  <api-key>: <base64 secret>
func LoadKeyset(path string) (Keyset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file keysetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return file.Keys, nil
}

// Locator returns a KeyLocator backed by the keyset.
func (k Keyset) Locator() KeyLocator {
	return func(apiKey string) []byte {
		secret, ok := k[apiKey]
		if !ok {
			return nil
		}

		return secret
	}
}

// GenerateAPIKey returns a new random API key (a UUIDv4 string).
func GenerateAPIKey() string {
	return uuid.NewString()
}
