// Package attestation signs and verifies engine.Results so a remote
// caller of rpcserver can confirm a result actually came from the
// service holding the run's signing key. It adapts the federation
// package's canonical-bytes-plus-domain-tag signing scheme; since this
// module has no protoc-generated message types to marshal
// deterministically, canonical bytes here are deterministic JSON
// instead of google.golang.org/protobuf's Deterministic marshal option.
package attestation

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrAuth = errors.New("attestation: signature verification failed")

const domainTag = "GENETIC-ENGINE-RESULTS-V1"

// Signable is a Results[C] reduced to the fields that get signed: the
// wire-encodable chromosome and its fitness. Kept separate from
// engine.Results so this package never needs to be generic over C.
type Signable struct {
	CorrelationID string    `json:"correlation_id"`
	Chromosome    []float64 `json:"chromosome"`
	Fitness       float64   `json:"fitness"`
}

// CanonicalBytes returns deterministic JSON bytes for s. encoding/json
// already serializes struct fields in declaration order, which is
// sufficient determinism for a fixed Go struct type across repeated
// calls.
func CanonicalBytes(s Signable) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("attestation: marshal: %w", err)
	}
	return b, nil
}

func addDomain(b []byte) []byte {
	out := make([]byte, 0, len(domainTag)+1+len(b))
	out = append(out, domainTag...)
	out = append(out, 0)
	out = append(out, b...)
	return out
}

// Ed25519Sign signs the canonical bytes of s with the domain tag
// prepended.
func Ed25519Sign(priv ed25519.PrivateKey, s Signable) ([]byte, error) {
	b, err := CanonicalBytes(s)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(priv, addDomain(b)), nil
}

// Ed25519Verify verifies sig against s.
func Ed25519Verify(pub ed25519.PublicKey, s Signable, sig []byte) error {
	b, err := CanonicalBytes(s)
	if err != nil {
		return err
	}
	if !ed25519.Verify(pub, addDomain(b), sig) {
		return ErrAuth
	}
	return nil
}

// HMACSign computes an HMAC-SHA256 over the canonical bytes of s.
func HMACSign(key []byte, s Signable) ([]byte, error) {
	b, err := CanonicalBytes(s)
	if err != nil {
		return nil, err
	}
	h := hmac.New(sha256.New, key)
	_, _ = h.Write(addDomain(b))
	return h.Sum(nil), nil
}

// HMACVerify verifies mac against s.
func HMACVerify(key []byte, s Signable, mac []byte) error {
	b, err := CanonicalBytes(s)
	if err != nil {
		return err
	}
	h := hmac.New(sha256.New, key)
	_, _ = h.Write(addDomain(b))
	if !hmac.Equal(mac, h.Sum(nil)) {
		return ErrAuth
	}
	return nil
}

// Keyring supplies per-service-instance keys to verification helpers,
// mirroring the federation signing package's per-cluster keyring.
type Keyring interface {
	HMACKey(serviceID string) []byte
	Ed25519Pub(serviceID string) []byte
}
