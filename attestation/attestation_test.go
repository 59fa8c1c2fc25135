package attestation

import (
	"crypto/ed25519"
	"testing"
)

func TestEd25519SignVerifyRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	s := Signable{CorrelationID: "run-1", Chromosome: []float64{1, 2, 3}, Fitness: 6}

	sig, err := Ed25519Sign(priv, s)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Ed25519Verify(pub, s, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestEd25519VerifyRejectsTamperedResult(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(nil)
	s := Signable{CorrelationID: "run-1", Chromosome: []float64{1, 2, 3}, Fitness: 6}
	sig, _ := Ed25519Sign(priv, s)

	tampered := s
	tampered.Fitness = 9999
	if err := Ed25519Verify(pub, tampered, sig); err != ErrAuth {
		t.Fatalf("err = %v, want ErrAuth", err)
	}
}

func TestHMACSignVerifyRoundTrip(t *testing.T) {
	key := []byte("shared-secret")
	s := Signable{CorrelationID: "run-2", Chromosome: []float64{4, 5}, Fitness: 9}

	mac, err := HMACSign(key, s)
	if err != nil {
		t.Fatalf("HMACSign: %v", err)
	}
	if err := HMACVerify(key, s, mac); err != nil {
		t.Fatalf("HMACVerify: %v", err)
	}
	if err := HMACVerify([]byte("wrong-key"), s, mac); err != ErrAuth {
		t.Fatalf("err = %v, want ErrAuth", err)
	}
}
