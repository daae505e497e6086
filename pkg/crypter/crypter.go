// Package crypter implements selective encryption of NALUs.
//
// Encrypted payloads are arbitrary byte sequences and can accidentally
// contain start-code-like runs; EncryptNALU therefore re-applies emulation
// prevention to the ciphertext, so that encrypted NALUs can be embedded
// into an elementary stream like any other NALU.
package crypter

import (
	"fmt"

	"github.com/bluenviron/h26x/pkg/codecs/h264"
)

// TransformFunc transforms a NALU. It must not modify the input slice.
type TransformFunc func(nalu []byte) ([]byte, error)

// Crypter encrypts and decrypts NALUs.
// The cipher is provided by the caller; any transform whose Decrypt
// reverses Encrypt can be plugged in.
type Crypter struct {
	// Encrypt transforms a plaintext NALU into ciphertext.
	Encrypt TransformFunc

	// Decrypt reverses Encrypt.
	Decrypt TransformFunc
}

// EncryptNALU encrypts a NALU and adds emulation prevention bytes
// to the resulting ciphertext.
func (c *Crypter) EncryptNALU(nalu []byte) ([]byte, error) {
	if c.Encrypt == nil {
		return nil, fmt.Errorf("encrypt transform not set")
	}

	enc, err := c.Encrypt(nalu)
	if err != nil {
		return nil, err
	}

	return h264.EmulationPreventionAdd(enc), nil
}

// DecryptNALU removes emulation prevention bytes from a NALU and
// decrypts the result.
func (c *Crypter) DecryptNALU(nalu []byte) ([]byte, error) {
	if c.Decrypt == nil {
		return nil, fmt.Errorf("decrypt transform not set")
	}

	return c.Decrypt(h264.EmulationPreventionRemove(nalu))
}
