// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quadratic

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	registrarReservedBytes = 128
	publicKeyLength        = 32
)

// RegistrarAccountSize is the allocated size of a registrar account,
// including the discriminator.
const RegistrarAccountSize = 8 + 3*publicKeyLength + 3*8 + 1 + publicKeyLength + registrarReservedBytes

var (
	ErrInvalidDiscriminator = errors.New("invalid discriminator")
	ErrWrongOwner           = errors.New("account is not owned by the plugin program")
)

var registrarDiscriminator = sighash("account", "Registrar")

// Registrar is the decoded configuration account of a realm.
type Registrar struct {
	GovernanceProgramID solana.PublicKey `json:"governanceProgramId" yaml:"governanceProgramId"`
	Realm               solana.PublicKey `json:"realm" yaml:"realm"`
	GoverningTokenMint  solana.PublicKey `json:"governingTokenMint" yaml:"governingTokenMint"`
	Coefficients        Coefficients     `json:"coefficients" yaml:"coefficients"`
	// PreviousVoterWeightPluginProgramID is set when the registrar was created
	// or configured with a predecessor.
	PreviousVoterWeightPluginProgramID *solana.PublicKey `json:"previousVoterWeightPluginProgramId,omitempty" yaml:"previousVoterWeightPluginProgramId,omitempty"`
}

// HasPredecessor reports whether the registrar chains a previous plugin.
func (r *Registrar) HasPredecessor() bool {
	return r.PreviousVoterWeightPluginProgramID != nil
}

func (r Registrar) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteBytes(registrarDiscriminator[:], false); err != nil {
		return err
	}
	for _, key := range []solana.PublicKey{r.GovernanceProgramID, r.Realm, r.GoverningTokenMint} {
		if err := encoder.WriteBytes(key.Bytes(), false); err != nil {
			return err
		}
	}
	if err := r.Coefficients.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	if err := encoder.WriteBool(r.PreviousVoterWeightPluginProgramID != nil); err != nil {
		return err
	}
	// the account is allocated for Some, so None leaves the key slot zeroed
	padding := registrarReservedBytes + publicKeyLength
	if r.PreviousVoterWeightPluginProgramID != nil {
		if err := encoder.WriteBytes(r.PreviousVoterWeightPluginProgramID.Bytes(), false); err != nil {
			return err
		}
		padding = registrarReservedBytes
	}
	return encoder.WriteBytes(make([]byte, padding), false)
}

func (r *Registrar) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	discriminator, err := decoder.ReadNBytes(8)
	if err != nil {
		return err
	}
	if !bytes.Equal(discriminator, registrarDiscriminator[:]) {
		return fmt.Errorf("%w: expected %x, got %x", ErrInvalidDiscriminator, registrarDiscriminator, discriminator)
	}
	for _, dst := range []*solana.PublicKey{&r.GovernanceProgramID, &r.Realm, &r.GoverningTokenMint} {
		if *dst, err = readPublicKey(decoder); err != nil {
			return err
		}
	}
	if err := r.Coefficients.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	hasPrevious, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if hasPrevious {
		previous, err := readPublicKey(decoder)
		if err != nil {
			return err
		}
		r.PreviousVoterWeightPluginProgramID = &previous
	}
	return nil
}

func readPublicKey(decoder *bin.Decoder) (solana.PublicKey, error) {
	raw, err := decoder.ReadNBytes(publicKeyLength)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(raw), nil
}

// DecodeRegistrar parses raw account data.
func DecodeRegistrar(data []byte) (*Registrar, error) {
	var r Registrar
	if err := r.UnmarshalWithDecoder(bin.NewBorshDecoder(data)); err != nil {
		return nil, fmt.Errorf("failed to decode registrar: %w", err)
	}
	return &r, nil
}

// EncodeRegistrar produces account data in the layout DecodeRegistrar reads,
// always RegistrarAccountSize bytes long.
func EncodeRegistrar(r Registrar) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := r.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		return nil, fmt.Errorf("failed to encode registrar: %w", err)
	}
	return buf.Bytes(), nil
}
