// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quadratic

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/Deadghoost/governance-ui/sdk/realm"
)

var ErrMissingPayer = errors.New("payer is required")

// InstructionKind enumerates the registrar instructions of the plugin program.
type InstructionKind uint8

const (
	CreateRegistrar InstructionKind = iota
	ConfigureRegistrar
)

// String returns the program's camelCase method name.
func (k InstructionKind) String() string {
	switch k {
	case CreateRegistrar:
		return "createRegistrar"
	case ConfigureRegistrar:
		return "configureRegistrar"
	default:
		return fmt.Sprintf("InstructionKind(%d)", uint8(k))
	}
}

func (k InstructionKind) snakeName() string {
	switch k {
	case CreateRegistrar:
		return "create_registrar"
	case ConfigureRegistrar:
		return "configure_registrar"
	default:
		return ""
	}
}

// Discriminator is the 8-byte Anchor sighash prefix of the instruction data.
func (k InstructionKind) Discriminator() [8]byte {
	return sighash("global", k.snakeName())
}

func sighash(namespace, name string) [8]byte {
	var out [8]byte
	sum := sha256.Sum256([]byte(namespace + ":" + name))
	copy(out[:], sum[:8])
	return out
}

// RegistrarArgs is the argument payload shared by both registrar instructions.
type RegistrarArgs struct {
	Coefficients                 Coefficients `json:"coefficients" yaml:"coefficients"`
	UsePreviousVoterWeightPlugin bool         `json:"usePreviousVoterWeightPlugin" yaml:"usePreviousVoterWeightPlugin"`
}

func (args RegistrarArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := args.Coefficients.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	return encoder.WriteBool(args.UsePreviousVoterWeightPlugin)
}

func (args *RegistrarArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = args.Coefficients.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	args.UsePreviousVoterWeightPlugin, err = decoder.ReadBool()
	return err
}

// CreateRegistrarAccounts lists the fixed accounts of createRegistrar.
type CreateRegistrarAccounts struct {
	Registrar           solana.PublicKey
	Realm               solana.PublicKey
	GovernanceProgramID solana.PublicKey
	RealmAuthority      solana.PublicKey
	GoverningTokenMint  solana.PublicKey
	Payer               solana.PublicKey
	SystemProgram       solana.PublicKey
}

func (a CreateRegistrarAccounts) metas() solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(a.Registrar, true, false),
		solana.NewAccountMeta(a.Realm, false, false),
		solana.NewAccountMeta(a.GovernanceProgramID, false, false),
		solana.NewAccountMeta(a.RealmAuthority, false, true),
		solana.NewAccountMeta(a.GoverningTokenMint, false, false),
		solana.NewAccountMeta(a.Payer, true, true),
		solana.NewAccountMeta(a.SystemProgram, false, false),
	}
}

// ConfigureRegistrarAccounts lists the fixed accounts of configureRegistrar.
type ConfigureRegistrarAccounts struct {
	Registrar      solana.PublicKey
	Realm          solana.PublicKey
	RealmAuthority solana.PublicKey
}

func (a ConfigureRegistrarAccounts) metas() solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(a.Registrar, true, false),
		solana.NewAccountMeta(a.Realm, false, false),
		solana.NewAccountMeta(a.RealmAuthority, false, true),
	}
}

// Instruction is an unsigned registrar instruction. It satisfies
// solana.Instruction.
type Instruction struct {
	Kind        InstructionKind
	Args        RegistrarArgs
	Predecessor Predecessor

	programID solana.PublicKey
	accounts  solana.AccountMetaSlice
}

var _ solana.Instruction = (*Instruction)(nil)

func newInstruction(
	programID solana.PublicKey,
	kind InstructionKind,
	fixed solana.AccountMetaSlice,
	coefficients *Coefficients,
	predecessor Predecessor,
) *Instruction {
	accounts := append(fixed, predecessor.remainingAccounts()...)
	return &Instruction{
		Kind: kind,
		Args: RegistrarArgs{
			Coefficients:                 coefficients.OrDefault(),
			UsePreviousVoterWeightPlugin: predecessor.usePreviousPlugin(),
		},
		Predecessor: predecessor,
		programID:   programID,
		accounts:    accounts,
	}
}

func (ix *Instruction) ProgramID() solana.PublicKey {
	return ix.programID
}

func (ix *Instruction) Accounts() []*solana.AccountMeta {
	return ix.accounts
}

// Data returns the discriminator followed by the Borsh-encoded arguments.
func (ix *Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	discriminator := ix.Kind.Discriminator()
	buf.Write(discriminator[:])
	if err := ix.Args.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		return nil, fmt.Errorf("failed to encode %s arguments: %w", ix.Kind, err)
	}
	return buf.Bytes(), nil
}

// DecodeInstructionData parses data produced by Instruction.Data.
func DecodeInstructionData(data []byte) (InstructionKind, RegistrarArgs, error) {
	if len(data) < 8 {
		return 0, RegistrarArgs{}, fmt.Errorf("instruction data too short: %d bytes", len(data))
	}
	var kind InstructionKind
	switch {
	case bytes.Equal(data[:8], discriminatorSlice(CreateRegistrar)):
		kind = CreateRegistrar
	case bytes.Equal(data[:8], discriminatorSlice(ConfigureRegistrar)):
		kind = ConfigureRegistrar
	default:
		return 0, RegistrarArgs{}, ErrInvalidDiscriminator
	}
	var args RegistrarArgs
	if err := args.UnmarshalWithDecoder(bin.NewBorshDecoder(data[8:])); err != nil {
		return 0, RegistrarArgs{}, fmt.Errorf("failed to decode %s arguments: %w", kind, err)
	}
	return kind, args, nil
}

func discriminatorSlice(k InstructionKind) []byte {
	d := k.Discriminator()
	return d[:]
}

// CreateRegistrarInstruction builds the instruction that allocates and
// initializes the registrar of r. Nil coefficients select
// DefaultCoefficients. The realm authority and the payer must co-sign the
// transaction that carries it.
func (c *Client) CreateRegistrarInstruction(
	r realm.Realm,
	payer solana.PublicKey,
	coefficients *Coefficients,
	predecessor Predecessor,
) (*Instruction, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if payer.IsZero() {
		return nil, ErrMissingPayer
	}
	pda, err := c.locator.RegistrarPDA(r.Address, r.CommunityMint)
	if err != nil {
		return nil, err
	}
	accounts := CreateRegistrarAccounts{
		Registrar:           pda.Address,
		Realm:               r.Address,
		GovernanceProgramID: r.Owner,
		RealmAuthority:      r.Authority,
		GoverningTokenMint:  r.CommunityMint,
		Payer:               payer,
		SystemProgram:       solana.SystemProgramID,
	}
	ix := newInstruction(c.programID, CreateRegistrar, accounts.metas(), coefficients, predecessor)
	c.log.Debug("built registrar instruction",
		"kind", ix.Kind.String(),
		"realm", r.Address.String(),
		"registrar", pda.Address.String(),
		"predecessor", predecessor.String(),
	)
	return ix, nil
}

// ConfigureRegistrarInstruction builds the instruction that rewrites the
// coefficients and predecessor of an existing registrar. The full triple is
// always sent, so nil coefficients reset the registrar to
// DefaultCoefficients.
func (c *Client) ConfigureRegistrarInstruction(
	r realm.Realm,
	coefficients *Coefficients,
	predecessor Predecessor,
) (*Instruction, error) {
	if err := r.ValidateForLookup(); err != nil {
		return nil, err
	}
	if r.Authority.IsZero() {
		return nil, realm.ErrMissingAuthority
	}
	pda, err := c.locator.RegistrarPDA(r.Address, r.CommunityMint)
	if err != nil {
		return nil, err
	}
	accounts := ConfigureRegistrarAccounts{
		Registrar:      pda.Address,
		Realm:          r.Address,
		RealmAuthority: r.Authority,
	}
	ix := newInstruction(c.programID, ConfigureRegistrar, accounts.metas(), coefficients, predecessor)
	c.log.Debug("built registrar instruction",
		"kind", ix.Kind.String(),
		"realm", r.Address.String(),
		"registrar", pda.Address.String(),
		"predecessor", predecessor.String(),
	)
	return ix, nil
}

// AccountNames labels Accounts() position by position.
func (ix *Instruction) AccountNames() []string {
	var names []string
	switch ix.Kind {
	case CreateRegistrar:
		names = []string{"registrar", "realm", "governanceProgramId", "realmAuthority", "governingTokenMint", "payer", "systemProgram"}
	case ConfigureRegistrar:
		names = []string{"registrar", "realm", "realmAuthority"}
	}
	if ix.Predecessor.IsSet() {
		names = append(names, "predecessor")
	}
	return names
}

// Registrar returns the registrar account the instruction writes.
func (ix *Instruction) Registrar() solana.PublicKey {
	return ix.accounts[0].PublicKey
}
