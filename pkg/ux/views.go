// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/Deadghoost/governance-ui/pkg/constants"
	"github.com/Deadghoost/governance-ui/sdk/quadratic"
)

type AccountView struct {
	Name     string `json:"name" yaml:"name"`
	Address  string `json:"address" yaml:"address"`
	Writable bool   `json:"writable" yaml:"writable"`
	Signer   bool   `json:"signer" yaml:"signer"`
}

// InstructionView is the printable form of a registrar instruction.
type InstructionView struct {
	Instruction                  string                 `json:"instruction" yaml:"instruction"`
	ProgramID                    string                 `json:"programId" yaml:"programId"`
	Registrar                    string                 `json:"registrar" yaml:"registrar"`
	Coefficients                 quadratic.Coefficients `json:"coefficients" yaml:"coefficients"`
	UsePreviousVoterWeightPlugin bool                   `json:"usePreviousVoterWeightPlugin" yaml:"usePreviousVoterWeightPlugin"`
	Accounts                     []AccountView          `json:"accounts" yaml:"accounts"`
	Data                         string                 `json:"data" yaml:"data"`
	RentLamports                 *uint64                `json:"rentLamports,omitempty" yaml:"rentLamports,omitempty"`
	Transaction                  string                 `json:"transaction,omitempty" yaml:"transaction,omitempty"`
}

// NewInstructionView renders ix; the instruction data is base58 encoded.
func NewInstructionView(ix *quadratic.Instruction) (InstructionView, error) {
	data, err := ix.Data()
	if err != nil {
		return InstructionView{}, err
	}
	names := ix.AccountNames()
	accounts := make([]AccountView, len(ix.Accounts()))
	for i, meta := range ix.Accounts() {
		accounts[i] = AccountView{
			Name:     names[i],
			Address:  meta.PublicKey.String(),
			Writable: meta.IsWritable,
			Signer:   meta.IsSigner,
		}
	}
	return InstructionView{
		Instruction:                  ix.Kind.String(),
		ProgramID:                    ix.ProgramID().String(),
		Registrar:                    ix.Registrar().String(),
		Coefficients:                 ix.Args.Coefficients,
		UsePreviousVoterWeightPlugin: ix.Args.UsePreviousVoterWeightPlugin,
		Accounts:                     accounts,
		Data:                         base58.Encode(data),
	}, nil
}

// RegistrarView is the printable outcome of reading one registrar.
type RegistrarView struct {
	Realm                              string                  `json:"realm" yaml:"realm"`
	Registrar                          string                  `json:"registrar" yaml:"registrar"`
	Bump                               uint8                   `json:"bump" yaml:"bump"`
	Status                             string                  `json:"status" yaml:"status"`
	Error                              string                  `json:"error,omitempty" yaml:"error,omitempty"`
	GovernanceProgramID                string                  `json:"governanceProgramId,omitempty" yaml:"governanceProgramId,omitempty"`
	GoverningTokenMint                 string                  `json:"governingTokenMint,omitempty" yaml:"governingTokenMint,omitempty"`
	Coefficients                       *quadratic.Coefficients `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	PreviousVoterWeightPluginProgramID string                  `json:"previousVoterWeightPluginProgramId,omitempty" yaml:"previousVoterWeightPluginProgramId,omitempty"`
}

func NewRegistrarView(realmLabel string, pda quadratic.RegistrarPDA, result quadratic.FetchResult) RegistrarView {
	view := RegistrarView{
		Realm:     realmLabel,
		Registrar: pda.Address.String(),
		Bump:      pda.Bump,
		Status:    result.Status.String(),
	}
	if result.Err != nil {
		view.Error = result.Err.Error()
	}
	if r := result.Registrar; r != nil {
		view.GovernanceProgramID = r.GovernanceProgramID.String()
		view.GoverningTokenMint = r.GoverningTokenMint.String()
		coefficients := r.Coefficients
		view.Coefficients = &coefficients
		if r.PreviousVoterWeightPluginProgramID != nil {
			view.PreviousVoterWeightPluginProgramID = r.PreviousVoterWeightPluginProgramID.String()
		}
	}
	return view
}

// Render writes v to w as json, yaml or, for table output, with tableFn.
func Render(w io.Writer, format string, v interface{}, tableFn func(io.Writer) error) error {
	switch format {
	case constants.OutputJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case constants.OutputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case constants.OutputTable, "":
		return tableFn(w)
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutput, format)
	}
}

// InstructionTable prints the instruction summary followed by its accounts.
func InstructionTable(w io.Writer, view InstructionView) error {
	summary := tablewriter.NewWriter(w)
	summary.Header("Field", "Value")
	_ = summary.Append([]string{"Instruction", view.Instruction})
	_ = summary.Append([]string{"Program", view.ProgramID})
	_ = summary.Append([]string{"Registrar", view.Registrar})
	_ = summary.Append([]string{"Coefficients", view.Coefficients.String()})
	_ = summary.Append([]string{"Use predecessor", strconv.FormatBool(view.UsePreviousVoterWeightPlugin)})
	_ = summary.Append([]string{"Data (base58)", view.Data})
	if view.RentLamports != nil {
		_ = summary.Append([]string{"Rent (lamports)", ConvertToStringWithThousandSeparator(*view.RentLamports)})
	}
	if err := summary.Render(); err != nil {
		return err
	}

	accounts := tablewriter.NewWriter(w)
	accounts.Header("#", "Account", "Address", "Writable", "Signer")
	for i, a := range view.Accounts {
		_ = accounts.Append([]string{
			strconv.Itoa(i), a.Name, a.Address, strconv.FormatBool(a.Writable), strconv.FormatBool(a.Signer),
		})
	}
	if err := accounts.Render(); err != nil {
		return err
	}
	if view.Transaction != "" {
		_, err := fmt.Fprintf(w, "\nUnsigned transaction (base64):\n%s\n", view.Transaction)
		return err
	}
	return nil
}

// RegistrarTable prints one row per registrar.
func RegistrarTable(w io.Writer, views []RegistrarView) error {
	table := tablewriter.NewWriter(w)
	table.Header("Realm", "Registrar", "Status", "Coefficients", "Predecessor")
	for _, v := range views {
		coefficients, predecessor := "-", "-"
		if v.Coefficients != nil {
			coefficients = v.Coefficients.String()
		}
		if v.PreviousVoterWeightPluginProgramID != "" {
			predecessor = v.PreviousVoterWeightPluginProgramID
		}
		status := v.Status
		if v.Error != "" && v.Status != quadratic.NotFound.String() {
			status = fmt.Sprintf("%s: %s", v.Status, v.Error)
		}
		_ = table.Append([]string{v.Realm, v.Registrar, status, coefficients, predecessor})
	}
	return table.Render()
}

// AddressView is the printable registrar address of a realm.
type AddressView struct {
	Realm              string `json:"realm" yaml:"realm"`
	GoverningTokenMint string `json:"governingTokenMint" yaml:"governingTokenMint"`
	ProgramID          string `json:"programId" yaml:"programId"`
	Registrar          string `json:"registrar" yaml:"registrar"`
	Bump               uint8  `json:"bump" yaml:"bump"`
}

func AddressTable(w io.Writer, view AddressView) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")
	_ = table.Append([]string{"Realm", view.Realm})
	_ = table.Append([]string{"Governing token mint", view.GoverningTokenMint})
	_ = table.Append([]string{"Program", view.ProgramID})
	_ = table.Append([]string{"Registrar", view.Registrar})
	_ = table.Append([]string{"Bump", strconv.Itoa(int(view.Bump))})
	return table.Render()
}
