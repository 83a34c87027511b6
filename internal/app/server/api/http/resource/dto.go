package resource

import (
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/estate"
)

// Draft is the request body of a create call.
type Draft[T any] interface {
	Record() T
}

type listInput struct {
	Tab string `query:"tab" doc:"Documents only: all, uploaded or scanned"`
}

type listOutput[T any] struct {
	Body ListResponse[T]
}

type ListResponse[T any] struct {
	Items   []T        `json:"items"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	workspace.Feedback
}

type getInput struct {
	ID string `path:"id"`
}

type getOutput[T any] struct {
	Body T
}

type createInput[D any] struct {
	Body D
}

type createOutput[T any] struct {
	Body CreateResponse[T]
}

type CreateResponse[T any] struct {
	Item T `json:"item"`
	workspace.Feedback
}

type deleteInput struct {
	ID string `path:"id"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Removed bool `json:"removed"`
	workspace.Feedback
}

// Draft fields are all optional on the wire so blank forms reach the list
// validation and raise its notification.

type DocumentDraft struct {
	Name   string        `json:"name,omitempty"`
	Source estate.Source `json:"source,omitempty" enum:"upload,scan"`
}

func (d DocumentDraft) Record() estate.Document {
	return estate.Document{Name: d.Name, Source: d.Source}
}

type CryptoDraft struct {
	Name    string `json:"name,omitempty"`
	Type    string `json:"type,omitempty" example:"Bitcoin"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (d CryptoDraft) Record() estate.CryptoAsset {
	return estate.CryptoAsset{Name: d.Name, Type: d.Type, Address: d.Address, Notes: d.Notes}
}

type NomineeDraft struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

func (d NomineeDraft) Record() estate.Nominee {
	return estate.Nominee{Name: d.Name, Email: d.Email, Phone: d.Phone, Relationship: d.Relationship}
}

type ContactDraft struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Type    string `json:"type,omitempty" example:"Attorney"`
	Company string `json:"company,omitempty"`
}

func (d ContactDraft) Record() estate.Contact {
	return estate.Contact{Name: d.Name, Email: d.Email, Phone: d.Phone, Type: d.Type, Company: d.Company}
}
