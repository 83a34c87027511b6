package estate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/resource"
)

// CryptoTypes are the choices the asset form offers. Other values are
// accepted.
var CryptoTypes = []string{"Bitcoin", "Ethereum", "Binance Coin", "Solana", "Cardano", "Other"}

type CryptoAsset struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

func (a CryptoAsset) RecordID() string { return a.ID }
func (a CryptoAsset) Label() string    { return a.Name }

func (a CryptoAsset) Missing() []string {
	return missing(
		field{"name", a.Name},
		field{"type", a.Type},
		field{"address", a.Address},
	)
}

func (a CryptoAsset) Stamp(id string, _ time.Time) CryptoAsset {
	a.ID = id
	a.Notes = strings.TrimSpace(a.Notes)
	return a
}

func CryptoKind() resource.Kind[CryptoAsset] {
	return resource.Kind[CryptoAsset]{
		Name:     "asset",
		Plural:   "assets",
		Position: resource.Append,
		Seed:     slices.Clone(seedCrypto),
		Columns: []resource.Column[CryptoAsset]{
			{Header: "Asset", Value: func(a CryptoAsset) string { return a.Name }},
			{Header: "Type", Value: func(a CryptoAsset) string { return a.Type }},
			{Header: "Wallet Address", Value: func(a CryptoAsset) string { return a.Address }},
			{Header: "Notes", Value: func(a CryptoAsset) string { return a.Notes }},
		},
		Added: func(a CryptoAsset) notify.Notification {
			return notify.Info("Asset added", fmt.Sprintf("%s wallet has been added to your assets", a.Type))
		},
		Removed: func(a CryptoAsset) notify.Notification {
			return notify.Info("Asset removed", fmt.Sprintf("%s has been removed from your assets", a.Name))
		},
	}
}

var seedCrypto = []CryptoAsset{
	{ID: "1", Name: "Bitcoin Wallet", Type: "Bitcoin", Address: "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5", Notes: "Hardware wallet stored in safe"},
	{ID: "2", Name: "Ethereum Investment", Type: "Ethereum", Address: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"},
}
