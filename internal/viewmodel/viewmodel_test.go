package viewmodel

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormattedEntryAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"integer", decimal.NewFromInt(5), "5.00"},
		{"one decimal", decimal.RequireFromString("12.5"), "12.50"},
		{"rounds", decimal.RequireFromString("0.125"), "0.13"},
		{"zero", decimal.Zero, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WalletViewModel{EntryAmount: tt.amount}
			assert.Equal(t, tt.want, w.FormattedEntryAmount())
		})
	}
}

func TestFormattedBalance(t *testing.T) {
	w := WalletViewModel{Balance: decimal.RequireFromString("1234.5")}
	assert.Equal(t, "$1234.50", w.FormattedBalance())
}

func TestWalletAssigned(t *testing.T) {
	assert.False(t, WalletViewModel{TokenID: UnassignedTokenID}.Assigned())
	assert.True(t, WalletViewModel{TokenID: 3}.Assigned())
}

func TestTokenNullableFieldsDecodeToNone(t *testing.T) {
	raw := `{
		"tokenId": "So1abc",
		"id": 7,
		"name": "Moon",
		"price": "0.0042",
		"entryTokenAmount": null,
		"exitPrice": "0.0050",
		"entryIteration": 0,
		"hasRealTrading": null
	}`

	var tok TokenViewModel
	require.NoError(t, json.Unmarshal([]byte(raw), &tok))

	assert.False(t, tok.EntryTokenAmount.IsSome(), "explicit null must stay empty")
	assert.False(t, tok.ExitTokenAmount.IsSome(), "missing key must stay empty")
	assert.False(t, tok.PlannedSellIteration.IsSome())

	exit, ok := tok.ExitPrice.Get()
	require.True(t, ok)
	assert.True(t, exit.Equal(decimal.RequireFromString("0.005")))

	iter, ok := tok.EntryIteration.Get()
	require.True(t, ok, "a present zero is a value, not an empty field")
	assert.Equal(t, int64(0), iter)

	assert.Equal(t, TriUnknown, tok.HasRealTrading)
}

func TestTriStateJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want TriState
	}{
		{`{"hasRealTrading": true}`, TriTrue},
		{`{"hasRealTrading": false}`, TriFalse},
		{`{"hasRealTrading": null}`, TriUnknown},
		{`{}`, TriUnknown},
	}

	for _, tt := range tests {
		var tok TokenViewModel
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &tok))
		assert.Equal(t, tt.want, tok.HasRealTrading, tt.raw)
	}

	var tok TokenViewModel
	assert.Error(t, json.Unmarshal([]byte(`{"hasRealTrading": "maybe"}`), &tok))
}

func TestOptionalMarshalKeepsNull(t *testing.T) {
	tok := TokenViewModel{TokenID: "x", EntryIteration: Some[int64](3)}
	data, err := json.Marshal(tok)
	require.NoError(t, err)

	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.Nil(t, generic["exitIteration"])
	assert.EqualValues(t, 3, generic["entryIteration"])
	assert.Nil(t, generic["hasRealTrading"])
}

func TestPriceChangePercent(t *testing.T) {
	tok := TokenViewModel{
		StartPrice: decimal.NewFromInt(2),
		Price:      decimal.NewFromInt(3),
	}
	pct, ok := tok.PriceChangePercent()
	require.True(t, ok)
	assert.True(t, pct.Equal(decimal.NewFromInt(50)))

	_, ok = TokenViewModel{Price: decimal.NewFromInt(1)}.PriceChangePercent()
	assert.False(t, ok)
}

func TestSnapshotValidate(t *testing.T) {
	valid := Snapshot{
		Wallets: []WalletViewModel{{ID: 1}, {ID: 2}},
		Tokens:  []TokenViewModel{{TokenID: "a"}, {TokenID: "b"}},
	}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, []int64{1, 2}, valid.WalletIDs())

	dupWallet := Snapshot{Wallets: []WalletViewModel{{ID: 1}, {ID: 1}}}
	assert.ErrorIs(t, dupWallet.Validate(), ErrDuplicateWalletID)

	dupToken := Snapshot{Tokens: []TokenViewModel{{TokenID: "a"}, {TokenID: "a"}}}
	assert.ErrorIs(t, dupToken.Validate(), ErrDuplicateTokenID)

	negative := Snapshot{Wallets: []WalletViewModel{{ID: 1, Balance: decimal.NewFromInt(-1)}}}
	assert.ErrorIs(t, negative.Validate(), ErrNegativeBalance)

	assert.NoError(t, Snapshot{}.Validate())
}
