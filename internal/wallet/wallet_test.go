package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Stamped(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 4, 9, 15, 0, 0, time.UTC)

	fresh := Transaction{Kind: KindTransfer}.Stamped(now)
	assert.NotEmpty(t, fresh.ID)
	assert.Equal(t, now, fresh.At)

	kept := Transaction{ID: "x", At: now.Add(-time.Hour)}.Stamped(now)
	assert.Equal(t, "x", kept.ID)
	assert.Equal(t, now.Add(-time.Hour), kept.At)
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{in: "", want: FilterAll},
		{in: "ALL", want: FilterAll},
		{in: "received", want: FilterReceived},
		{in: " Transfer ", want: FilterTransfer},
		{in: "transfers", want: FilterTransfer},
		{in: "pending", want: FilterAll, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFilter)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	records := SampleRecords()

	assert.Len(t, FilterAll.Apply(records), 5)

	received := FilterReceived.Apply(records)
	require.Len(t, received, 3)
	for _, tx := range received {
		assert.Equal(t, KindReceived, tx.Kind)
	}
	assert.Equal(t, []string{"1", "4", "5"}, []string{received[0].ID, received[1].ID, received[2].ID})

	transfers := FilterTransfer.Apply(records)
	require.Len(t, transfers, 2)
	assert.Equal(t, "2", transfers[0].ID)
}

func TestFilter_Cycle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FilterReceived, FilterAll.Next())
	assert.Equal(t, FilterTransfer, FilterReceived.Next())
	assert.Equal(t, FilterAll, FilterTransfer.Next())
	assert.Equal(t, FilterTransfer, FilterAll.Prev())
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}

func TestTransaction_DisplayTime(t *testing.T) {
	t.Parallel()

	tx := Transaction{At: time.Date(2025, time.November, 12, 14, 3, 23, 0, time.UTC)}
	assert.Equal(t, "14:03:23pm", tx.Time())
	assert.Equal(t, "Nov 12", tx.Date())
}

func TestFindToken(t *testing.T) {
	t.Parallel()

	tokens := DefaultTokens()

	tok, ok := FindToken(tokens, "usdc")
	assert.True(t, ok)
	assert.Equal(t, "USDC", tok.Symbol)

	tok, ok = FindToken(tokens, "bnb")
	assert.False(t, ok)
	assert.Equal(t, "XLM", tok.Symbol, "falls back to the first token")

	_, ok = FindToken(nil, "xlm")
	assert.False(t, ok)
}

func TestStaticSource_AppendStampsRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := NewStaticSource()
	before := time.Now()

	require.NoError(t, src.Append(ctx, Transaction{Kind: KindTransfer, Amount: "5"}))

	records, err := src.FetchRecords(ctx)
	require.NoError(t, err)
	got := records[0]
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.At.Before(before))
	assert.Equal(t, before.Format("Jan 2"), got.Date())
	assert.NotEqual(t, "00:00:00am", got.Time())
}

func TestStaticSource_AppendListsNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := NewStaticSource()

	require.NoError(t, src.Append(ctx, Transaction{ID: "a", Kind: KindTransfer}))
	require.NoError(t, src.Append(ctx, Transaction{ID: "b", Kind: KindReceived}))

	records, err := src.FetchRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "1", records[2].ID)
}

func TestStaticSource_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewStaticSource()
	_, err := src.FetchRecords(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = src.FetchTokens(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, src.Append(ctx, Transaction{}), context.Canceled)
}

func TestStaticSource_TokensAreCopied(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := NewStaticSource()

	tokens, err := src.FetchTokens(ctx)
	require.NoError(t, err)
	tokens[0].Balance = "0"

	again, err := src.FetchTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100.00", again[0].Balance)
}

func TestZapsID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ejembiii.zaps", ZapsID("Ejembiii"))
	assert.Equal(t, "ada-obi.zaps", ZapsID("Ada Obi"))
	assert.Equal(t, "", ZapsID("   "))
}

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	p := DefaultProfile(AccountPersonal, "")
	assert.Equal(t, "Ejembiii", p.Username)
	assert.Equal(t, "ejembiii.zaps", p.ZapsID)
	assert.Equal(t, "$15,046.12", p.Balance)

	m := DefaultProfile(AccountMerchant, "Corner Shop")
	assert.Equal(t, AccountMerchant, m.Kind)
	assert.Equal(t, "corner-shop.zaps", m.ZapsID)
}

func TestParseAccountKind(t *testing.T) {
	t.Parallel()

	k, err := ParseAccountKind("Merchant")
	require.NoError(t, err)
	assert.Equal(t, AccountMerchant, k)

	k, err = ParseAccountKind("")
	require.NoError(t, err)
	assert.Equal(t, AccountPersonal, k)

	_, err = ParseAccountKind("business")
	assert.Error(t, err)
}
