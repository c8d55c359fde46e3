package invest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolding_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Holding
	}{
		{
			name: "regular",
			data: `{"id":"a1","ticker":"PETR4","class":"Stocks","quantity":100,"price":32.5}`,
			want: Holding{ID: "a1", Ticker: "PETR4", Class: "Stocks", Quantity: 100, Price: 32.5},
		},
		{
			name: "numeric id and string numbers",
			data: `{"id":1712345678901,"ticker":"BTC","class":"Crypto","quantity":"0,05","price":" 200000 "}`,
			want: Holding{ID: "1712345678901", Ticker: "BTC", Class: "Crypto", Quantity: 0.05, Price: 200000},
		},
		{
			name: "wrong kinds",
			data: `{"id":null,"ticker":12,"class":["x"],"quantity":"abc","price":true}`,
			want: Holding{Ticker: "12"},
		},
		{
			name: "missing fields",
			data: `{}`,
			want: Holding{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Holding
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var h Holding
	assert.Error(t, json.Unmarshal([]byte(`"PETR4"`), &h))
}

func TestPortfolio_UnmarshalJSON(t *testing.T) {
	var p Portfolio
	data := `[{"id":"1","ticker":"A","class":"Stocks","quantity":1,"price":2}, 3, "x", null, {"id":"2"}]`
	require.NoError(t, json.Unmarshal([]byte(data), &p))
	require.Len(t, p, 2)
	assert.Equal(t, "1", p[0].ID)
	assert.Equal(t, "2", p[1].ID)
	assert.InDelta(t, 2, TotalValue(p), 1e-9)

	assert.Error(t, json.Unmarshal([]byte(`{"id":"1"}`), &p))
}

func TestPortfolio_roundTrip(t *testing.T) {
	p, _, _ := SampleData()
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Portfolio
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, p, got)
}

func TestPortfolio_Find(t *testing.T) {
	p := stocksAndBonds()
	assert.Equal(t, 1, p.Find("2"))
	assert.Equal(t, -1, p.Find("42"))
}

func TestPortfolio_Clone(t *testing.T) {
	p := stocksAndBonds()
	c := p.Clone()
	c[0].Quantity = 1
	assert.Equal(t, 8.0, p[0].Quantity)

	assert.NotNil(t, Portfolio{}.Clone())
}
