package codec

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/partykeeper/internal/models"
)

func sampleParty() models.Party {
	return models.NewParty(
		models.Character{ClassID: 1, Health: 20, Mana: 5, Strength: 12, Agility: 9, Wisdom: 3, Equipment: []int{4, 4, 17}},
		models.Character{ClassID: 3, Health: 11, Mana: 30, Strength: 4, Agility: 7, Wisdom: 18},
	)
}

func TestEncode_Layout(t *testing.T) {
	got := string(Encode(sampleParty()))
	want := "2\n1 20 5 12 9 3 3 4 4 17\n3 11 30 4 7 18 0\n"
	assert.Equal(t, want, got)
}

func TestEncode_EmptyPartyIsZeroLine(t *testing.T) {
	assert.Equal(t, "0\n", string(Encode(models.Party{})))
}

func TestEncode_NegativeValues(t *testing.T) {
	p := models.NewParty(models.Character{ClassID: -1, Health: -20, Equipment: []int{-3}})
	assert.Equal(t, "1\n-1 -20 0 0 0 0 1 -3\n", string(Encode(p)))

	back, err := Decode(Encode(p))
	require.NoError(t, err)
	assert.True(t, p.Equal(back))
}

func TestRoundTrip_Random(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		n := r.IntN(6)
		chars := make([]models.Character, n)
		for j := range chars {
			eq := make([]int, r.IntN(5))
			for k := range eq {
				eq[k] = r.IntN(50)
			}
			chars[j] = models.Character{
				ClassID: r.IntN(10), Health: r.IntN(100), Mana: r.IntN(100),
				Strength: r.IntN(20), Agility: r.IntN(20), Wisdom: r.IntN(20),
				Equipment: eq,
			}
		}
		p := models.NewParty(chars...)

		got, err := Decode(Encode(p))
		require.NoError(t, err)
		require.True(t, p.Equal(got), "round trip mismatch for %v", p)
	}
}

func TestRoundTrip_LongEquipmentList(t *testing.T) {
	eq := make([]int, 20000)
	for i := range eq {
		eq[i] = i
	}
	p := models.NewParty(models.Character{ClassID: 3, Health: 9, Mana: 4, Equipment: eq})

	data := Encode(p)
	require.Greater(t, len(data), 64*1024)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
}

func TestDecode_LongGarbageLine(t *testing.T) {
	input := "1\n" + strings.Repeat("z", 80*1024) + "\n"

	_, err := Decode([]byte(input))
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Line)
}

func TestDecode_Tolerances(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Party
	}{
		{name: "count padded with spaces", input: "  1 \n1 2 3 4 5 6 0\n",
			want: models.NewParty(models.Character{ClassID: 1, Health: 2, Mana: 3, Strength: 4, Agility: 5, Wisdom: 6})},
		{name: "trailing blank lines", input: "0\n\n\n  \n", want: models.Party{}},
		{name: "crlf endings", input: "1\r\n1 1 1 1 1 1 2 8 9\r\n",
			want: models.NewParty(models.Character{ClassID: 1, Health: 1, Mana: 1, Strength: 1, Agility: 1, Wisdom: 1, Equipment: []int{8, 9}})},
		{name: "no final newline", input: "1\n0 0 0 0 0 0 0",
			want: models.NewParty(models.Character{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		line  int
	}{
		{name: "empty input", input: "", kind: ErrMalformedCount, line: 1},
		{name: "count not a number", input: "two\n", kind: ErrMalformedCount, line: 1},
		{name: "negative count", input: "-1\n", kind: ErrMalformedCount, line: 1},
		{name: "missing record line", input: "2\n1 2 3 4 5 6 0\n", kind: ErrMalformedRecord, line: 3},
		{name: "too few fixed fields", input: "1\n1 2 3\n", kind: ErrMalformedRecord, line: 2},
		{name: "equipment shorter than declared", input: "1\n1 2 3 4 5 6 3 1 2\n", kind: ErrMalformedRecord, line: 2},
		{name: "equipment longer than declared", input: "1\n1 2 3 4 5 6 1 1 2\n", kind: ErrMalformedRecord, line: 2},
		{name: "negative equipment count", input: "1\n1 2 3 4 5 6 -1\n", kind: ErrMalformedRecord, line: 2},
		{name: "non-integer stat", input: "1\n1 x 3 4 5 6 0\n", kind: ErrNumberFormat, line: 2},
		{name: "non-integer equipment", input: "1\n1 2 3 4 5 6 1 sword\n", kind: ErrNumberFormat, line: 2},
		{name: "double space", input: "1\n1  2 3 4 5 6 0\n", kind: ErrNumberFormat, line: 2},
		{name: "trailing record beyond count", input: "1\n1 2 3 4 5 6 0\n1 2 3 4 5 6 0\n", kind: ErrMalformedRecord, line: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.line, de.Line)
		})
	}
}

func TestDecode_TruncatedMidRecord(t *testing.T) {
	full := string(Encode(sampleParty()))
	cut := full[:strings.Index(full, " 17")]

	_, err := Decode([]byte(cut))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecodeError_Message(t *testing.T) {
	_, err := Decode([]byte("1\n1 2 3\n"))
	require.Error(t, err)
	assert.Equal(t, "line 2: malformed record: want at least 7 fields, got 3", err.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "malformed count", MalformedCount.String())
	assert.Equal(t, "number format", NumberFormat.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
