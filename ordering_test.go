package tablepager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Direction_Valid_And_Reverse(t *testing.T) {
	tests := []struct {
		name    string
		in      Direction
		valid   bool
		reverse Direction
	}{
		{"ASC valid reverses to DESC", DirectionASC, true, DirectionDESC},
		{"DESC valid reverses to ASC", DirectionDESC, true, DirectionASC},
		{"invalid kept as is", Direction("sideways"), false, Direction("sideways")},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.valid {
			t.Errorf("%s: Valid=%v want %v", tt.name, got, tt.valid)
		}
		if got := tt.in.Reverse(); got != tt.reverse {
			t.Errorf("%s: Reverse=%v want %v", tt.name, got, tt.reverse)
		}
	}
}

func Test_Orderings_Toggle(t *testing.T) {
	base := Orderings{
		{Column: "name", Direction: DirectionASC},
		{Column: "id", Direction: DirectionASC},
	}

	tests := []struct {
		name   string
		in     Orderings
		column string
		want   Orderings
	}{
		{
			"empty starts ascending",
			nil,
			"name",
			Orderings{{Column: "name", Direction: DirectionASC}},
		},
		{
			"primary column flips",
			base,
			"name",
			Orderings{{Column: "name", Direction: DirectionDESC}, {Column: "id", Direction: DirectionASC}},
		},
		{
			"secondary column is promoted ascending",
			Orderings{{Column: "name", Direction: DirectionASC}, {Column: "id", Direction: DirectionDESC}},
			"id",
			Orderings{{Column: "id", Direction: DirectionASC}, {Column: "name", Direction: DirectionASC}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.in.Toggle(tt.column))
		})
	}

	require.Equal(t, DirectionASC, base[0].Direction, "toggle must not mutate the receiver")
}

func Test_Orderings_ToSQL(t *testing.T) {
	ord := Orderings{{Column: "a", Direction: DirectionASC}, {Column: "b", Direction: DirectionDESC}}

	require.Equal(t, []string{"a ASC", "b DESC"}, ord.ToSQLSlice())
	require.Equal(t, "a ASC, b DESC", ord.ToSQL())
}

func Test_Orderings_validate(t *testing.T) {
	tests := []struct {
		name string
		ord  Orderings
		ok   bool
	}{
		{"empty returns error", Orderings{}, false},
		{"invalid direction", Orderings{{Column: "id", Direction: "bad"}}, false},
		{"valid list", Orderings{{Column: "id", Direction: DirectionASC}}, true},
		{"forbidden column symbols", Orderings{{Column: "id; DROP TABLE users", Direction: DirectionASC}}, false},
	}
	for _, tt := range tests {
		if err := tt.ord.validate(); (err == nil) != tt.ok {
			t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
		}
	}
}

func Test_ParseSort(t *testing.T) {
	mapping := ColumnMapping{
		"id":   "t.id",
		"name": "t.name",
	}

	tests := []struct {
		name  string
		in    []string
		ok    bool
		first OrderBy
	}{
		{"invalid format", []string{"id"}, false, OrderBy{}},
		{"unknown alias", []string{"idx asc"}, false, OrderBy{}},
		{"valid asc", []string{"id asc"}, true, OrderBy{Column: "t.id", Direction: DirectionASC}},
		{"valid desc", []string{"name desc"}, true, OrderBy{Column: "t.name", Direction: DirectionDESC}},
		{"extra spaces", []string{"  name   desc "}, true, OrderBy{Column: "t.name", Direction: DirectionDESC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.in, mapping)
			if (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
				return
			}
			if tt.ok {
				if len(got) == 0 || got[0] != tt.first {
					t.Errorf("%s: first=%v want %v", tt.name, got, tt.first)
				}
			}
		})
	}
}

func Test_closestAlias(t *testing.T) {
	aliases := []ColumnAlias{"id", "name", "created_at"}
	tests := []struct {
		name string
		in   ColumnAlias
		out  ColumnAlias
	}{
		{"closest to id", "idx", "id"},
		{"closest to name", "nme", "name"},
		{"closest to created_at", "createdat", "created_at"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestAlias(tt.in, aliases); got != tt.out {
				t.Errorf("%s: got %s want %s", tt.name, got, tt.out)
			}
		})
	}
}

func Test_ParseSort_UnknownAliasSuggestsClosest(t *testing.T) {
	_, err := ParseSort([]string{"titel asc"}, ColumnMapping{"title": "quizzes.title", "id": "quizzes.id"})
	require.ErrorContains(t, err, "'title'")
}

func Test_closestAlias_Edges(t *testing.T) {
	require.Equal(t, "", closestAlias("id", nil))
	require.Equal(t, "ab", closestAlias("a", []ColumnAlias{"ac", "ab"}), "ties go to the smaller alias")
}

func Test_OrderBy_String(t *testing.T) {
	require.Equal(t, "title DESC", OrderBy{Column: "title", Direction: DirectionDESC}.String())
}
