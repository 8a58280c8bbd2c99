package tablepager

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction is the sort direction of a table column.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

// Valid returns true for DirectionASC and DirectionDESC.
func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// Reverse returns the opposite direction. Invalid directions are returned
// unchanged.
func (o Direction) Reverse() Direction {
	switch o {
	case DirectionASC:
		return DirectionDESC
	case DirectionDESC:
		return DirectionASC
	default:
		return o
	}
}

type (
	// Orderings lists the sorted columns of a table, primary column first.
	Orderings []OrderBy
	// OrderBy sorts by one column.
	OrderBy struct {
		Column    string
		Direction Direction
	}

	// ColumnAlias is the column name a client sees, e.g. a table header key.
	ColumnAlias = string

	// ColumnMapping resolves client aliases to database columns, e.g.
	// "created" -> "quizzes.created_at". Qualified names avoid ambiguous
	// columns in joined queries.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid sort direction '%s' for column '%s'", o.Direction, o.Column)
	}

	// Column names end up in raw ORDER BY text.
	if !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("sort column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// String returns "<column> <direction>".
func (o OrderBy) String() string {
	return o.Column + " " + string(o.Direction)
}

// Toggle returns a copy of the orderings where column becomes the primary
// ordering. Clicking the header of the current primary column flips its
// direction, any other column starts ascending.
func (o Orderings) Toggle(column string) Orderings {
	direction := DirectionASC
	if len(o) > 0 && o[0].Column == column {
		direction = o[0].Direction.Reverse()
	}

	rest := lo.Filter(o, func(ordering OrderBy, _ int) bool {
		return ordering.Column != column
	})

	return append(Orderings{{Column: column, Direction: direction}}, rest...)
}

// ToSQLSlice returns one "<column> <direction>" term per sorted column,
// e.g. ["title ASC", "id DESC"].
func (o Orderings) ToSQLSlice() []string {
	return lo.Map(o, func(ordering OrderBy, _ int) string {
		return ordering.String()
	})
}

// ToSQL returns the ORDER BY terms joined with ", ", e.g. "title ASC, id DESC".
// Validate the orderings before putting the result into raw SQL.
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply adds the ORDER BY clause to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	if len(o) == 0 {
		return fmt.Errorf("no sort columns")
	}

	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort reads sort parameters of the form "title desc" coming from a
// table's query string or payload. Aliases are resolved with columnMapping;
// an unknown alias is reported together with the most similar known one.
func ParseSort(params []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(params))
	aliases := lo.Keys(columnMapping)

	for _, param := range params {
		fields := strings.Fields(param)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid sort parameter '%s', want '<column> asc|desc'", param)
		}

		column, ok := columnMapping[fields[0]]
		if !ok || column == "" {
			return nil, fmt.Errorf("unknown sort column '%s'. closest: '%s'", fields[0], closestAlias(fields[0], aliases))
		}

		ret = append(ret, OrderBy{
			Column:    column,
			Direction: Direction(strings.ToUpper(fields[1])),
		})
	}

	return ret, nil
}

// closestAlias returns the alias with the smallest edit distance to input.
// Ties go to the lexically smaller alias.
func closestAlias(input ColumnAlias, aliases []ColumnAlias) ColumnAlias {
	if len(aliases) == 0 {
		return ""
	}

	target := []rune(input)

	return lo.MinBy(aliases, func(a, b ColumnAlias) bool {
		da, db := levenshtein([]rune(a), target), levenshtein([]rune(b), target)
		return da < db || (da == db && a < b)
	})
}
