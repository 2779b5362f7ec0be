package repository

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"gorm.io/gorm/clause"

	apperrors "marketplace/internal/errors"
)

// Condition is a parameterized WHERE fragment.
type Condition struct {
	SQL  string
	Args []interface{}
}

// Columns whitelists the fields a list endpoint may filter or order on,
// keyed by their JSON name.
type Columns map[string]string

// UserColumns are the user fields open to filter and order.
var UserColumns = Columns{
	"id":           "id",
	"first_name":   "first_name",
	"last_name":    "last_name",
	"email":        "email",
	"phone":        "phone",
	"code":         "code",
	"cpf":          "cpf",
	"user_type_id": "user_type_id",
	"store_id":     "store_id",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

var comparisons = map[string]string{
	"eq":      "=",
	"ne":      "<>",
	"gt":      ">",
	"gte":     ">=",
	"lt":      "<",
	"lte":     "<=",
	"like":    "LIKE",
	"notLike": "NOT LIKE",
	"in":      "IN",
	"notIn":   "NOT IN",
}

// ParseFilter translates a JSON filter object into a condition. A bare value
// means equality; an object maps operators to operands; "or" and "and" take
// arrays of nested filters. Operator keys may carry a leading "$".
//
//	{"first_name": {"like": "%an%"}, "or": [{"user_type_id": 1}, {"store_id": 3}]}
func ParseFilter(raw string, cols Columns) (*Condition, error) {
	if !gjson.Valid(raw) {
		return nil, apperrors.NewValidationError("filter must be valid JSON")
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		return nil, apperrors.NewValidationError("filter must be a JSON object")
	}
	cond, err := parseGroup(root, cols, "AND")
	if err != nil {
		return nil, err
	}
	if cond.SQL == "" {
		return nil, nil
	}
	return cond, nil
}

func parseGroup(obj gjson.Result, cols Columns, joiner string) (*Condition, error) {
	parts := make([]string, 0)
	args := make([]interface{}, 0)
	var err error

	obj.ForEach(func(k, v gjson.Result) bool {
		key := strings.TrimPrefix(k.String(), "$")
		var cond *Condition
		switch key {
		case "or", "and":
			cond, err = parseLogical(v, cols, strings.ToUpper(key))
		default:
			cond, err = parseField(key, v, cols)
		}
		if err != nil {
			return false
		}
		if cond != nil && cond.SQL != "" {
			parts = append(parts, cond.SQL)
			args = append(args, cond.Args...)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return &Condition{}, nil
	}
	return &Condition{SQL: "(" + strings.Join(parts, " "+joiner+" ") + ")", Args: args}, nil
}

func parseLogical(v gjson.Result, cols Columns, joiner string) (*Condition, error) {
	if !v.IsArray() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("filter %s must be an array", strings.ToLower(joiner)))
	}
	parts := make([]string, 0)
	args := make([]interface{}, 0)
	for _, item := range v.Array() {
		if !item.IsObject() {
			return nil, apperrors.NewValidationError("filter entries must be objects")
		}
		cond, err := parseGroup(item, cols, "AND")
		if err != nil {
			return nil, err
		}
		if cond.SQL != "" {
			parts = append(parts, cond.SQL)
			args = append(args, cond.Args...)
		}
	}
	if len(parts) == 0 {
		return &Condition{}, nil
	}
	return &Condition{SQL: "(" + strings.Join(parts, " "+joiner+" ") + ")", Args: args}, nil
}

func parseField(name string, v gjson.Result, cols Columns) (*Condition, error) {
	column, ok := cols[name]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("filter field %s is not allowed", name))
	}
	if !v.IsObject() {
		return comparison(column, "eq", v)
	}

	parts := make([]string, 0)
	args := make([]interface{}, 0)
	var err error
	v.ForEach(func(op, operand gjson.Result) bool {
		var cond *Condition
		cond, err = comparison(column, strings.TrimPrefix(op.String(), "$"), operand)
		if err != nil {
			return false
		}
		parts = append(parts, cond.SQL)
		args = append(args, cond.Args...)
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return &Condition{}, nil
	}
	return &Condition{SQL: strings.Join(parts, " AND "), Args: args}, nil
}

func comparison(column, op string, operand gjson.Result) (*Condition, error) {
	if op == "is" || (op == "eq" && operand.Type == gjson.Null) {
		if operand.Type != gjson.Null {
			return nil, apperrors.NewValidationError("filter operator is expects null")
		}
		return &Condition{SQL: column + " IS NULL"}, nil
	}
	if op == "ne" && operand.Type == gjson.Null {
		return &Condition{SQL: column + " IS NOT NULL"}, nil
	}

	sqlOp, ok := comparisons[op]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("filter operator %s is not supported", op))
	}

	if op == "in" || op == "notIn" {
		if !operand.IsArray() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("filter %s expects an array", op))
		}
		values := make([]interface{}, 0)
		for _, item := range operand.Array() {
			values = append(values, scalar(item))
		}
		if len(values) == 0 {
			if op == "in" {
				return &Condition{SQL: "1 = 0"}, nil
			}
			return &Condition{SQL: "1 = 1"}, nil
		}
		return &Condition{SQL: column + " " + sqlOp + " ?", Args: []interface{}{values}}, nil
	}

	if operand.IsArray() || operand.IsObject() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("filter %s expects a single value", op))
	}
	return &Condition{SQL: column + " " + sqlOp + " ?", Args: []interface{}{scalar(operand)}}, nil
}

// scalar keeps whole numbers integral so integer columns compare cleanly on
// every driver.
func scalar(r gjson.Result) interface{} {
	switch r.Type {
	case gjson.Number:
		if r.Num == float64(r.Int()) {
			return r.Int()
		}
		return r.Num
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Null:
		return nil
	default:
		return r.String()
	}
}

// ParseOrder translates [["first_name","ASC"],["id","DESC"]] (or a single
// ["first_name","ASC"] pair) into ORDER BY columns.
func ParseOrder(raw string, cols Columns) ([]clause.OrderByColumn, error) {
	if !gjson.Valid(raw) {
		return nil, apperrors.NewValidationError("order must be valid JSON")
	}
	root := gjson.Parse(raw)
	if !root.IsArray() {
		return nil, apperrors.NewValidationError("order must be a JSON array")
	}

	pairs := root.Array()
	if len(pairs) > 0 && pairs[0].Type == gjson.String {
		pairs = []gjson.Result{root}
	}

	order := make([]clause.OrderByColumn, 0, len(pairs))
	for _, pair := range pairs {
		if !pair.IsArray() {
			return nil, apperrors.NewValidationError("order entries must be [field, direction] pairs")
		}
		items := pair.Array()
		if len(items) == 0 || len(items) > 2 {
			return nil, apperrors.NewValidationError("order entries must be [field, direction] pairs")
		}
		column, ok := cols[items[0].String()]
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("order field %s is not allowed", items[0].String()))
		}
		desc := false
		if len(items) == 2 {
			switch strings.ToUpper(items[1].String()) {
			case "ASC":
			case "DESC":
				desc = true
			default:
				return nil, apperrors.NewValidationError("order direction must be ASC or DESC")
			}
		}
		order = append(order, clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
	return order, nil
}

// SearchFirstName matches a case-insensitive substring of first_name.
func SearchFirstName(query string) *Condition {
	return &Condition{
		SQL:  "LOWER(first_name) LIKE LOWER(?)",
		Args: []interface{}{"%" + query + "%"},
	}
}
