package model

// Field is one present column of a flat record.
type Field struct {
	Column string
	Value  interface{}
}

// Record is a flat normalized row. Fields lists only the columns that are
// present, in column order; optional columns that were never set are left out.
type Record interface {
	Entity() string
	Fields() []Field
}

// Columns and Values split a record's fields for statement builders.
func Columns(r Record) []string {
	fields := r.Fields()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
	}
	return cols
}

func Values(r Record) []interface{} {
	fields := r.Fields()
	vals := make([]interface{}, len(fields))
	for i, f := range fields {
		vals[i] = f.Value
	}
	return vals
}

type fieldList []Field

func (l fieldList) add(column string, value interface{}) fieldList {
	return append(l, Field{Column: column, Value: value})
}

func (l fieldList) addIntPtr(column string, value *int) fieldList {
	if value == nil {
		return l
	}
	return l.add(column, *value)
}

func (l fieldList) addDatePtr(column string, value *Date) fieldList {
	if value == nil {
		return l
	}
	return l.add(column, *value)
}

func (l fieldList) addString(column, value string) fieldList {
	if value == "" {
		return l
	}
	return l.add(column, value)
}
