package usecases

import "github.com/volatiletech/null/v8"

// nullStringFrom maps an empty form value to a null column.
func nullStringFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
