package query

import (
	"maps"
	"slices"

	"braces.dev/errtrace"
)

// Values maps a field name to the list of its values.
// Field names are case-sensitive.
type Values map[string][]string

// Get returns values associated with the given key.
// If there are no values associated with the key, Get returns the empty slice.
func (vals Values) Get(key string) []string { return vals[key] }

func (vals Values) First(key string) (string, bool) {
	v := vals[key]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func (vals Values) Last(key string) (string, bool) {
	v := vals[key]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Set sets the key to value. It replaces any existing values.
func (vals Values) Set(key, value string) Values {
	vals[key] = []string{value}
	return vals
}

func (vals Values) Append(key, value string) Values {
	vals[key] = append(vals[key], value)
	return vals
}

// Del deletes the values associated with the key.
func (vals Values) Del(key string) Values {
	delete(vals, key)
	return vals
}

// Has checks whether a given key is in the map.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

// Clone returns a deep copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, vs := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = slices.Clone(vs)
	}
	return vals2
}

// Pairs flattens the map into pairs sorted by name.
// Values of one name keep their order.
func (vals Values) Pairs() []Pair {
	var pairs []Pair
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		for _, v := range vals[k] {
			pairs = append(pairs, Pair{Name: k, Value: v})
		}
	}
	return pairs
}

// Encode renders the map as a query string with fields sorted by name.
// Every value of a name becomes a separate field. See [Encode].
func (vals Values) Encode(opts *EncodeOptions) (string, error) {
	return errtrace.Wrap2(Encode(vals.Pairs(), opts))
}
