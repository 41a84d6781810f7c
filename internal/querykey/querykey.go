// Package querykey builds the stable request identity shared by the client cache
// and the server-side listing cache.
package querykey

import "net/url"

// Key joins path and params into one string. Params are sorted by name and
// empty values are dropped, so {page:1, category:""} and {page:1} are the same key.
func Key(path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	if len(values) == 0 {
		return path
	}
	// Encode sorts by key
	return path + "?" + values.Encode()
}
