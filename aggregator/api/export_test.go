package api

// SetMaxBodySize overrides the request body limit and returns a function
// restoring the previous value.
func SetMaxBodySize(n int64) func() {
	prev := maxBodySize
	maxBodySize = n

	return func() { maxBodySize = prev }
}
