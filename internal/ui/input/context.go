package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	SearchQuery  string
	ResultTotal  int
	SelectedItem string
}

// Query returns the current search query
func (c *ModelContext) Query() string {
	return c.SearchQuery
}

// ResultCount returns the number of items in the results list
func (c *ModelContext) ResultCount() int {
	return c.ResultTotal
}

// HasSelection reports whether a result is currently selected
func (c *ModelContext) HasSelection() bool {
	return c.SelectedItem != ""
}
