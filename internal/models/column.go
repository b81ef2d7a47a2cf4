package models

// Column is one recruiting stage of the pipeline board.
// Items are kept in display order; the index of an item is its rank within the stage.
type Column struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Items []*CandidateItem `json:"items"`
}

// Len returns the number of candidates in the column
func (c *Column) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// IndexOf returns the position of the candidate with the given id, or -1
func (c *Column) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
