package model

// Card is a note with a checklist. CompletedDate is stamped once, when the
// card first lands in the last column.
type Card struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Color         string     `json:"color"`
	Items         []Item     `json:"items"`
	CompletedDate *Timestamp `json:"completedDate"`
}

// Item is a checklist entry. It has no identity beyond its position.
type Item struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CompletedCount returns the number of checked items.
func (c *Card) CompletedCount() int {
	n := 0
	for _, item := range c.Items {
		if item.Completed {
			n++
		}
	}
	return n
}

func (c Card) Clone() Card {
	out := c
	out.Items = append([]Item(nil), c.Items...)
	if out.Items == nil {
		out.Items = []Item{}
	}
	if c.CompletedDate != nil {
		ts := *c.CompletedDate
		out.CompletedDate = &ts
	}
	return out
}
