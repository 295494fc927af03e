package model

import (
	"bytes"
	"encoding/json"
)

// Snapshots may come from older clients, so fields are decoded one by one.
// A field of the wrong type is left at its zero value and an entry that is
// not an object is dropped; only a board whose columns are not a list fails.

type fields map[string]json.RawMessage

func decodeFields(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// get decodes the named field into dst and reports whether it succeeded.
func (f fields) get(key string, dst interface{}) bool {
	raw, ok := f[key]
	if !ok || isNull(raw) {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// list returns the elements of the named array field, skipping nulls.
func (f fields) list(key string) []json.RawMessage {
	var raws []json.RawMessage
	if !f.get(key, &raws) {
		return nil
	}
	out := raws[:0]
	for _, raw := range raws {
		if !isNull(raw) {
			out = append(out, raw)
		}
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (b *Board) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	*b = Board{}
	if raw, ok := f["columns"]; ok && !isNull(raw) {
		var columns []json.RawMessage
		if err := json.Unmarshal(raw, &columns); err != nil {
			return err
		}
		b.Columns = make([]Column, len(columns))
		for i, colRaw := range columns {
			// a broken column keeps its slot so later columns stay in place
			_ = json.Unmarshal(colRaw, &b.Columns[i])
		}
	}
	f.get("nextCardId", &b.NextCardID)
	return nil
}

func (c *Column) UnmarshalJSON(data []byte) error {
	*c = Column{Cards: []Card{}}
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	f.get("title", &c.Title)
	for _, raw := range f.list("cards") {
		var card Card
		if err := json.Unmarshal(raw, &card); err == nil {
			c.Cards = append(c.Cards, card)
		}
	}
	return nil
}

func (c *Card) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	*c = Card{Items: []Item{}}
	f.get("id", &c.ID)
	f.get("title", &c.Title)
	f.get("color", &c.Color)
	for _, raw := range f.list("items") {
		var item Item
		if err := json.Unmarshal(raw, &item); err == nil {
			c.Items = append(c.Items, item)
		}
	}
	var completed Timestamp
	if f.get("completedDate", &completed) {
		c.CompletedDate = &completed
	}
	return nil
}

func (i *Item) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}
	*i = Item{}
	f.get("text", &i.Text)
	f.get("completed", &i.Completed)
	return nil
}
