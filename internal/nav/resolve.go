// Package nav resolves the current item of an ordered collection and its
// previous/next neighbours.
package nav

import "github.com/ziadkadry99/learnsite/internal/content"

// Selection is the resolved position within a collection.
type Selection struct {
	RequestedID string
	// Index is always in bounds unless Empty is set.
	Index   int
	Empty   bool
	PrevID  string
	HasPrev bool
	NextID  string
	HasNext bool
}

// Resolve picks the current index for requestedID within ids. An absent or
// unknown id falls back to the first item; an empty list yields Empty.
func Resolve(ids []string, requestedID string) Selection {
	sel := Selection{RequestedID: requestedID}
	if len(ids) == 0 {
		sel.Empty = true
		return sel
	}

	for i, id := range ids {
		if requestedID != "" && id == requestedID {
			sel.Index = i
			break
		}
	}

	if sel.Index > 0 {
		sel.PrevID = ids[sel.Index-1]
		sel.HasPrev = true
	}
	if sel.Index+1 < len(ids) {
		sel.NextID = ids[sel.Index+1]
		sel.HasNext = true
	}
	return sel
}

// ResolveCollection resolves requestedID against c and returns the current item.
func ResolveCollection(c *content.Collection, requestedID string) (Selection, content.Item) {
	sel := Resolve(c.IDs(), requestedID)
	if sel.Empty {
		return sel, content.Item{}
	}
	return sel, c.Items[sel.Index]
}
