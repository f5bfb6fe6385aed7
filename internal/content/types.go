package content

// Item is a single lesson or tutorial record.
type Item struct {
	ID    string
	Title string
	// Body is trusted, pre-sanitized markup (lessons only).
	Body        string
	Description string
	Tags        []string
	Language    string
	Code        string
	Level       string
}

// DisplayTags returns the item's tags, or its language as a single tag
// when no tags were given.
func (it Item) DisplayTags() []string {
	if len(it.Tags) > 0 {
		return it.Tags
	}
	if it.Language != "" {
		return []string{it.Language}
	}
	return nil
}

// Collection is an ordered, named set of items loaded from one content file.
// Item order defines previous/next adjacency and the default selection.
type Collection struct {
	ID       string
	Title    string
	Overview string
	Items    []Item
}

// IDs returns the item identifiers in collection order.
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.Items))
	for i, it := range c.Items {
		ids[i] = it.ID
	}
	return ids
}
