package chat

import "strings"

// Card is a titled block of chat lines.
type Card struct {
	Title string
	Lines []string
}

// NewCard starts a card with the given title.
func NewCard(title string) *Card {
	return &Card{Title: title}
}

// Line appends a line.
func (c *Card) Line(s string) *Card {
	c.Lines = append(c.Lines, s)
	return c
}

// Field appends a "**name**: value" line.
func (c *Card) Field(name, value string) *Card {
	return c.Line("**" + name + "**: " + value)
}

// String renders the card as chat markdown.
func (c *Card) String() string {
	var b strings.Builder
	if c.Title != "" {
		b.WriteString("__**")
		b.WriteString(c.Title)
		b.WriteString("**__")
	}
	for _, l := range c.Lines {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
	}
	return b.String()
}

// Usage renders the standard reply for malformed arguments.
func Usage(command, synopsis, problem string) string {
	card := NewCard("Usage").Line("`" + command + " " + synopsis + "`")
	if problem != "" {
		card.Line(problem)
	}
	return card.String()
}
