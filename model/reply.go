package model

// ReplyField is one labeled column of a structured reply.
type ReplyField struct {
	Label   string
	Content string
	Inline  bool
}

// Reply is a platform-neutral structured message: a title plus an
// ordered list of labeled fields. The chat session adapter decides how
// to render it for the platform.
type Reply struct {
	Title       string
	Description string
	Fields      []ReplyField
}
