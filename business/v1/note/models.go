package note

// Note is a stored note
type Note struct {
	Id        int    `json:"id" example:"1"`
	Content   string `json:"content" example:"HTML is a breeze"`
	Important bool   `json:"important" example:"true"`
}

// NewNote is the payload accepted on create. Important is coerced with javascript truthiness
type NewNote struct {
	Content   string `json:"content" example:"HTML is a breeze"`
	Important any    `json:"important,omitempty" swaggertype:"boolean"`
}

// ReasonContentMissing is the reason given when a note has no content
const ReasonContentMissing = "content missing"

// Seed returns the notes the service starts with
func Seed() []Note {
	return []Note{
		{Id: 1, Content: "HTML is a breeze", Important: true},
		{Id: 2, Content: "Browser can execute only JavaScript", Important: false},
		{Id: 3, Content: "GET and POST are the most important methods of HTTP protocol", Important: true},
	}
}
