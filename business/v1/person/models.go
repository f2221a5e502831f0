package person

// Person is a phonebook entry
type Person struct {
	Id     int    `json:"id" example:"1"`
	Name   string `json:"name" example:"Arto Hellas"`
	Number string `json:"number" example:"040-123456"`
}

// NewPerson is the payload accepted on create
type NewPerson struct {
	Name   string `json:"name" example:"Arto Hellas"`
	Number string `json:"number" example:"040-123456"`
}

// Reasons given when a person is rejected
const (
	ReasonNameOrNumberMissing = "name or number missing"
	ReasonNameNotUnique       = "name must be unique"
)

// Seed returns the phonebook the service starts with
func Seed() []Person {
	return []Person{
		{Id: 1, Name: "Arto Hellas", Number: "040-123456"},
		{Id: 2, Name: "Ada Lovelace", Number: "39-44-5323523"},
		{Id: 3, Name: "Dan Abramov", Number: "12-43-234345"},
		{Id: 4, Name: "Mary Poppendieck", Number: "39-23-6423122"},
	}
}
