package models

// User represents a registered passenger account.
// Sensitive fields must never leave the process: the plaintext password is
// transient (signup/login input only) and is excluded from JSON.
type User struct {
	// UserID is the unique identifier assigned at signup.
	UserID string `json:"userId"`

	// Name is the display name, unique across all users.
	Name string `json:"name"`

	// Password holds the plaintext password during signup/login only.
	// It is never persisted.
	Password string `json:"-"`

	// HashedPassword is the bcrypt hash persisted instead of the plaintext.
	HashedPassword string `json:"hashedPassword"`

	// TicketsBooked is the ordered list of tickets the user currently owns.
	TicketsBooked []Ticket `json:"ticketsBooked"`
}

// FindTicket returns the user's ticket with the given ID and whether it exists.
func (u User) FindTicket(ticketID string) (Ticket, bool) {
	for _, t := range u.TicketsBooked {
		if t.TicketID == ticketID {
			return t, true
		}
	}
	return Ticket{}, false
}
