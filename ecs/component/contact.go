package component

// ContactEvent is pushed onto the world event queue when two bodies whose
// categories and masks match begin touching.
type ContactEvent struct {
	A Category
	B Category
}

const ContactEventType = "contact"
