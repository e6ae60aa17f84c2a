package domain

// FallbackBackgroundLink is served when no background can be read from the store.
const FallbackBackgroundLink = "https://imgur.com/FgJDNsx.gif"

// DefaultStory is served on the 404 page when no story can be read from the store.
const DefaultStory = "If you don’t like the road you’re walking, pave another one. Except for this one."

// Background is a link to a background GIF.
type Background struct {
	Link string `json:"link"`
}

// Story is the text shown on the not-found page.
type Story struct {
	Story string `json:"story"`
}
