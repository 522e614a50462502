// Package layout holds the page shell shared by every web page.
package layout

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData holds the data every page needs
type PageData struct {
	Title string
	Flash *FlashMessage
}

func pageTitle(title string) string {
	if title == "" {
		return "Imposter"
	}
	return title + " | Imposter"
}
