package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentSearch             // payload: query
	IntentNextPage
	IntentPrevPage
	IntentGoToPage   // payload: page number
	IntentOpenRecipe // payload: recipe ID or "#n" result position
	IntentShowRecipe
	IntentIncrease
	IntentDecrease
	IntentAddToList
	IntentShowList
	IntentRemoveItem // payload: item reference
	IntentSetCount   // payload: "<item> <count>"
	IntentToggleLike
	IntentShowLikes
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentSearch:
		return "search"
	case IntentNextPage:
		return "next_page"
	case IntentPrevPage:
		return "prev_page"
	case IntentGoToPage:
		return "go_to_page"
	case IntentOpenRecipe:
		return "open_recipe"
	case IntentShowRecipe:
		return "show_recipe"
	case IntentIncrease:
		return "increase"
	case IntentDecrease:
		return "decrease"
	case IntentAddToList:
		return "add_to_list"
	case IntentShowList:
		return "show_list"
	case IntentRemoveItem:
		return "remove_item"
	case IntentSetCount:
		return "set_count"
	case IntentToggleLike:
		return "toggle_like"
	case IntentShowLikes:
		return "show_likes"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. the search query
}
